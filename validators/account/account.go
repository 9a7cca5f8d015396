package accountValidator

import (
	"github.com/mendokusaisai/kodomo-wallet/middleware"

	"github.com/gofiber/fiber/v2"
)

// AmountRequest is the shared body for deposit, withdraw and reward.
type AmountRequest struct {
	AccountID   uint   `json:"accountId"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// GoalRequest updates or clears an account's savings goal.
type GoalRequest struct {
	AccountID  uint    `json:"accountId"`
	GoalName   *string `json:"goalName"`
	GoalAmount *int64  `json:"goalAmount"`
}

func validateAmountBody(c *fiber.Ctx, localsKey string) error {
	reqData := new(AmountRequest)

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)

	if reqData.AccountID == 0 {
		errors["accountId"] = "Account ID is required!"
	}
	if reqData.Amount <= 0 {
		errors["amount"] = "Amount must be greater than 0!"
	}

	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals(localsKey, reqData)
	return c.Next()
}

// Deposit validates a deposit request
func Deposit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return validateAmountBody(c, "validatedDeposit")
	}
}

// Withdraw validates a withdraw request
func Withdraw() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return validateAmountBody(c, "validatedWithdraw")
	}
}

// Reward validates a reward request
func Reward() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return validateAmountBody(c, "validatedReward")
	}
}

// UpdateGoal validates a savings goal update
func UpdateGoal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GoalRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.AccountID == 0 {
			errors["accountId"] = "Account ID is required!"
		}
		if reqData.GoalAmount != nil && *reqData.GoalAmount < 0 {
			errors["goalAmount"] = "Goal amount must be non-negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGoal", reqData)
		return c.Next()
	}
}
