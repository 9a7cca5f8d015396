package recurringDepositValidator

import (
	"github.com/mendokusaisai/kodomo-wallet/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateOrUpdateRequest configures an account's monthly allowance.
type CreateOrUpdateRequest struct {
	AccountID  uint  `json:"accountId"`
	Amount     int64 `json:"amount"`
	DayOfMonth int   `json:"dayOfMonth"`
	IsActive   *bool `json:"isActive"`
}

// CreateOrUpdate validates a recurring deposit configuration
func CreateOrUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateOrUpdateRequest)

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
		if reqData.DayOfMonth < 1 || reqData.DayOfMonth > 31 {
			errors["dayOfMonth"] = "Day of month must be between 1 and 31!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRecurringDeposit", reqData)
		return c.Next()
	}
}
