package withdrawalRequestValidator

import (
	"github.com/mendokusaisai/kodomo-wallet/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest is the body for a new withdrawal request.
type CreateRequest struct {
	AccountID   uint   `json:"accountId"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// Create validates a withdrawal request creation
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)

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

		c.Locals("validatedWithdrawalRequest", reqData)
		return c.Next()
	}
}
