package authValidator

import (
	"github.com/mendokusaisai/kodomo-wallet/middleware"

	"github.com/gofiber/fiber/v2"
)

// SessionRequest exchanges an identity provider access token for an app
// session token.
type SessionRequest struct {
	AccessToken string `json:"accessToken"`
}

// Session validates a session exchange request
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SessionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.AccessToken == "" {
			errors["accessToken"] = "Access token is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}
