package profileValidator

import (
	"github.com/mendokusaisai/kodomo-wallet/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateRequest edits a profile's name and avatar. Absent fields are left
// untouched.
type UpdateRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// Update validates a profile update request
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && *reqData.Name == "" {
			errors["name"] = "Name must not be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
