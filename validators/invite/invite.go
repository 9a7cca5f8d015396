package inviteValidator

import (
	"github.com/mendokusaisai/kodomo-wallet/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateChildInviteRequest issues a login invite for a placeholder child.
type CreateChildInviteRequest struct {
	ChildID uint   `json:"childId"`
	Email   string `json:"email"`
}

// CreateParentInviteRequest issues a co-parent invite by email.
type CreateParentInviteRequest struct {
	Email string `json:"email"`
}

// CreateChildInvite validates a child invite creation
func CreateChildInvite() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateChildInviteRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ChildID == 0 {
			errors["childId"] = "Child ID is required!"
		}
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "A valid email is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChildInvite", reqData)
		return c.Next()
	}
}

// CreateParentInvite validates a parent invite creation
func CreateParentInvite() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateParentInviteRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "A valid email is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedParentInvite", reqData)
		return c.Next()
	}
}
