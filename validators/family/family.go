package familyValidator

import (
	"github.com/mendokusaisai/kodomo-wallet/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateChildRequest creates a placeholder child profile and account.
type CreateChildRequest struct {
	Name           string  `json:"name"`
	InitialBalance int64   `json:"initialBalance"`
	Email          *string `json:"email"`
}

// RelationshipRequest adds or removes a parent-child edge.
type RelationshipRequest struct {
	ChildID          uint   `json:"childId"`
	RelationshipType string `json:"relationshipType"`
}

// CreateChild validates a child creation request
func CreateChild() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateChildRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.InitialBalance < 0 {
			errors["initialBalance"] = "Initial balance must not be negative!"
		}
		if reqData.Email != nil && *reqData.Email != "" {
			if err := validate.Var(*reqData.Email, "email"); err != nil {
				errors["email"] = "Email must be a valid address!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateChild", reqData)
		return c.Next()
	}
}

// Relationship validates a relationship add/remove request
func Relationship() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RelationshipRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ChildID == 0 {
			errors["childId"] = "Child ID is required!"
		}
		if reqData.RelationshipType != "" && reqData.RelationshipType != "parent" && reqData.RelationshipType != "guardian" {
			errors["relationshipType"] = "Relationship type must be parent or guardian!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRelationship", reqData)
		return c.Next()
	}
}
