package familyController

import (
	"github.com/mendokusaisai/kodomo-wallet/database"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	"github.com/mendokusaisai/kodomo-wallet/models"
	"github.com/mendokusaisai/kodomo-wallet/services"
	familyValidator "github.com/mendokusaisai/kodomo-wallet/validators/family"

	"github.com/gofiber/fiber/v2"
)

// CreateChild creates a placeholder child profile with an account
func CreateChild(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	reqData, ok := c.Locals("validatedCreateChild").(*familyValidator.CreateChildRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	child, err := services.CreateChild(database.Database.Db, profileID, reqData.Name, reqData.InitialBalance, reqData.Email)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Child created!", fiber.Map{
		"child": child,
	})
}

// DeleteChild removes a child profile and all associated data
func DeleteChild(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	childID, err := c.ParamsInt("id")
	if err != nil || childID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid child ID!", nil)
	}

	if err := services.DeleteChild(database.Database.Db, profileID, uint(childID)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Child deleted!", nil)
}

// Children lists the acting parent's children
func Children(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	children, err := services.ChildrenOf(database.Database.Db, profileID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Children fetched!", fiber.Map{
		"children": children,
	})
}

// Parents lists all parents linked to a child
func Parents(c *fiber.Ctx) error {
	childID, err := c.ParamsInt("id")
	if err != nil || childID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid child ID!", nil)
	}

	parents, err := services.ParentsOf(database.Database.Db, uint(childID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Parents fetched!", fiber.Map{
		"parents": parents,
	})
}

// AddRelationship links the acting parent to a child
func AddRelationship(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	reqData, ok := c.Locals("validatedRelationship").(*familyValidator.RelationshipRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := services.AddRelationship(database.Database.Db, profileID, reqData.ChildID, models.RelationshipType(reqData.RelationshipType))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Relationship added!", nil)
}

// RemoveRelationship unlinks the acting parent from a child
func RemoveRelationship(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	reqData, ok := c.Locals("validatedRelationship").(*familyValidator.RelationshipRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := services.RemoveRelationship(database.Database.Db, profileID, profileID, reqData.ChildID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Relationship removed!", nil)
}
