package familyRoutes

import (
	familyController "github.com/mendokusaisai/kodomo-wallet/controllers/family"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	"github.com/mendokusaisai/kodomo-wallet/models"
	familyValidator "github.com/mendokusaisai/kodomo-wallet/validators/family"

	"github.com/gofiber/fiber/v2"
)

// SetupFamilyRoutes registers the family graph endpoints
func SetupFamilyRoutes(app *fiber.App) {
	family := app.Group("/api/family", middleware.JWTMiddleware)

	family.Get("/children", familyController.Children)
	family.Get("/children/:id/parents", familyController.Parents)

	parentOnly := family.Group("", middleware.RequireRole(models.RoleParent))
	parentOnly.Post("/children", familyValidator.CreateChild(), familyController.CreateChild)
	parentOnly.Delete("/children/:id", familyController.DeleteChild)
	parentOnly.Post("/relationships", familyValidator.Relationship(), familyController.AddRelationship)
	parentOnly.Delete("/relationships", familyValidator.Relationship(), familyController.RemoveRelationship)
}
