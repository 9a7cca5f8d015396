package withdrawalRoutes

import (
	withdrawalRequestController "github.com/mendokusaisai/kodomo-wallet/controllers/withdrawalRequest"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	"github.com/mendokusaisai/kodomo-wallet/models"
	withdrawalRequestValidator "github.com/mendokusaisai/kodomo-wallet/validators/withdrawalRequest"

	"github.com/gofiber/fiber/v2"
)

// SetupWithdrawalRoutes registers the withdrawal request endpoints
func SetupWithdrawalRoutes(app *fiber.App) {
	requests := app.Group("/api/withdrawal-requests", middleware.JWTMiddleware)

	requests.Post("/", withdrawalRequestValidator.Create(), withdrawalRequestController.Create)
	requests.Get("/pending", middleware.RequireRole(models.RoleParent), withdrawalRequestController.ListPending)
	requests.Post("/:id/approve", middleware.RequireRole(models.RoleParent), withdrawalRequestController.Approve)
	requests.Post("/:id/reject", middleware.RequireRole(models.RoleParent), withdrawalRequestController.Reject)
}
