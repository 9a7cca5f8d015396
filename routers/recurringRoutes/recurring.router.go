package recurringRoutes

import (
	recurringDepositController "github.com/mendokusaisai/kodomo-wallet/controllers/recurringDeposit"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	"github.com/mendokusaisai/kodomo-wallet/models"
	recurringDepositValidator "github.com/mendokusaisai/kodomo-wallet/validators/recurringDeposit"

	"github.com/gofiber/fiber/v2"
)

// SetupRecurringRoutes registers the recurring deposit endpoints
func SetupRecurringRoutes(app *fiber.App) {
	recurring := app.Group("/api/recurring-deposits", middleware.JWTMiddleware, middleware.RequireRole(models.RoleParent))

	recurring.Get("/:accountId", recurringDepositController.Get)
	recurring.Put("/", recurringDepositValidator.CreateOrUpdate(), recurringDepositController.CreateOrUpdate)
	recurring.Delete("/:accountId", recurringDepositController.Delete)
}
