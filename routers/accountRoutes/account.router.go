package accountRoutes

import (
	accountController "github.com/mendokusaisai/kodomo-wallet/controllers/account"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	accountValidator "github.com/mendokusaisai/kodomo-wallet/validators/account"

	"github.com/gofiber/fiber/v2"
)

// SetupAccountRoutes registers the ledger endpoints
func SetupAccountRoutes(app *fiber.App) {
	account := app.Group("/api/accounts", middleware.JWTMiddleware)

	account.Get("/", accountController.GetFamilyAccounts)
	account.Get("/:id/transactions", accountController.GetHistory)
	account.Post("/deposit", accountValidator.Deposit(), accountController.Deposit)
	account.Post("/withdraw", accountValidator.Withdraw(), accountController.Withdraw)
	account.Post("/reward", accountValidator.Reward(), accountController.Reward)
	account.Put("/goal", accountValidator.UpdateGoal(), accountController.UpdateGoal)
}
