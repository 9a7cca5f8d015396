package authRoutes

import (
	authController "github.com/mendokusaisai/kodomo-wallet/controllers/auth"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	authValidator "github.com/mendokusaisai/kodomo-wallet/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers the session exchange endpoints
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/session", authValidator.Session(), authController.Session)
	auth.Get("/me", middleware.JWTMiddleware, authController.Me)
}
