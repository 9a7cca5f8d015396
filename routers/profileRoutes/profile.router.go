package profileRoutes

import (
	profileController "github.com/mendokusaisai/kodomo-wallet/controllers/profile"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	profileValidator "github.com/mendokusaisai/kodomo-wallet/validators/profile"

	"github.com/gofiber/fiber/v2"
)

// SetupProfileRoutes registers the profile endpoints
func SetupProfileRoutes(app *fiber.App) {
	profiles := app.Group("/api/profiles", middleware.JWTMiddleware)

	profiles.Put("/:id", profileValidator.Update(), profileController.Update)
}
