package inviteRoutes

import (
	inviteController "github.com/mendokusaisai/kodomo-wallet/controllers/invite"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	"github.com/mendokusaisai/kodomo-wallet/models"
	inviteValidator "github.com/mendokusaisai/kodomo-wallet/validators/invite"

	"github.com/gofiber/fiber/v2"
)

// SetupInviteRoutes registers the invite and identity-linking endpoints
func SetupInviteRoutes(app *fiber.App) {
	invites := app.Group("/api/invites", middleware.JWTMiddleware)

	// Accepting a child invite is done by a fresh login that has no
	// profile yet, so it carries no role requirement.
	invites.Post("/child/:token/accept", inviteController.AcceptChildInvite)
	invites.Post("/parent/:token/accept", middleware.RequireRole(models.RoleParent), inviteController.AcceptParentInvite)

	parentOnly := invites.Group("", middleware.RequireRole(models.RoleParent))
	parentOnly.Post("/child", inviteValidator.CreateChildInvite(), inviteController.CreateChildInvite)
	parentOnly.Delete("/child/:token", inviteController.CancelChildInvite)
	parentOnly.Post("/parent", inviteValidator.CreateParentInvite(), inviteController.CreateParentInvite)
	parentOnly.Delete("/parent/:token", inviteController.CancelParentInvite)
}
