package middleware

import (
	"github.com/mendokusaisai/kodomo-wallet/database"
	"github.com/mendokusaisai/kodomo-wallet/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that checks that the acting profile
// has the given role. Parent-only routes (approvals, recurring deposits,
// invites) use RequireRole(models.RoleParent).
func RequireRole(requiredRole models.ProfileRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID, ok := c.Locals("profileId").(uint)
		if !ok || profileID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: profile not found",
				"data":    nil,
			})
		}

		var profile models.Profile
		err := database.Database.Db.Where("id = ? AND role = ?", profileID, requiredRole).First(&profile).Error

		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"status":  false,
					"message": "You do not have permission to access this resource!",
					"data":    nil,
				})
			}
			// Other DB error
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": "Server error while checking permissions!",
				"data":    nil,
			})
		}

		// Role matches, proceed
		return c.Next()
	}
}
