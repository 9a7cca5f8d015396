package profileController

import (
	"github.com/mendokusaisai/kodomo-wallet/database"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	"github.com/mendokusaisai/kodomo-wallet/services"
	profileValidator "github.com/mendokusaisai/kodomo-wallet/validators/profile"

	"github.com/gofiber/fiber/v2"
)

// Update edits a profile's name and avatar. A profile can edit itself and
// a parent can edit their children
func Update(c *fiber.Ctx) error {
	actorID := c.Locals("profileId").(uint)

	profileID, err := c.ParamsInt("id")
	if err != nil || profileID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid profile ID!", nil)
	}

	reqData, ok := c.Locals("validatedProfileUpdate").(*profileValidator.UpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	profile, err := services.UpdateProfile(database.Database.Db, actorID, uint(profileID), reqData.Name, reqData.AvatarURL)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated!", fiber.Map{
		"profile": profile,
	})
}
