package authController

import (
	"github.com/mendokusaisai/kodomo-wallet/database"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	"github.com/mendokusaisai/kodomo-wallet/services"
	"github.com/mendokusaisai/kodomo-wallet/utils"
	authValidator "github.com/mendokusaisai/kodomo-wallet/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// Session exchanges a verified identity provider token for an app JWT.
// A signup whose email matches a placeholder profile is auto-linked here;
// a login with no profile at all still gets a token (profileId 0) so it
// can accept a child invite.
func Session(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSession").(*authValidator.SessionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	authUserID, email, err := utils.VerifyAccessToken(reqData.AccessToken)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired access token!", nil)
	}

	db := database.Database.Db

	profile, err := services.ProfileByAuthUserID(db, authUserID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	if profile == nil && email != "" {
		profile, err = services.AutoLinkOnSignup(db, authUserID, email)
		if err != nil {
			return middleware.ServiceErrorResponse(c, err)
		}
	}

	var profileID uint
	name, role := "", ""
	if profile != nil {
		profileID = profile.ID
		name = profile.Name
		role = string(profile.Role)
	}

	token, err := middleware.GenerateJWT(profileID, authUserID, name, role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session created.", fiber.Map{
		"token":   token,
		"profile": profile,
	})
}

// Me returns the profile attached to the caller's auth identity, or null
// for a fresh login that has not accepted an invite yet
func Me(c *fiber.Ctx) error {
	authUserID := c.Locals("authUserId").(string)

	profile, err := services.ProfileByAuthUserID(database.Database.Db, authUserID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched!", fiber.Map{
		"profile": profile,
	})
}
