package inviteController

import (
	"log"

	"github.com/mendokusaisai/kodomo-wallet/database"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	"github.com/mendokusaisai/kodomo-wallet/models"
	"github.com/mendokusaisai/kodomo-wallet/services"
	"github.com/mendokusaisai/kodomo-wallet/utils"
	inviteValidator "github.com/mendokusaisai/kodomo-wallet/validators/invite"

	"github.com/gofiber/fiber/v2"
)

// CreateChildInvite issues a login invite for a placeholder child profile
func CreateChildInvite(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	reqData, ok := c.Locals("validatedChildInvite").(*inviteValidator.CreateChildInviteRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	invite, err := services.CreateChildInvite(db, profileID, reqData.ChildID, reqData.Email)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	var child models.Profile
	if err := db.First(&child, invite.ChildID).Error; err == nil {
		utils.SendChildInviteEmail(invite.Email, child.Name, invite.Token)

		// The identity provider sends the credential signup mail; a failure
		// there must not invalidate the token we just issued.
		if err := utils.NotifyChildSignup(invite.Email, child.Name, child.ID); err != nil {
			log.Printf("[INVITE] identity provider notification failed: %v", err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Child invite created!", fiber.Map{
		"token":     invite.Token,
		"expiresAt": invite.ExpiresAt,
	})
}

// AcceptChildInvite attaches the caller's auth identity to the invited profile
func AcceptChildInvite(c *fiber.Ctx) error {
	authUserID := c.Locals("authUserId").(string)
	token := c.Params("token")

	profile, err := services.AcceptChildInvite(database.Database.Db, token, authUserID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Invite accepted!", fiber.Map{
		"profile": profile,
	})
}

// CancelChildInvite withdraws a pending child invite
func CancelChildInvite(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)
	token := c.Params("token")

	if err := services.CancelChildInvite(database.Database.Db, profileID, token); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Invite cancelled!", nil)
}

// CreateParentInvite issues a co-parent invite scoped to the inviter's children
func CreateParentInvite(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	reqData, ok := c.Locals("validatedParentInvite").(*inviteValidator.CreateParentInviteRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	invite, err := services.CreateParentInvite(db, profileID, reqData.Email)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	var inviter, child models.Profile
	if err := db.First(&inviter, invite.InviterID).Error; err == nil {
		if err := db.First(&child, invite.ChildID).Error; err == nil {
			utils.SendParentInviteEmail(invite.Email, inviter.Name, child.Name, invite.Token)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Parent invite created!", fiber.Map{
		"token":     invite.Token,
		"expiresAt": invite.ExpiresAt,
	})
}

// AcceptParentInvite links the acting parent to the inviter's children
func AcceptParentInvite(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)
	token := c.Params("token")

	if err := services.AcceptParentInvite(database.Database.Db, token, profileID); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Invite accepted!", nil)
}

// CancelParentInvite withdraws a pending parent invite
func CancelParentInvite(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)
	token := c.Params("token")

	if err := services.CancelParentInvite(database.Database.Db, profileID, token); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Invite cancelled!", nil)
}
