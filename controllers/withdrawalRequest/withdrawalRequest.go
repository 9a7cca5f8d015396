package withdrawalRequestController

import (
	"github.com/mendokusaisai/kodomo-wallet/database"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	"github.com/mendokusaisai/kodomo-wallet/models"
	"github.com/mendokusaisai/kodomo-wallet/services"
	"github.com/mendokusaisai/kodomo-wallet/utils"
	withdrawalRequestValidator "github.com/mendokusaisai/kodomo-wallet/validators/withdrawalRequest"

	"github.com/gofiber/fiber/v2"
)

// Create records a child's withdrawal request
func Create(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	reqData, ok := c.Locals("validatedWithdrawalRequest").(*withdrawalRequestValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	request, err := services.CreateWithdrawalRequest(database.Database.Db, profileID, reqData.AccountID, reqData.Amount, reqData.Description)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal request created!", fiber.Map{
		"request": request,
	})
}

// ListPending returns pending requests across the parent's children
func ListPending(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	requests, err := services.PendingRequestsForParent(database.Database.Db, profileID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending requests fetched!", fiber.Map{
		"requests": requests,
	})
}

// Approve turns a pending request into a ledger withdrawal
func Approve(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request ID!", nil)
	}

	request, err := services.ApproveWithdrawalRequest(database.Database.Db, profileID, uint(requestID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	// Notify the child when their profile carries an email
	var account models.Account
	if err := database.Database.Db.Preload("Profile").First(&account, request.AccountID).Error; err == nil {
		if account.Profile.Email != nil {
			utils.SendWithdrawalApprovedEmail(*account.Profile.Email, account.Profile.Name, request.Description, request.Amount)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal request approved!", fiber.Map{
		"request": request,
	})
}

// Reject closes a pending request without moving funds
func Reject(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request ID!", nil)
	}

	request, err := services.RejectWithdrawalRequest(database.Database.Db, profileID, uint(requestID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal request rejected!", fiber.Map{
		"request": request,
	})
}
