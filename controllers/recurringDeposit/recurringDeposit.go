package recurringDepositController

import (
	"github.com/mendokusaisai/kodomo-wallet/database"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	"github.com/mendokusaisai/kodomo-wallet/services"
	recurringDepositValidator "github.com/mendokusaisai/kodomo-wallet/validators/recurringDeposit"

	"github.com/gofiber/fiber/v2"
)

// Get returns the recurring deposit configured for an account
func Get(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	accountID, err := c.ParamsInt("accountId")
	if err != nil || accountID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid account ID!", nil)
	}

	rd, err := services.RecurringDepositForAccount(database.Database.Db, profileID, uint(accountID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recurring deposit fetched!", fiber.Map{
		"recurringDeposit": rd,
	})
}

// CreateOrUpdate configures the monthly allowance for an account
func CreateOrUpdate(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	reqData, ok := c.Locals("validatedRecurringDeposit").(*recurringDepositValidator.CreateOrUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	isActive := true
	if reqData.IsActive != nil {
		isActive = *reqData.IsActive
	}

	rd, err := services.CreateOrUpdateRecurringDeposit(database.Database.Db, profileID, reqData.AccountID, reqData.Amount, reqData.DayOfMonth, isActive)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recurring deposit saved!", fiber.Map{
		"recurringDeposit": rd,
	})
}

// Delete removes the recurring deposit from an account
func Delete(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	accountID, err := c.ParamsInt("accountId")
	if err != nil || accountID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid account ID!", nil)
	}

	if err := services.DeleteRecurringDeposit(database.Database.Db, profileID, uint(accountID)); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recurring deposit deleted!", nil)
}
