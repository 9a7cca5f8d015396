package accountController

import (
	"github.com/mendokusaisai/kodomo-wallet/database"
	"github.com/mendokusaisai/kodomo-wallet/middleware"
	"github.com/mendokusaisai/kodomo-wallet/services"
	accountValidator "github.com/mendokusaisai/kodomo-wallet/validators/account"

	"github.com/gofiber/fiber/v2"
)

// GetFamilyAccounts returns the accounts visible to the acting profile
func GetFamilyAccounts(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	accounts, err := services.FamilyAccounts(database.Database.Db, profileID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Accounts fetched!", fiber.Map{
		"accounts": accounts,
	})
}

// GetHistory returns an account's transaction history
func GetHistory(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	accountID, err := c.ParamsInt("id")
	if err != nil || accountID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid account ID!", nil)
	}
	limit := c.QueryInt("limit", 50)

	transactions, err := services.AccountTransactions(database.Database.Db, profileID, uint(accountID), limit)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction history fetched!", fiber.Map{
		"transactions": transactions,
	})
}

// Deposit adds funds to a child's account
func Deposit(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	reqData, ok := c.Locals("validatedDeposit").(*accountValidator.AmountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	txn, err := services.Deposit(database.Database.Db, profileID, reqData.AccountID, reqData.Amount, reqData.Description)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deposit successful!", fiber.Map{
		"transactionId": txn.ID,
		"amount":        txn.Amount,
	})
}

// Withdraw removes funds from a child's account
func Withdraw(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	reqData, ok := c.Locals("validatedWithdraw").(*accountValidator.AmountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	txn, err := services.Withdraw(database.Database.Db, profileID, reqData.AccountID, reqData.Amount, reqData.Description)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal successful!", fiber.Map{
		"transactionId": txn.ID,
		"amount":        txn.Amount,
	})
}

// Reward credits a chore reward to a child's account
func Reward(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	reqData, ok := c.Locals("validatedReward").(*accountValidator.AmountRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	txn, err := services.Reward(database.Database.Db, profileID, reqData.AccountID, reqData.Amount, reqData.Description)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reward added!", fiber.Map{
		"transactionId": txn.ID,
		"amount":        txn.Amount,
	})
}

// UpdateGoal sets or clears an account's savings goal
func UpdateGoal(c *fiber.Ctx) error {
	profileID := c.Locals("profileId").(uint)

	reqData, ok := c.Locals("validatedGoal").(*accountValidator.GoalRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	account, err := services.UpdateGoal(database.Database.Db, profileID, reqData.AccountID, reqData.GoalName, reqData.GoalAmount)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goal updated!", fiber.Map{
		"account": account,
	})
}
