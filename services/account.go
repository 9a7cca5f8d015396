package services

import (
	"fmt"

	"github.com/mendokusaisai/kodomo-wallet/models"

	"gorm.io/gorm"
)

// UpdateGoal sets or clears the savings goal on an account. Passing nil
// values clears the goal.
func UpdateGoal(db *gorm.DB, actorID, accountID uint, goalName *string, goalAmount *int64) (*models.Account, error) {
	if goalAmount != nil && *goalAmount < 0 {
		return nil, fmt.Errorf("%w: goal amount must be non-negative", ErrInvalidAmount)
	}

	var account *models.Account
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		account, err = findAccount(tx, accountID)
		if err != nil {
			return err
		}
		if err := canManageAccount(tx, actorID, account); err != nil {
			return err
		}

		account.GoalName = goalName
		account.GoalAmount = goalAmount
		return tx.Model(account).Updates(map[string]interface{}{
			"goal_name":   goalName,
			"goal_amount": goalAmount,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// FamilyAccounts returns the accounts visible to a profile: parents see
// their children's accounts, children see their own.
func FamilyAccounts(db *gorm.DB, profileID uint) ([]models.Account, error) {
	var profile models.Profile
	if err := db.First(&profile, profileID).Error; err != nil {
		return nil, ErrProfileNotFound
	}

	var accounts []models.Account
	if profile.Role == models.RoleParent {
		err := db.
			Joins("JOIN family_relationships fr ON fr.child_id = accounts.profile_id AND fr.deleted_at IS NULL").
			Where("fr.parent_id = ?", profileID).
			Order("accounts.id").
			Find(&accounts).Error
		return accounts, err
	}

	err := db.Where("profile_id = ?", profileID).Order("id").Find(&accounts).Error
	return accounts, err
}

// BalanceDrift reports one account whose cached balance disagrees with
// its transaction log.
type BalanceDrift struct {
	AccountID uint
	Cached    int64
	Computed  int64
}

// AuditBalances recomputes every balance from the append-only transaction
// log and returns the accounts that drifted. The cached balance is only a
// transactionally maintained value; this audit is the reconciliation
// backstop.
func AuditBalances(db *gorm.DB) ([]BalanceDrift, error) {
	var accounts []models.Account
	if err := db.Find(&accounts).Error; err != nil {
		return nil, err
	}

	var drifts []BalanceDrift
	for _, account := range accounts {
		type sums struct {
			Credits int64
			Debits  int64
		}
		var s sums
		err := db.Model(&models.Transaction{}).
			Select(
				"COALESCE(SUM(CASE WHEN type IN (?, ?) THEN amount ELSE 0 END), 0) AS credits, "+
					"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS debits",
				models.TransactionTypeDeposit, models.TransactionTypeReward, models.TransactionTypeWithdraw,
			).
			Where("account_id = ?", account.ID).
			Scan(&s).Error
		if err != nil {
			return nil, err
		}

		computed := s.Credits - s.Debits
		if computed != account.Balance {
			drifts = append(drifts, BalanceDrift{
				AccountID: account.ID,
				Cached:    account.Balance,
				Computed:  computed,
			})
		}
	}
	return drifts, nil
}
