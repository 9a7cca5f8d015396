package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mendokusaisai/kodomo-wallet/models"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// RecurringDepositForAccount returns the schedule configured for an
// account, if any. Only a parent of the account owner (or the owner's
// parent viewing their own child) may read it.
func RecurringDepositForAccount(db *gorm.DB, actorID, accountID uint) (*models.RecurringDeposit, error) {
	account, err := findAccount(db, accountID)
	if err != nil {
		return nil, err
	}
	if err := requireParentOf(db, actorID, account); err != nil {
		return nil, err
	}

	var rd models.RecurringDeposit
	if err := db.Where("account_id = ?", accountID).First(&rd).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rd, nil
}

// CreateOrUpdateRecurringDeposit configures the monthly allowance for an
// account. An account has at most one schedule, so an existing one is
// updated in place.
func CreateOrUpdateRecurringDeposit(db *gorm.DB, actorID, accountID uint, amount int64, dayOfMonth int, isActive bool) (*models.RecurringDeposit, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if dayOfMonth < 1 || dayOfMonth > 31 {
		return nil, fmt.Errorf("%w: day of month must be between 1 and 31", ErrValidation)
	}

	var rd models.RecurringDeposit
	err := db.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}
		if err := requireParentOf(tx, actorID, account); err != nil {
			return err
		}

		err = tx.Where("account_id = ?", accountID).First(&rd).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rd = models.RecurringDeposit{
				AccountID:  accountID,
				Amount:     amount,
				DayOfMonth: dayOfMonth,
				IsActive:   isActive,
			}
			return tx.Create(&rd).Error
		}
		if err != nil {
			return err
		}

		rd.Amount = amount
		rd.DayOfMonth = dayOfMonth
		rd.IsActive = isActive
		return tx.Model(&rd).Updates(map[string]interface{}{
			"amount":       amount,
			"day_of_month": dayOfMonth,
			"is_active":    isActive,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &rd, nil
}

// DeleteRecurringDeposit removes the schedule for an account. Past
// execution rows are kept for audit.
func DeleteRecurringDeposit(db *gorm.DB, actorID, accountID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		account, err := findAccount(tx, accountID)
		if err != nil {
			return err
		}
		if err := requireParentOf(tx, actorID, account); err != nil {
			return err
		}

		// Hard delete: the unique account index must free up so a new
		// schedule can be configured later.
		result := tx.Unscoped().Where("account_id = ?", accountID).Delete(&models.RecurringDeposit{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRecurringDepositNotFound
		}
		return nil
	})
}

// RunStats summarizes one recurring deposit batch run.
type RunStats struct {
	Success int
	Skipped int
	Failed  int
}

// ProcessRecurringDeposits executes every active schedule due at runTime.
// A schedule is due when its day matches, with days past the month's end
// clamped to the last day. Each item commits independently; the unique
// success key makes a concurrent duplicate run a no-op rather than a
// double deposit.
func ProcessRecurringDeposits(db *gorm.DB, runTime time.Time) (RunStats, error) {
	stats := RunStats{}
	day := runTime.Day()
	lastDay := now.With(runTime).EndOfMonth().Day()

	query := db.Where("is_active = ?", true)
	if day == lastDay {
		// A dayOfMonth of 29-31 in a shorter month runs on the last day.
		query = query.Where("day_of_month >= ?", day)
	} else {
		query = query.Where("day_of_month = ?", day)
	}

	var due []models.RecurringDeposit
	if err := query.Order("id").Find(&due).Error; err != nil {
		return stats, err
	}

	for _, rd := range due {
		switch processRecurringDepositItem(db, rd, runTime) {
		case models.ExecutionStatusSuccess:
			stats.Success++
		case models.ExecutionStatusSkipped:
			stats.Skipped++
		case models.ExecutionStatusFailed:
			stats.Failed++
		}
	}
	return stats, nil
}

// processRecurringDepositItem handles one schedule and always records an
// execution row. Its failure never aborts the batch.
func processRecurringDepositItem(db *gorm.DB, rd models.RecurringDeposit, runTime time.Time) models.ExecutionStatus {
	key := executionSuccessKey(rd.ID, runTime)

	// Cheap pre-check; the unique index on success_key is the real guard.
	var executed int64
	if err := db.Model(&models.RecurringDepositExecution{}).
		Where("success_key = ?", key).
		Count(&executed).Error; err == nil && executed > 0 {
		recordExecution(db, rd, runTime, models.RecurringDepositExecution{
			Status:       models.ExecutionStatusSkipped,
			ErrorMessage: "already executed this month",
		})
		return models.ExecutionStatusSkipped
	}

	var txnID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, rd.AccountID)
		if err != nil {
			return err
		}
		txn, err := creditTx(tx, account, rd.Amount, "recurring deposit", models.TransactionTypeDeposit)
		if err != nil {
			return err
		}
		txnID = txn.ID

		// The success row commits with the deposit; a duplicate key here
		// rolls the deposit back too, which is what keeps a concurrent
		// second trigger from paying twice.
		exec := models.RecurringDepositExecution{
			RecurringDepositID: rd.ID,
			TransactionID:      &txnID,
			Status:             models.ExecutionStatusSuccess,
			Amount:             rd.Amount,
			DayOfMonth:         rd.DayOfMonth,
			SuccessKey:         &key,
			ExecutedAt:         runTime,
		}
		return tx.Create(&exec).Error
	})
	if err == nil {
		return models.ExecutionStatusSuccess
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		recordExecution(db, rd, runTime, models.RecurringDepositExecution{
			Status:       models.ExecutionStatusSkipped,
			ErrorMessage: ErrDuplicateExecution.Error(),
		})
		return models.ExecutionStatusSkipped
	}

	recordExecution(db, rd, runTime, models.RecurringDepositExecution{
		Status:       models.ExecutionStatusFailed,
		ErrorMessage: err.Error(),
	})
	return models.ExecutionStatusFailed
}

func recordExecution(db *gorm.DB, rd models.RecurringDeposit, runTime time.Time, exec models.RecurringDepositExecution) {
	exec.RecurringDepositID = rd.ID
	exec.Amount = rd.Amount
	exec.DayOfMonth = rd.DayOfMonth
	exec.ExecutedAt = runTime
	if err := db.Create(&exec).Error; err != nil {
		log.Printf("[RECURRING-SCHEDULER] Failed to record %s execution for schedule %d: %v", exec.Status, rd.ID, err)
	}
}

func executionSuccessKey(recurringDepositID uint, runTime time.Time) string {
	return fmt.Sprintf("%d-%s", recurringDepositID, runTime.Format("2006-01"))
}

func findAccount(tx *gorm.DB, accountID uint) (*models.Account, error) {
	var account models.Account
	if err := tx.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}
