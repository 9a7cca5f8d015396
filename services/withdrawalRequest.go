package services

import (
	"errors"

	"github.com/mendokusaisai/kodomo-wallet/models"

	"gorm.io/gorm"
)

// CreateWithdrawalRequest records a child's request to spend. The balance
// check here is a soft one for early feedback; no funds are reserved, the
// authoritative check happens at approval.
func CreateWithdrawalRequest(db *gorm.DB, actorID, accountID uint, amount int64, description string) (*models.WithdrawalRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var account models.Account
	if err := db.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if err := canManageAccount(db, actorID, &account); err != nil {
		return nil, err
	}
	if amount > account.Balance {
		return nil, ErrInsufficientFunds
	}

	request := models.WithdrawalRequest{
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
		Status:      models.WithdrawalStatusPending,
	}
	if err := db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// ApproveWithdrawalRequest turns a pending request into a ledger
// withdrawal. The balance is re-read on the locked account row because it
// may have changed since the request was created; if it no longer covers
// the amount the approval fails and the request stays pending, so the
// parent can top up and retry or reject explicitly.
func ApproveWithdrawalRequest(db *gorm.DB, actorID, requestID uint) (*models.WithdrawalRequest, error) {
	var request models.WithdrawalRequest
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if request.Status != models.WithdrawalStatusPending {
			return ErrConflict
		}

		account, err := lockAccount(tx, request.AccountID)
		if err != nil {
			return err
		}
		if err := requireParentOf(tx, actorID, account); err != nil {
			return err
		}
		if request.Amount > account.Balance {
			return ErrInsufficientFundsAtApproval
		}

		if _, err := debitTx(tx, account, request.Amount, request.Description); err != nil {
			return err
		}

		request.Status = models.WithdrawalStatusApproved
		return tx.Model(&request).Update("status", models.WithdrawalStatusApproved).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// RejectWithdrawalRequest closes a pending request without any ledger
// side effect.
func RejectWithdrawalRequest(db *gorm.DB, actorID, requestID uint) (*models.WithdrawalRequest, error) {
	var request models.WithdrawalRequest
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if request.Status != models.WithdrawalStatusPending {
			return ErrConflict
		}

		var account models.Account
		if err := tx.First(&account, request.AccountID).Error; err != nil {
			return err
		}
		if err := requireParentOf(tx, actorID, &account); err != nil {
			return err
		}

		request.Status = models.WithdrawalStatusRejected
		return tx.Model(&request).Update("status", models.WithdrawalStatusRejected).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// PendingRequestsForParent lists pending requests across all accounts of
// the parent's children.
func PendingRequestsForParent(db *gorm.DB, parentID uint) ([]models.WithdrawalRequest, error) {
	var requests []models.WithdrawalRequest
	err := db.
		Joins("JOIN accounts ON accounts.id = withdrawal_requests.account_id AND accounts.deleted_at IS NULL").
		Joins("JOIN family_relationships fr ON fr.child_id = accounts.profile_id AND fr.deleted_at IS NULL").
		Where("fr.parent_id = ? AND withdrawal_requests.status = ?", parentID, models.WithdrawalStatusPending).
		Order("withdrawal_requests.created_at").
		Find(&requests).Error
	return requests, err
}
