package services

import (
	"errors"

	"github.com/mendokusaisai/kodomo-wallet/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The ledger is the only path that moves money. Every mutation locks the
// account row, appends a transaction and updates the cached balance inside
// one database transaction, so the balance always equals the sum of the
// transaction log at commit boundaries.

// Deposit adds funds to an account and records a deposit transaction.
func Deposit(db *gorm.DB, actorID, accountID uint, amount int64, description string) (*models.Transaction, error) {
	return credit(db, actorID, accountID, amount, description, models.TransactionTypeDeposit)
}

// Reward adds funds like a deposit but with its own transaction type, so
// chore rewards stay distinguishable in reports.
func Reward(db *gorm.DB, actorID, accountID uint, amount int64, description string) (*models.Transaction, error) {
	return credit(db, actorID, accountID, amount, description, models.TransactionTypeReward)
}

func credit(db *gorm.DB, actorID, accountID uint, amount int64, description string, txnType models.TransactionType) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var txn *models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}
		if err := canManageAccount(tx, actorID, account); err != nil {
			return err
		}
		txn, err = creditTx(tx, account, amount, description, txnType)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// Withdraw removes funds from an account. The balance check runs on the
// locked row inside the same transaction as the mutation, so two
// concurrent withdrawals can never overdraw the account.
func Withdraw(db *gorm.DB, actorID, accountID uint, amount int64, description string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var txn *models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}
		if err := canManageAccount(tx, actorID, account); err != nil {
			return err
		}
		txn, err = debitTx(tx, account, amount, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// AccountTransactions returns an account's transaction history, newest
// first.
func AccountTransactions(db *gorm.DB, actorID, accountID uint, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 50
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

	var transactions []models.Transaction
	err := db.Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

// forUpdate adds a FOR UPDATE clause on dialects that support it. SQLite
// rejects the syntax and serializes writers on its own.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// lockAccount loads the account row under FOR UPDATE so concurrent writers
// on the same account serialize.
func lockAccount(tx *gorm.DB, accountID uint) (*models.Account, error) {
	var account models.Account
	err := forUpdate(tx).First(&account, accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// creditTx appends a credit transaction and bumps the cached balance.
// Callers must hold the account row lock.
func creditTx(tx *gorm.DB, account *models.Account, amount int64, description string, txnType models.TransactionType) (*models.Transaction, error) {
	txn := models.Transaction{
		AccountID:   account.ID,
		Type:        txnType,
		Amount:      amount,
		Description: description,
	}
	if err := tx.Create(&txn).Error; err != nil {
		return nil, err
	}

	account.Balance += amount
	if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// debitTx appends a withdraw transaction and decrements the cached
// balance, failing if the locked balance cannot cover the amount.
func debitTx(tx *gorm.DB, account *models.Account, amount int64, description string) (*models.Transaction, error) {
	if amount > account.Balance {
		return nil, ErrInsufficientFunds
	}

	txn := models.Transaction{
		AccountID:   account.ID,
		Type:        models.TransactionTypeWithdraw,
		Amount:      amount,
		Description: description,
	}
	if err := tx.Create(&txn).Error; err != nil {
		return nil, err
	}

	account.Balance -= amount
	if err := tx.Model(account).Update("balance", account.Balance).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}
