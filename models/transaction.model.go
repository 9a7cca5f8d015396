package models

import (
	"gorm.io/gorm"
)

// TransactionType defines the type of ledger transaction
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeReward   TransactionType = "reward"
)

// Transaction is an append-only ledger row. Rows are never updated or
// deleted after creation; the account balance must always equal the sum
// of deposits and rewards minus withdrawals.
type Transaction struct {
	gorm.Model
	AccountID   uint            `gorm:"not null;index" json:"accountId"`
	Type        TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount      int64           `gorm:"not null" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`

	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
