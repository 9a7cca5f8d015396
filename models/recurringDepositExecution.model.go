package models

import (
	"time"

	"gorm.io/gorm"
)

// ExecutionStatus defines the outcome of one recurring deposit run item
type ExecutionStatus string

const (
	ExecutionStatusSuccess ExecutionStatus = "success"
	ExecutionStatusFailed  ExecutionStatus = "failed"
	ExecutionStatusSkipped ExecutionStatus = "skipped"
)

// RecurringDepositExecution records one attempt of the monthly run.
// SuccessKey is "<recurringDepositID>-YYYY-MM" and set only on success
// rows; its unique index is what enforces at most one success per
// schedule per calendar month, even under concurrent triggers. Failed
// and skipped rows leave it NULL so they never collide.
type RecurringDepositExecution struct {
	gorm.Model
	RecurringDepositID uint            `gorm:"not null;index" json:"recurringDepositId"`
	TransactionID      *uint           `json:"transactionId"`
	Status             ExecutionStatus `gorm:"type:varchar(20);not null" json:"status"`
	ErrorMessage       string          `gorm:"type:text" json:"errorMessage"`
	Amount             int64           `gorm:"not null" json:"amount"`
	DayOfMonth         int             `gorm:"not null" json:"dayOfMonth"`
	SuccessKey         *string         `gorm:"type:varchar(40);uniqueIndex" json:"-"`
	ExecutedAt         time.Time       `gorm:"not null" json:"executedAt"`
}

func (RecurringDepositExecution) TableName() string {
	return "recurring_deposit_executions"
}
