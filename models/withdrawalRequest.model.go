package models

import (
	"gorm.io/gorm"
)

// WithdrawalRequestStatus defines the status of a withdrawal request
type WithdrawalRequestStatus string

const (
	WithdrawalStatusPending  WithdrawalRequestStatus = "pending"
	WithdrawalStatusApproved WithdrawalRequestStatus = "approved"
	WithdrawalStatusRejected WithdrawalRequestStatus = "rejected"
)

// WithdrawalRequest is a child's request to spend allowance. Approved and
// rejected are terminal states; funds are only moved on approval.
type WithdrawalRequest struct {
	gorm.Model
	AccountID   uint                    `gorm:"not null;index" json:"accountId"`
	Amount      int64                   `gorm:"not null" json:"amount"`
	Description string                  `gorm:"type:text" json:"description"`
	Status      WithdrawalRequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}
