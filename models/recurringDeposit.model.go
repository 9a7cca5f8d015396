package models

import (
	"gorm.io/gorm"
)

// RecurringDeposit is a monthly allowance schedule. At most one exists per
// account; DayOfMonth values past the end of a month run on its last day.
type RecurringDeposit struct {
	gorm.Model
	AccountID  uint  `gorm:"not null;uniqueIndex" json:"accountId"`
	Amount     int64 `gorm:"not null" json:"amount"`
	DayOfMonth int   `gorm:"not null" json:"dayOfMonth"` // 1-31
	IsActive   bool  `gorm:"not null;default:true" json:"isActive"`

	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

func (RecurringDeposit) TableName() string {
	return "recurring_deposits"
}
