package models

import (
	"gorm.io/gorm"
)

// Account holds a child's allowance balance. Balance is a transactionally
// maintained cache over the transactions table, in minor currency units.
type Account struct {
	gorm.Model
	ProfileID  uint    `gorm:"not null;index" json:"profileId"`
	Balance    int64   `gorm:"not null;default:0" json:"balance"`
	Currency   string  `gorm:"type:varchar(3);not null;default:'JPY'" json:"currency"`
	GoalName   *string `gorm:"type:varchar(255)" json:"goalName"`
	GoalAmount *int64  `json:"goalAmount"`

	Profile Profile `gorm:"foreignKey:ProfileID" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}
