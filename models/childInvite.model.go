package models

import (
	"time"

	"gorm.io/gorm"
)

// ChildInvite attaches authentication to a placeholder child profile.
// Accepting it sets Profile.AuthUserID on the bound profile; it never
// migrates or merges any data.
type ChildInvite struct {
	gorm.Model
	Token     string       `gorm:"type:varchar(36);not null;uniqueIndex" json:"token"`
	ChildID   uint         `gorm:"not null;index" json:"childId"`
	Email     string       `gorm:"type:varchar(255);not null" json:"email"`
	Status    InviteStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ExpiresAt time.Time    `gorm:"not null" json:"expiresAt"`
}

func (ChildInvite) TableName() string {
	return "child_invites"
}
