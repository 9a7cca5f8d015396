package models

import (
	"time"

	"gorm.io/gorm"
)

// InviteStatus defines the lifecycle of an invite token. Transitions are
// forward-only: pending is the only state an invite can leave.
type InviteStatus string

const (
	InviteStatusPending   InviteStatus = "pending"
	InviteStatusAccepted  InviteStatus = "accepted"
	InviteStatusExpired   InviteStatus = "expired"
	InviteStatusCancelled InviteStatus = "cancelled"
)

// ParentInvite grants a co-parent access to the inviter's children. The
// token is single-use and time-limited; ChildID records the inviter's
// first child as the representative target, but acceptance links every
// child of the inviter.
type ParentInvite struct {
	gorm.Model
	Token     string       `gorm:"type:varchar(36);not null;uniqueIndex" json:"token"`
	ChildID   uint         `gorm:"not null" json:"childId"`
	InviterID uint         `gorm:"not null;index" json:"inviterId"`
	Email     string       `gorm:"type:varchar(255);not null" json:"email"`
	Status    InviteStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ExpiresAt time.Time    `gorm:"not null" json:"expiresAt"`
}

func (ParentInvite) TableName() string {
	return "parent_invites"
}
