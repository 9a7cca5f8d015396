package models

import (
	"gorm.io/gorm"
)

// ProfileRole defines the role of a profile
type ProfileRole string

const (
	RoleParent ProfileRole = "parent"
	RoleChild  ProfileRole = "child"
)

// Profile represents a family member. Children can exist as placeholder
// profiles before they have login credentials: AuthUserID stays NULL until
// an invite is accepted or an email match links them on signup.
type Profile struct {
	gorm.Model
	Name       string      `gorm:"not null" json:"name"`
	Role       ProfileRole `gorm:"type:varchar(10);not null" json:"role"` // immutable after creation
	AuthUserID *string     `gorm:"type:varchar(100);uniqueIndex" json:"authUserId"`
	Email      *string     `gorm:"type:varchar(255);index" json:"email"`
	AvatarURL  string      `gorm:"default:''" json:"avatarUrl"`
}

func (Profile) TableName() string {
	return "profiles"
}
