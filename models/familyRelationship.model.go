package models

import (
	"gorm.io/gorm"
)

// RelationshipType defines the kind of parent-side relationship
type RelationshipType string

const (
	RelationshipParent   RelationshipType = "parent"
	RelationshipGuardian RelationshipType = "guardian"
)

// FamilyRelationship is a parent->child edge. A child may have several
// parents (co-parents, guardians); the (parent, child) pair is unique.
type FamilyRelationship struct {
	gorm.Model
	ParentID         uint             `gorm:"not null;uniqueIndex:idx_parent_child" json:"parentId"`
	ChildID          uint             `gorm:"not null;uniqueIndex:idx_parent_child" json:"childId"`
	RelationshipType RelationshipType `gorm:"type:varchar(20);not null;default:'parent'" json:"relationshipType"`

	Parent Profile `gorm:"foreignKey:ParentID" json:"-"`
	Child  Profile `gorm:"foreignKey:ChildID" json:"-"`
}

func (FamilyRelationship) TableName() string {
	return "family_relationships"
}
