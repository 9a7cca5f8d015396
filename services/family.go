package services

import (
	"errors"

	"github.com/mendokusaisai/kodomo-wallet/models"

	"gorm.io/gorm"
)

// AddRelationship creates a parent->child edge. The parent side must have
// the parent role. Inserting an edge that already exists is a no-op.
func AddRelationship(db *gorm.DB, parentID, childID uint, relType models.RelationshipType) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return addRelationshipTx(tx, parentID, childID, relType)
	})
}

// addRelationshipTx is the variant used inside a surrounding transaction
// (parent invite acceptance links several children atomically).
func addRelationshipTx(tx *gorm.DB, parentID, childID uint, relType models.RelationshipType) error {
	var parent models.Profile
	if err := tx.First(&parent, parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	if parent.Role != models.RoleParent {
		return ErrUnauthorized
	}

	var child models.Profile
	if err := tx.First(&child, childID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	if relType == "" {
		relType = models.RelationshipParent
	}

	edge := models.FamilyRelationship{ParentID: parentID, ChildID: childID, RelationshipType: relType}
	if err := tx.Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil // idempotent insert
		}
		return err
	}
	return nil
}

// RemoveRelationship deletes a parent->child edge. Only the parent side of
// the edge may remove it; the child's profile, account and history are
// left untouched.
func RemoveRelationship(db *gorm.DB, actorID, parentID, childID uint) error {
	if actorID != parentID {
		return ErrUnauthorized
	}

	result := db.Unscoped().
		Where("parent_id = ? AND child_id = ?", parentID, childID).
		Delete(&models.FamilyRelationship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// ChildrenOf returns the child profiles linked to a parent.
func ChildrenOf(db *gorm.DB, parentID uint) ([]models.Profile, error) {
	var children []models.Profile
	err := db.
		Joins("JOIN family_relationships fr ON fr.child_id = profiles.id AND fr.deleted_at IS NULL").
		Where("fr.parent_id = ?", parentID).
		Order("profiles.id").
		Find(&children).Error
	return children, err
}

// ParentsOf returns the parent profiles linked to a child. A child may
// legitimately have more than one parent.
func ParentsOf(db *gorm.DB, childID uint) ([]models.Profile, error) {
	var parents []models.Profile
	err := db.
		Joins("JOIN family_relationships fr ON fr.parent_id = profiles.id AND fr.deleted_at IS NULL").
		Where("fr.child_id = ?", childID).
		Order("profiles.id").
		Find(&parents).Error
	return parents, err
}

// isParentOf reports whether parentID has a relationship edge to childID.
func isParentOf(tx *gorm.DB, parentID, childID uint) (bool, error) {
	var count int64
	err := tx.Model(&models.FamilyRelationship{}).
		Where("parent_id = ? AND child_id = ?", parentID, childID).
		Count(&count).Error
	return count > 0, err
}

// canManageAccount is the capability check every ledger operation runs
// before mutating: the actor must own the account or be a parent of the
// owner.
func canManageAccount(tx *gorm.DB, actorID uint, account *models.Account) error {
	if actorID == account.ProfileID {
		return nil
	}
	ok, err := isParentOf(tx, actorID, account.ProfileID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}

// requireParentOf is the stricter capability check for approvals and
// schedule management: the actor must be a parent of the account owner.
func requireParentOf(tx *gorm.DB, actorID uint, account *models.Account) error {
	ok, err := isParentOf(tx, actorID, account.ProfileID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}
