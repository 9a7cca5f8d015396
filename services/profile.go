package services

import (
	"errors"

	"github.com/mendokusaisai/kodomo-wallet/models"

	"gorm.io/gorm"
)

// CreateChild creates a placeholder child profile, its account and the
// relationship edge in one transaction. A non-zero starting balance is
// booked as an initial deposit so the balance always matches the
// transaction log.
func CreateChild(db *gorm.DB, parentID uint, name string, initialBalance int64, email *string) (*models.Profile, error) {
	if name == "" {
		return nil, ErrValidation
	}
	if initialBalance < 0 {
		return nil, ErrInvalidAmount
	}

	var child models.Profile
	err := db.Transaction(func(tx *gorm.DB) error {
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

		child = models.Profile{
			Name:  name,
			Role:  models.RoleChild,
			Email: email,
		}
		if err := tx.Create(&child).Error; err != nil {
			return err
		}

		account := models.Account{ProfileID: child.ID, Currency: "JPY"}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		if err := addRelationshipTx(tx, parentID, child.ID, models.RelationshipParent); err != nil {
			return err
		}

		if initialBalance > 0 {
			if _, err := creditTx(tx, &account, initialBalance, "initial balance", models.TransactionTypeDeposit); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// DeleteChild removes a child profile and everything hanging off it:
// accounts, transactions, withdrawal requests, recurring schedules and
// their executions, relationship edges and open invites.
func DeleteChild(db *gorm.DB, parentID, childID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var child models.Profile
		if err := tx.First(&child, childID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}
		if child.Role != models.RoleChild {
			return ErrValidation
		}
		ok, err := isParentOf(tx, parentID, childID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnauthorized
		}

		var accounts []models.Account
		if err := tx.Where("profile_id = ?", childID).Find(&accounts).Error; err != nil {
			return err
		}
		for _, account := range accounts {
			var rds []models.RecurringDeposit
			if err := tx.Where("account_id = ?", account.ID).Find(&rds).Error; err != nil {
				return err
			}
			for _, rd := range rds {
				if err := tx.Where("recurring_deposit_id = ?", rd.ID).Delete(&models.RecurringDepositExecution{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Unscoped().Where("account_id = ?", account.ID).Delete(&models.RecurringDeposit{}).Error; err != nil {
				return err
			}
			if err := tx.Where("account_id = ?", account.ID).Delete(&models.WithdrawalRequest{}).Error; err != nil {
				return err
			}
			if err := tx.Where("account_id = ?", account.ID).Delete(&models.Transaction{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Account{}, account.ID).Error; err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("child_id = ?", childID).Delete(&models.FamilyRelationship{}).Error; err != nil {
			return err
		}
		if err := tx.Where("child_id = ?", childID).Delete(&models.ChildInvite{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Profile{}, childID).Error
	})
}

// UpdateProfile edits name and avatar. A profile can edit itself and a
// parent can edit their children; role is immutable after creation.
func UpdateProfile(db *gorm.DB, actorID, profileID uint, name, avatarURL *string) (*models.Profile, error) {
	var profile models.Profile
	if err := db.First(&profile, profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if actorID != profileID {
		ok, err := isParentOf(db, actorID, profileID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrUnauthorized
		}
	}

	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
		profile.Name = *name
	}
	if avatarURL != nil {
		updates["avatar_url"] = *avatarURL
		profile.AvatarURL = *avatarURL
	}
	if len(updates) == 0 {
		return &profile, nil
	}
	if err := db.Model(&profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileByAuthUserID resolves the profile attached to an identity
// provider subject, or nil when none is linked yet.
func ProfileByAuthUserID(db *gorm.DB, authUserID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("auth_user_id = ?", authUserID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// AutoLinkOnSignup attaches a fresh auth identity to an unauthenticated
// placeholder profile whose provisional email matches the verified signup
// email. Returns nil without error when there is nothing to link.
func AutoLinkOnSignup(db *gorm.DB, authUserID, email string) (*models.Profile, error) {
	if authUserID == "" || email == "" {
		return nil, ErrValidation
	}

	var profile models.Profile
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ? AND auth_user_id IS NULL", email).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = models.Profile{}
			return nil
		}
		if err != nil {
			return err
		}

		result := tx.Model(&models.Profile{}).
			Where("id = ? AND auth_user_id IS NULL", profile.ID).
			Update("auth_user_id", authUserID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrConflict
		}
		profile.AuthUserID = &authUserID
		return nil
	})
	if err != nil {
		return nil, err
	}
	if profile.ID == 0 {
		return nil, nil
	}
	return &profile, nil
}
