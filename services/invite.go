package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/mendokusaisai/kodomo-wallet/config"
	"github.com/mendokusaisai/kodomo-wallet/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invite tokens are single-use, time-limited credentials. A child invite
// attaches authentication to a placeholder profile; a parent invite grants
// a co-parent relationship edges to the inviter's children. Both share the
// pending/accepted/expired/cancelled lifecycle with forward-only
// transitions through inviteTransition.

// inviteTransition is the single place that decides whether an invite may
// move to a new status. Anything not starting from pending is rejected
// with the error matching the state the token is stuck in.
func inviteTransition(current, next models.InviteStatus) error {
	if current == models.InviteStatusPending {
		switch next {
		case models.InviteStatusAccepted, models.InviteStatusExpired, models.InviteStatusCancelled:
			return nil
		}
	}
	switch current {
	case models.InviteStatusAccepted:
		return ErrInviteAlreadyUsed
	case models.InviteStatusExpired:
		return ErrInviteExpired
	case models.InviteStatusCancelled:
		return ErrInviteNotFound
	}
	return ErrConflict
}

func inviteTTL() time.Duration {
	days := 7
	if config.AppConfig != nil && config.AppConfig.InviteExpiryDays > 0 {
		days = config.AppConfig.InviteExpiryDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// CreateChildInvite issues a token that lets the child attach login
// credentials to their placeholder profile. The provisional email is
// stored on the profile for later auto-linking.
func CreateChildInvite(db *gorm.DB, actorID, childID uint, email string) (*models.ChildInvite, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	var invite models.ChildInvite
	err := db.Transaction(func(tx *gorm.DB) error {
		var child models.Profile
		if err := tx.First(&child, childID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}
		if child.Role != models.RoleChild {
			return fmt.Errorf("%w: invites can only target child profiles", ErrValidation)
		}
		ok, err := isParentOf(tx, actorID, childID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnauthorized
		}

		if err := tx.Model(&child).Update("email", email).Error; err != nil {
			return err
		}

		invite = models.ChildInvite{
			Token:     uuid.NewString(),
			ChildID:   childID,
			Email:     email,
			Status:    models.InviteStatusPending,
			ExpiresAt: time.Now().Add(inviteTTL()),
		}
		return tx.Create(&invite).Error
	})
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// AcceptChildInvite consumes a child invite and attaches the verified
// authUserID to the bound profile. The profile id and every owned account
// and transaction are preserved; this is identity attachment, not a data
// migration. Concurrent accepts race on the conditional status update, so
// exactly one caller wins.
func AcceptChildInvite(db *gorm.DB, token, authUserID string) (*models.Profile, error) {
	if authUserID == "" {
		return nil, fmt.Errorf("%w: auth user id is required", ErrValidation)
	}

	var invite models.ChildInvite
	if err := db.Where("token = ?", token).First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}
	if err := expireIfStale(db, &models.ChildInvite{}, invite.ID, invite.Status, invite.ExpiresAt); err != nil {
		return nil, err
	}

	var profile models.Profile
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := claimInvite(tx, &models.ChildInvite{}, invite.ID); err != nil {
			return err
		}

		if err := tx.First(&profile, invite.ChildID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}
		if profile.AuthUserID != nil {
			return ErrConflict
		}

		// One auth identity maps to at most one profile.
		var linked int64
		if err := tx.Model(&models.Profile{}).Where("auth_user_id = ?", authUserID).Count(&linked).Error; err != nil {
			return err
		}
		if linked > 0 {
			return ErrConflict
		}

		profile.AuthUserID = &authUserID
		return tx.Model(&profile).Update("auth_user_id", authUserID).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateParentInvite issues a token that grants the invited co-parent
// access to all of the inviter's children. The inviter must have at least
// one child; the first one is stored as the representative target.
func CreateParentInvite(db *gorm.DB, inviterID uint, email string) (*models.ParentInvite, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	var invite models.ParentInvite
	err := db.Transaction(func(tx *gorm.DB) error {
		var inviter models.Profile
		if err := tx.First(&inviter, inviterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}
		if inviter.Role != models.RoleParent {
			return ErrUnauthorized
		}

		children, err := ChildrenOf(tx, inviterID)
		if err != nil {
			return err
		}
		if len(children) == 0 {
			return fmt.Errorf("%w: inviter has no children to share", ErrValidation)
		}

		invite = models.ParentInvite{
			Token:     uuid.NewString(),
			ChildID:   children[0].ID,
			InviterID: inviterID,
			Email:     email,
			Status:    models.InviteStatusPending,
			ExpiresAt: time.Now().Add(inviteTTL()),
		}
		return tx.Create(&invite).Error
	})
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// AcceptParentInvite consumes a parent invite and links the accepting
// parent to every child of the inviter. The inviter's own relationships
// and the children's accounts are untouched.
func AcceptParentInvite(db *gorm.DB, token string, parentID uint) error {
	var invite models.ParentInvite
	if err := db.Where("token = ?", token).First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	if err := expireIfStale(db, &models.ParentInvite{}, invite.ID, invite.Status, invite.ExpiresAt); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
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

		if err := claimInvite(tx, &models.ParentInvite{}, invite.ID); err != nil {
			return err
		}

		children, err := ChildrenOf(tx, invite.InviterID)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := addRelationshipTx(tx, parentID, child.ID, models.RelationshipParent); err != nil {
				return err
			}
		}
		return nil
	})
}

// CancelChildInvite withdraws a pending child invite.
func CancelChildInvite(db *gorm.DB, actorID uint, token string) error {
	var invite models.ChildInvite
	if err := db.Where("token = ?", token).First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	ok, err := isParentOf(db, actorID, invite.ChildID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return cancelInvite(db, &models.ChildInvite{}, invite.ID, invite.Status)
}

// CancelParentInvite withdraws a pending parent invite. Only the inviter
// may cancel it.
func CancelParentInvite(db *gorm.DB, actorID uint, token string) error {
	var invite models.ParentInvite
	if err := db.Where("token = ?", token).First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	if invite.InviterID != actorID {
		return ErrUnauthorized
	}
	return cancelInvite(db, &models.ParentInvite{}, invite.ID, invite.Status)
}

// expireIfStale rejects non-pending tokens and lazily materializes time
// expiry: a token still pending in storage but past its deadline flips to
// expired and is reported as such, never silently accepted.
func expireIfStale(db *gorm.DB, model interface{}, id uint, status models.InviteStatus, expiresAt time.Time) error {
	if status != models.InviteStatusPending {
		return inviteTransition(status, models.InviteStatusAccepted)
	}
	if time.Now().After(expiresAt) {
		result := db.Model(model).Where("id = ? AND status = ?", id, models.InviteStatusPending).
			Update("status", models.InviteStatusExpired)
		if result.Error != nil {
			return result.Error
		}
		return ErrInviteExpired
	}
	return nil
}

// claimInvite performs the serialized pending->accepted transition. The
// conditional update guarantees that of any number of concurrent accept
// calls exactly one sees RowsAffected == 1.
func claimInvite(tx *gorm.DB, model interface{}, id uint) error {
	result := tx.Model(model).
		Where("id = ? AND status = ? AND expires_at > ?", id, models.InviteStatusPending, time.Now()).
		Update("status", models.InviteStatusAccepted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInviteAlreadyUsed
	}
	return nil
}

func cancelInvite(db *gorm.DB, model interface{}, id uint, status models.InviteStatus) error {
	if err := inviteTransition(status, models.InviteStatusCancelled); err != nil {
		return err
	}
	result := db.Model(model).
		Where("id = ? AND status = ?", id, models.InviteStatusPending).
		Update("status", models.InviteStatusCancelled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}
