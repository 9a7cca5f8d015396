package services

import (
	"testing"
	"time"

	"github.com/mendokusaisai/kodomo-wallet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChildInviteStoresProvisionalEmail(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, _ := seedChildWithAccount(t, db, parent.ID, "Sora", 0)

	invite, err := CreateChildInvite(db, parent.ID, child.ID, "sora@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, invite.Token)
	assert.Equal(t, models.InviteStatusPending, invite.Status)
	assert.True(t, invite.ExpiresAt.After(time.Now()))

	var got models.Profile
	require.NoError(t, db.First(&got, child.ID).Error)
	require.NotNil(t, got.Email)
	assert.Equal(t, "sora@example.com", *got.Email)
}

func TestCreateChildInviteRequiresParentOfChild(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	stranger := seedParent(t, db, "Ren")
	child, _ := seedChildWithAccount(t, db, parent.ID, "Sora", 0)

	_, err := CreateChildInvite(db, stranger.ID, child.ID, "sora@example.com")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = CreateChildInvite(db, parent.ID, parent.ID, "mio@example.com")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAcceptChildInviteAttachesIdentity(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, account := seedChildWithAccount(t, db, parent.ID, "Sora", 500)

	invite, err := CreateChildInvite(db, parent.ID, child.ID, "sora@example.com")
	require.NoError(t, err)

	linked, err := AcceptChildInvite(db, invite.Token, "auth-sub-1")
	require.NoError(t, err)

	// Identity attachment only: same profile, same account, same money.
	assert.Equal(t, child.ID, linked.ID)
	require.NotNil(t, linked.AuthUserID)
	assert.Equal(t, "auth-sub-1", *linked.AuthUserID)
	assert.Equal(t, int64(500), reloadAccount(t, db, account.ID).Balance)
}

func TestAcceptChildInviteIsSingleUse(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, _ := seedChildWithAccount(t, db, parent.ID, "Sora", 0)

	invite, err := CreateChildInvite(db, parent.ID, child.ID, "sora@example.com")
	require.NoError(t, err)

	_, err = AcceptChildInvite(db, invite.Token, "auth-sub-1")
	require.NoError(t, err)

	_, err = AcceptChildInvite(db, invite.Token, "auth-sub-2")
	assert.ErrorIs(t, err, ErrInviteAlreadyUsed)

	var got models.Profile
	require.NoError(t, db.First(&got, child.ID).Error)
	assert.Equal(t, "auth-sub-1", *got.AuthUserID)
}

func TestAcceptChildInviteExpires(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, _ := seedChildWithAccount(t, db, parent.ID, "Sora", 0)

	invite, err := CreateChildInvite(db, parent.ID, child.ID, "sora@example.com")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.ChildInvite{}).Where("id = ?", invite.ID).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	_, err = AcceptChildInvite(db, invite.Token, "auth-sub-1")
	assert.ErrorIs(t, err, ErrInviteExpired)

	// The stale pending row is materialized as expired.
	var got models.ChildInvite
	require.NoError(t, db.First(&got, invite.ID).Error)
	assert.Equal(t, models.InviteStatusExpired, got.Status)
}

func TestExpireStaleInviteSurfacesWriteFailure(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.ChildInvite{}))

	err := expireIfStale(db, &models.ChildInvite{}, 1, models.InviteStatusPending, time.Now().Add(-time.Hour))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInviteExpired)
}

func TestAcceptChildInviteProfileAlreadyLinked(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, _ := seedChildWithAccount(t, db, parent.ID, "Sora", 0)

	invite, err := CreateChildInvite(db, parent.ID, child.ID, "sora@example.com")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Profile{}).Where("id = ?", child.ID).
		Update("auth_user_id", "someone-else").Error)

	_, err = AcceptChildInvite(db, invite.Token, "auth-sub-1")
	assert.ErrorIs(t, err, ErrConflict)

	// The failed accept rolls the claim back, the token is not burned.
	var got models.ChildInvite
	require.NoError(t, db.First(&got, invite.ID).Error)
	assert.Equal(t, models.InviteStatusPending, got.Status)
}

func TestCancelChildInvite(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, _ := seedChildWithAccount(t, db, parent.ID, "Sora", 0)

	invite, err := CreateChildInvite(db, parent.ID, child.ID, "sora@example.com")
	require.NoError(t, err)
	require.NoError(t, CancelChildInvite(db, parent.ID, invite.Token))

	_, err = AcceptChildInvite(db, invite.Token, "auth-sub-1")
	assert.ErrorIs(t, err, ErrInviteNotFound)
}

func TestAcceptUnknownToken(t *testing.T) {
	db := newTestDB(t)

	_, err := AcceptChildInvite(db, "no-such-token", "auth-sub-1")
	assert.ErrorIs(t, err, ErrInviteNotFound)

	err = AcceptParentInvite(db, "no-such-token", 1)
	assert.ErrorIs(t, err, ErrInviteNotFound)
}

func TestCreateParentInviteRequiresChildren(t *testing.T) {
	db := newTestDB(t)
	lonely := seedParent(t, db, "Ren")

	_, err := CreateParentInvite(db, lonely.ID, "partner@example.com")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAcceptParentInviteGrantsAllChildren(t *testing.T) {
	db := newTestDB(t)
	inviter := seedParent(t, db, "Mio")
	coParent := seedParent(t, db, "Ren")
	child1, account1 := seedChildWithAccount(t, db, inviter.ID, "Sora", 500)
	child2, account2 := seedChildWithAccount(t, db, inviter.ID, "Yui", 300)

	invite, err := CreateParentInvite(db, inviter.ID, "ren@example.com")
	require.NoError(t, err)

	require.NoError(t, AcceptParentInvite(db, invite.Token, coParent.ID))

	for _, childID := range []uint{child1.ID, child2.ID} {
		parents, err := ParentsOf(db, childID)
		require.NoError(t, err)
		require.Len(t, parents, 2)
		assert.Equal(t, inviter.ID, parents[0].ID)
		assert.Equal(t, coParent.ID, parents[1].ID)
	}

	// Linking touches relationships only, never balances.
	assert.Equal(t, int64(500), reloadAccount(t, db, account1.ID).Balance)
	assert.Equal(t, int64(300), reloadAccount(t, db, account2.ID).Balance)

	err = AcceptParentInvite(db, invite.Token, coParent.ID)
	assert.ErrorIs(t, err, ErrInviteAlreadyUsed)
}

func TestAcceptParentInviteRejectsChildProfiles(t *testing.T) {
	db := newTestDB(t)
	inviter := seedParent(t, db, "Mio")
	child, _ := seedChildWithAccount(t, db, inviter.ID, "Sora", 0)

	invite, err := CreateParentInvite(db, inviter.ID, "kid@example.com")
	require.NoError(t, err)

	err = AcceptParentInvite(db, invite.Token, child.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var got models.ParentInvite
	require.NoError(t, db.First(&got, invite.ID).Error)
	assert.Equal(t, models.InviteStatusPending, got.Status)
}

func TestCancelParentInviteInviterOnly(t *testing.T) {
	db := newTestDB(t)
	inviter := seedParent(t, db, "Mio")
	other := seedParent(t, db, "Ren")
	seedChildWithAccount(t, db, inviter.ID, "Sora", 0)

	invite, err := CreateParentInvite(db, inviter.ID, "ren@example.com")
	require.NoError(t, err)

	assert.ErrorIs(t, CancelParentInvite(db, other.ID, invite.Token), ErrUnauthorized)
	require.NoError(t, CancelParentInvite(db, inviter.ID, invite.Token))

	err = AcceptParentInvite(db, invite.Token, other.ID)
	assert.ErrorIs(t, err, ErrInviteNotFound)
}
