package services

import (
	"testing"

	"github.com/mendokusaisai/kodomo-wallet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateGoalSetAndClear(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	_, account := seedChildWithAccount(t, db, parent.ID, "Sora", 0)

	name := "Nintendo Switch"
	amount := int64(30000)
	updated, err := UpdateGoal(db, parent.ID, account.ID, &name, &amount)
	require.NoError(t, err)
	require.NotNil(t, updated.GoalName)
	assert.Equal(t, name, *updated.GoalName)
	require.NotNil(t, updated.GoalAmount)
	assert.Equal(t, amount, *updated.GoalAmount)

	cleared, err := UpdateGoal(db, parent.ID, account.ID, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.GoalName)
	assert.Nil(t, cleared.GoalAmount)
}

func TestUpdateGoalValidation(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	stranger := seedParent(t, db, "Ren")
	child, account := seedChildWithAccount(t, db, parent.ID, "Sora", 0)

	bad := int64(-1)
	_, err := UpdateGoal(db, parent.ID, account.ID, nil, &bad)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	name := "bike"
	amount := int64(5000)
	_, err = UpdateGoal(db, stranger.ID, account.ID, &name, &amount)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// The child may set a goal on their own account.
	_, err = UpdateGoal(db, child.ID, account.ID, &name, &amount)
	require.NoError(t, err)
}

func TestFamilyAccountsByRole(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	other := seedParent(t, db, "Ren")
	child1, account1 := seedChildWithAccount(t, db, parent.ID, "Sora", 100)
	_, account2 := seedChildWithAccount(t, db, parent.ID, "Yui", 200)
	seedChildWithAccount(t, db, other.ID, "Kai", 300)

	accounts, err := FamilyAccounts(db, parent.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, account1.ID, accounts[0].ID)
	assert.Equal(t, account2.ID, accounts[1].ID)

	own, err := FamilyAccounts(db, child1.ID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, account1.ID, own[0].ID)

	_, err = FamilyAccounts(db, uint(9999))
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestAuditBalancesDetectsDrift(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	seedChildWithAccount(t, db, parent.ID, "Sora", 500)
	_, account2 := seedChildWithAccount(t, db, parent.ID, "Yui", 300)

	drifts, err := AuditBalances(db)
	require.NoError(t, err)
	assert.Empty(t, drifts)

	// Corrupt one cached balance behind the ledger's back.
	require.NoError(t, db.Model(&models.Account{}).Where("id = ?", account2.ID).
		Update("balance", 999).Error)

	drifts, err = AuditBalances(db)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, account2.ID, drifts[0].AccountID)
	assert.Equal(t, int64(999), drifts[0].Cached)
	assert.Equal(t, int64(300), drifts[0].Computed)
}
