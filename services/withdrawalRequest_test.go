package services

import (
	"testing"

	"github.com/mendokusaisai/kodomo-wallet/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWithdrawalRequestPending(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, account := seedChildWithAccount(t, db, parent.ID, "Sora", 1000)

	request, err := CreateWithdrawalRequest(db, child.ID, account.ID, 600, "game")
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusPending, request.Status)

	// No funds move or get reserved until approval.
	assert.Equal(t, int64(1000), reloadAccount(t, db, account.ID).Balance)
}

func TestCreateWithdrawalRequestOverBalance(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, account := seedChildWithAccount(t, db, parent.ID, "Sora", 100)

	_, err := CreateWithdrawalRequest(db, child.ID, account.ID, 500, "too much")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestApproveDebitsAccount(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, account := seedChildWithAccount(t, db, parent.ID, "Sora", 1000)

	request, err := CreateWithdrawalRequest(db, child.ID, account.ID, 600, "game")
	require.NoError(t, err)

	approved, err := ApproveWithdrawalRequest(db, parent.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusApproved, approved.Status)
	assert.Equal(t, int64(400), reloadAccount(t, db, account.ID).Balance)

	var txn models.Transaction
	require.NoError(t, db.Where("account_id = ? AND type = ?", account.ID, models.TransactionTypeWithdraw).First(&txn).Error)
	assert.Equal(t, int64(600), txn.Amount)
}

func TestApproveAfterBalanceDropLeavesRequestPending(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, account := seedChildWithAccount(t, db, parent.ID, "Sora", 1000)

	request, err := CreateWithdrawalRequest(db, child.ID, account.ID, 600, "game")
	require.NoError(t, err)

	// The balance drops between request creation and approval.
	_, err = Withdraw(db, parent.ID, account.ID, 700, "school supplies")
	require.NoError(t, err)

	_, err = ApproveWithdrawalRequest(db, parent.ID, request.ID)
	assert.ErrorIs(t, err, ErrInsufficientFundsAtApproval)

	var got models.WithdrawalRequest
	require.NoError(t, db.First(&got, request.ID).Error)
	assert.Equal(t, models.WithdrawalStatusPending, got.Status)
	assert.Equal(t, int64(300), reloadAccount(t, db, account.ID).Balance)

	// A top-up makes the same request approvable again.
	_, err = Deposit(db, parent.ID, account.ID, 500, "top up")
	require.NoError(t, err)
	_, err = ApproveWithdrawalRequest(db, parent.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), reloadAccount(t, db, account.ID).Balance)
}

func TestApproveIsSingleShot(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, account := seedChildWithAccount(t, db, parent.ID, "Sora", 1000)

	request, err := CreateWithdrawalRequest(db, child.ID, account.ID, 100, "snack")
	require.NoError(t, err)

	_, err = ApproveWithdrawalRequest(db, parent.ID, request.ID)
	require.NoError(t, err)

	_, err = ApproveWithdrawalRequest(db, parent.ID, request.ID)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, int64(900), reloadAccount(t, db, account.ID).Balance)
}

func TestApproveRequiresParentOfOwner(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	stranger := seedParent(t, db, "Ren")
	child, account := seedChildWithAccount(t, db, parent.ID, "Sora", 1000)

	request, err := CreateWithdrawalRequest(db, child.ID, account.ID, 100, "snack")
	require.NoError(t, err)

	_, err = ApproveWithdrawalRequest(db, stranger.ID, request.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// The owning child cannot approve their own request either.
	_, err = ApproveWithdrawalRequest(db, child.ID, request.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRejectHasNoLedgerEffect(t *testing.T) {
	db := newTestDB(t)
	parent := seedParent(t, db, "Mio")
	child, account := seedChildWithAccount(t, db, parent.ID, "Sora", 1000)

	request, err := CreateWithdrawalRequest(db, child.ID, account.ID, 100, "snack")
	require.NoError(t, err)

	rejected, err := RejectWithdrawalRequest(db, parent.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalStatusRejected, rejected.Status)
	assert.Equal(t, int64(1000), reloadAccount(t, db, account.ID).Balance)

	_, err = ApproveWithdrawalRequest(db, parent.ID, request.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPendingRequestsScopedToParent(t *testing.T) {
	db := newTestDB(t)
	parentA := seedParent(t, db, "Mio")
	parentB := seedParent(t, db, "Ren")
	childA, accountA := seedChildWithAccount(t, db, parentA.ID, "Sora", 1000)
	childB, accountB := seedChildWithAccount(t, db, parentB.ID, "Yui", 1000)

	reqA, err := CreateWithdrawalRequest(db, childA.ID, accountA.ID, 100, "book")
	require.NoError(t, err)
	_, err = CreateWithdrawalRequest(db, childB.ID, accountB.ID, 200, "pens")
	require.NoError(t, err)

	approvedReq, err := CreateWithdrawalRequest(db, childA.ID, accountA.ID, 50, "done")
	require.NoError(t, err)
	_, err = ApproveWithdrawalRequest(db, parentA.ID, approvedReq.ID)
	require.NoError(t, err)

	pending, err := PendingRequestsForParent(db, parentA.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, reqA.ID, pending[0].ID)
}
