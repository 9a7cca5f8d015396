package services

import (
	"testing"

	"github.com/mendokusaisai/kodomo-wallet/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. Max one open
// connection, otherwise each pooled connection gets its own empty
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Account{},
		&models.Transaction{},
		&models.WithdrawalRequest{},
		&models.FamilyRelationship{},
		&models.RecurringDeposit{},
		&models.RecurringDepositExecution{},
		&models.ParentInvite{},
		&models.ChildInvite{},
	))
	return db
}

func seedParent(t *testing.T, db *gorm.DB, name string) *models.Profile {
	t.Helper()
	parent := models.Profile{Name: name, Role: models.RoleParent}
	require.NoError(t, db.Create(&parent).Error)
	return &parent
}

func seedChildWithAccount(t *testing.T, db *gorm.DB, parentID uint, name string, balance int64) (*models.Profile, *models.Account) {
	t.Helper()
	child, err := CreateChild(db, parentID, name, balance, nil)
	require.NoError(t, err)

	var account models.Account
	require.NoError(t, db.Where("profile_id = ?", child.ID).First(&account).Error)
	return child, &account
}

func reloadAccount(t *testing.T, db *gorm.DB, accountID uint) *models.Account {
	t.Helper()
	var account models.Account
	require.NoError(t, db.First(&account, accountID).Error)
	return &account
}

func countTransactions(t *testing.T, db *gorm.DB, accountID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Where("account_id = ?", accountID).Count(&count).Error)
	return count
}
