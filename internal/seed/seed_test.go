package seed

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/munimji/munimji/internal/account/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Account{}))
	return db
}

func TestEnsureChartOfAccounts(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureChartOfAccounts(db))

	var accounts []domain.Account
	require.NoError(t, db.Order("code asc").Find(&accounts).Error)
	assert.Len(t, accounts, 15)

	var legacy domain.Account
	require.NoError(t, db.First(&legacy, "code = ?", domain.CodeShreeCementLegacy).Error)
	assert.False(t, legacy.IsActive, "deprecated code seeds inactive")

	var deposit domain.Account
	require.NoError(t, db.First(&deposit, "code = ?", domain.CodeSecurityDeposit).Error)
	assert.Equal(t, domain.ClassificationNonCurrent, deposit.Classification)

	var bank domain.Account
	require.NoError(t, db.First(&bank, "code = ?", domain.CodeBankSBI).Error)
	assert.True(t, bank.IsActive)
	assert.False(t, bank.CreatedAt.IsZero(), "forced insert keeps the creation timestamp")
}

func TestEnsureChartOfAccounts_Idempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureChartOfAccounts(db))

	// Local edits survive a reseed.
	require.NoError(t, db.Model(&domain.Account{}).
		Where("code = ?", domain.CodeMiscExpense).
		Update("description", "catch-all").Error)

	require.NoError(t, EnsureChartOfAccounts(db))

	var count int64
	require.NoError(t, db.Model(&domain.Account{}).Count(&count).Error)
	assert.Equal(t, int64(15), count)

	var misc domain.Account
	require.NoError(t, db.First(&misc, "code = ?", domain.CodeMiscExpense).Error)
	assert.Equal(t, "catch-all", misc.Description)
}

func TestEnsureChartOfAccounts_ForcesLegacyInactive(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&domain.Account{
		Code: domain.CodeShreeCementLegacy, Name: "Shree Cement A/c",
		Type: domain.TypeAsset, Classification: domain.ClassificationCurrent, IsActive: true,
	}).Error)

	require.NoError(t, EnsureChartOfAccounts(db))

	var legacy domain.Account
	require.NoError(t, db.First(&legacy, "code = ?", domain.CodeShreeCementLegacy).Error)
	assert.False(t, legacy.IsActive)
}
