package balance

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	accountdomain "github.com/munimji/munimji/internal/account/domain"
	journaldomain "github.com/munimji/munimji/internal/journal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&journaldomain.JournalEntry{}, &journaldomain.JournalLine{}))
	return db
}

func seedEntry(t *testing.T, db *gorm.DB, node *snowflake.Node, status journaldomain.EntryStatus, date time.Time, number string) {
	t.Helper()
	entry := journaldomain.JournalEntry{
		ID:              node.Generate(),
		EntryNumber:     number,
		TransactionDate: date,
		TransactionType: journaldomain.TypeExpense,
		Narration:       "rent",
		Status:          status,
	}
	require.NoError(t, db.Create(&entry).Error)
	require.NoError(t, db.Create(&[]journaldomain.JournalLine{
		{ID: node.Generate(), JournalEntryID: entry.ID, AccountCode: "E003", AccountName: "Godown Expense", Debit: decimal.NewFromInt(1000)},
		{ID: node.Generate(), JournalEntryID: entry.ID, AccountCode: "A001", AccountName: "SBI Current A/c", Credit: decimal.NewFromInt(1000)},
	}).Error)
}

func TestTotalsByAccount_OnlyPostedLinesCount(t *testing.T) {
	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	date := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	seedEntry(t, db, node, journaldomain.StatusPosted, date, "JV-2026-00001")
	for i, status := range []journaldomain.EntryStatus{
		journaldomain.StatusDraft,
		journaldomain.StatusFlagged,
		journaldomain.StatusPendingReview,
		journaldomain.StatusApproved,
		journaldomain.StatusRejected,
	} {
		seedEntry(t, db, node, status, date, fmt.Sprintf("JV-2026-%05d", i+2))
	}

	totals, err := TotalsByAccount(context.Background(), db, Filter{})
	require.NoError(t, err)

	require.Contains(t, totals, "E003")
	assert.Equal(t, "1000", totals["E003"].Debit.String())
	assert.Equal(t, "1000", totals["A001"].Credit.String())
}

func TestTotalsByAccount_DateBounds(t *testing.T) {
	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	seedEntry(t, db, node, journaldomain.StatusPosted, jan, "JV-2026-00001")
	seedEntry(t, db, node, journaldomain.StatusPosted, feb, "JV-2026-00002")

	totals, err := TotalsByAccount(context.Background(), db, Filter{From: &feb})
	require.NoError(t, err)
	assert.Equal(t, "1000", totals["E003"].Debit.String())

	totals, err = TotalsByAccount(context.Background(), db, Filter{To: &jan})
	require.NoError(t, err)
	assert.Equal(t, "1000", totals["E003"].Debit.String())

	// Before is strictly-before: the boundary date itself is excluded.
	opening, err := AccountTotals(context.Background(), db, "E003", Filter{Before: &feb})
	require.NoError(t, err)
	assert.Equal(t, "1000", opening.Debit.String())

	opening, err = AccountTotals(context.Background(), db, "E003", Filter{Before: &jan})
	require.NoError(t, err)
	assert.True(t, opening.Debit.IsZero())
}

func TestBalanceFor_SignConvention(t *testing.T) {
	totals := Totals{Debit: decimal.NewFromInt(700), Credit: decimal.NewFromInt(200)}

	assert.Equal(t, "500", totals.BalanceFor(accountdomain.TypeAsset).String())
	assert.Equal(t, "500", totals.BalanceFor(accountdomain.TypeExpense).String())
	assert.Equal(t, "-500", totals.BalanceFor(accountdomain.TypeLiability).String())
	assert.Equal(t, "-500", totals.BalanceFor(accountdomain.TypeIncome).String())
	assert.Equal(t, "-500", totals.BalanceFor(accountdomain.TypeEquity).String())
}
