package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/munimji/munimji/internal/journal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.JournalEntry{}, &domain.JournalLine{}))
	return db
}

func TestNextEntryNumber_SequencesPerYear(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	ctx := context.Background()

	number, err := repo.NextEntryNumber(ctx, db, 2026)
	require.NoError(t, err)
	assert.Equal(t, "JV-2026-00001", number)

	insert := func(year int, n string) {
		entry := domain.JournalEntry{
			ID:              node.Generate(),
			EntryNumber:     n,
			TransactionDate: time.Date(year, 3, 1, 0, 0, 0, 0, time.UTC),
			TransactionType: domain.TypeExpense,
			Narration:       "seed",
		}
		require.NoError(t, repo.InsertEntry(ctx, db, &entry))
	}

	insert(2026, "JV-2026-00001")
	insert(2026, "JV-2026-00002")

	number, err = repo.NextEntryNumber(ctx, db, 2026)
	require.NoError(t, err)
	assert.Equal(t, "JV-2026-00003", number)

	// A new calendar year restarts the sequence.
	number, err = repo.NextEntryNumber(ctx, db, 2027)
	require.NoError(t, err)
	assert.Equal(t, "JV-2027-00001", number)

	insert(2027, "JV-2027-00001")
	number, err = repo.NextEntryNumber(ctx, db, 2026)
	require.NoError(t, err)
	assert.Equal(t, "JV-2026-00003", number, "2027 entries must not advance the 2026 sequence")
}

func TestFindByID_LoadsLinesInOrder(t *testing.T) {
	db := newTestDB(t)
	repo := Provide()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	ctx := context.Background()

	entry := domain.JournalEntry{
		ID:              node.Generate(),
		EntryNumber:     "JV-2026-00001",
		TransactionDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		TransactionType: domain.TypeSalary,
		Narration:       "January salary",
	}
	require.NoError(t, repo.InsertEntry(ctx, db, &entry))

	first := node.Generate()
	second := node.Generate()
	require.NoError(t, repo.InsertLines(ctx, db, []domain.JournalLine{
		{ID: first, JournalEntryID: entry.ID, AccountCode: "E001", AccountName: "Salary Expense"},
		{ID: second, JournalEntryID: entry.ID, AccountCode: "A001", AccountName: "SBI Current A/c"},
	}))

	found, err := repo.FindByID(ctx, db, entry.ID, false)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Lines, 2)
	assert.Equal(t, first, found.Lines[0].ID)
	assert.Equal(t, second, found.Lines[1].ID)

	missing, err := repo.FindByID(ctx, db, node.Generate(), false)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
