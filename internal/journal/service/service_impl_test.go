package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/munimji/munimji/internal/clock"
	"github.com/munimji/munimji/internal/journal/domain"
	"github.com/munimji/munimji/internal/journal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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

type fixture struct {
	db    *gorm.DB
	svc   domain.Service
	clock *clock.FakeClock
	node  *snowflake.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	fc := clock.NewFakeClock(time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC))
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: fc,
		Repo:  repository.Provide(),
	})
	return &fixture{db: db, svc: svc, clock: fc, node: node}
}

func (f *fixture) seedEntry(t *testing.T, status domain.EntryStatus, balanced bool) domain.JournalEntry {
	t.Helper()
	credit := decimal.NewFromInt(5000)
	if !balanced {
		credit = decimal.NewFromInt(4999)
	}

	entry := domain.JournalEntry{
		ID:              f.node.Generate(),
		EntryNumber:     domain.FormatEntryNumber(2026, entrySeq),
		TransactionDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		TransactionType: domain.TypeExpense,
		Narration:       "Godown rent",
		Status:          status,
		AIConfidence:    0.9,
	}
	entrySeq++
	require.NoError(t, f.db.Create(&entry).Error)

	lines := []domain.JournalLine{
		{ID: f.node.Generate(), JournalEntryID: entry.ID, AccountCode: "E003", AccountName: "Godown Expense", Debit: decimal.NewFromInt(5000)},
		{ID: f.node.Generate(), JournalEntryID: entry.ID, AccountCode: "A001", AccountName: "SBI Current A/c", Credit: credit},
	}
	require.NoError(t, f.db.Create(&lines).Error)
	entry.Lines = lines
	return entry
}

var entrySeq = 1

func TestApproveThenPost(t *testing.T) {
	f := newFixture(t)
	entry := f.seedEntry(t, domain.StatusPendingReview, true)

	approved, err := f.svc.Approve(context.Background(), domain.ReviewRequest{
		EntryID:  int64(entry.ID),
		Reviewer: "asha",
		Notes:    "checked against bank statement",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)
	assert.Equal(t, "asha", approved.ReviewedBy)
	require.NotNil(t, approved.ReviewedAt)
	assert.Equal(t, f.clock.Now(), approved.ReviewedAt.UTC())

	f.clock.Advance(time.Hour)

	posted, err := f.svc.Post(context.Background(), int64(entry.ID))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPosted, posted.Status)
	require.NotNil(t, posted.PostedAt)
	assert.Equal(t, f.clock.Now(), posted.PostedAt.UTC())
}

func TestApproveGuards(t *testing.T) {
	f := newFixture(t)

	t.Run("unbalanced entry", func(t *testing.T) {
		entry := f.seedEntry(t, domain.StatusPendingReview, false)
		_, err := f.svc.Approve(context.Background(), domain.ReviewRequest{EntryID: int64(entry.ID), Reviewer: "asha"})
		assert.ErrorIs(t, err, domain.ErrEntryNotBalanced)

		reloaded, err := f.svc.Get(context.Background(), int64(entry.ID))
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPendingReview, reloaded.Status)
	})

	t.Run("already rejected", func(t *testing.T) {
		entry := f.seedEntry(t, domain.StatusRejected, true)
		_, err := f.svc.Approve(context.Background(), domain.ReviewRequest{EntryID: int64(entry.ID), Reviewer: "asha"})
		assert.ErrorIs(t, err, domain.ErrEntryNotReviewable)
	})

	t.Run("already posted", func(t *testing.T) {
		entry := f.seedEntry(t, domain.StatusPosted, true)
		_, err := f.svc.Approve(context.Background(), domain.ReviewRequest{EntryID: int64(entry.ID), Reviewer: "asha"})
		assert.ErrorIs(t, err, domain.ErrEntryAlreadyPosted)
	})

	t.Run("blank reviewer", func(t *testing.T) {
		entry := f.seedEntry(t, domain.StatusPendingReview, true)
		_, err := f.svc.Approve(context.Background(), domain.ReviewRequest{EntryID: int64(entry.ID), Reviewer: "   "})
		assert.ErrorIs(t, err, domain.ErrInvalidReviewer)
	})

	t.Run("missing entry", func(t *testing.T) {
		_, err := f.svc.Approve(context.Background(), domain.ReviewRequest{EntryID: 424242, Reviewer: "asha"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRejectKeepsLines(t *testing.T) {
	f := newFixture(t)
	entry := f.seedEntry(t, domain.StatusFlagged, true)

	rejected, err := f.svc.Reject(context.Background(), domain.ReviewRequest{
		EntryID:  int64(entry.ID),
		Reviewer: "asha",
		Notes:    "wrong account",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, rejected.Status)

	reloaded, err := f.svc.Get(context.Background(), int64(entry.ID))
	require.NoError(t, err)
	assert.Len(t, reloaded.Lines, 2, "rejection must keep the proposed lines")
}

func TestRejectPostedEntryFails(t *testing.T) {
	f := newFixture(t)
	entry := f.seedEntry(t, domain.StatusPosted, true)

	_, err := f.svc.Reject(context.Background(), domain.ReviewRequest{EntryID: int64(entry.ID), Reviewer: "asha"})
	assert.ErrorIs(t, err, domain.ErrEntryAlreadyPosted)
}

func TestPostRequiresApproval(t *testing.T) {
	f := newFixture(t)

	for _, status := range []domain.EntryStatus{
		domain.StatusDraft,
		domain.StatusFlagged,
		domain.StatusPendingReview,
		domain.StatusRejected,
	} {
		entry := f.seedEntry(t, status, true)
		_, err := f.svc.Post(context.Background(), int64(entry.ID))
		assert.ErrorIs(t, err, domain.ErrEntryNotApproved, "status %s", status)
	}
}

func TestPostIsTerminal(t *testing.T) {
	f := newFixture(t)
	entry := f.seedEntry(t, domain.StatusApproved, true)

	_, err := f.svc.Post(context.Background(), int64(entry.ID))
	require.NoError(t, err)

	_, err = f.svc.Post(context.Background(), int64(entry.ID))
	assert.ErrorIs(t, err, domain.ErrEntryAlreadyPosted)
}

func TestListFiltersByStatus(t *testing.T) {
	f := newFixture(t)
	f.seedEntry(t, domain.StatusPendingReview, true)
	f.seedEntry(t, domain.StatusPosted, true)
	f.seedEntry(t, domain.StatusPosted, true)

	posted, err := f.svc.List(context.Background(), domain.ListEntriesRequest{Status: domain.StatusPosted})
	require.NoError(t, err)
	assert.Len(t, posted, 2)

	all, err := f.svc.List(context.Background(), domain.ListEntriesRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
