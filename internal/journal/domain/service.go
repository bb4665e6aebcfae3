package domain

import (
	"context"
	"errors"
)

type ListEntriesRequest struct {
	Status EntryStatus
	Type   TransactionType
}

type ReviewRequest struct {
	EntryID  int64
	Reviewer string
	Notes    string
}

type Service interface {
	Get(ctx context.Context, id int64) (JournalEntry, error)
	List(ctx context.Context, req ListEntriesRequest) ([]JournalEntry, error)

	// Approve marks a balanced, reviewable entry as approved. The balance
	// guard is re-evaluated inside the committing transaction.
	Approve(ctx context.Context, req ReviewRequest) (JournalEntry, error)

	// Reject is legal from any pre-posted state and keeps the proposed
	// lines intact for inspection.
	Reject(ctx context.Context, req ReviewRequest) (JournalEntry, error)

	// Post moves an approved entry onto the books. Irreversible.
	Post(ctx context.Context, id int64) (JournalEntry, error)
}

var (
	ErrNotFound           = errors.New("entry_not_found")
	ErrEntryNotBalanced   = errors.New("entry_not_balanced")
	ErrEntryNotReviewable = errors.New("entry_not_reviewable")
	ErrEntryNotApproved   = errors.New("entry_not_approved")
	ErrEntryAlreadyPosted = errors.New("entry_already_posted")
	ErrInvalidReviewer    = errors.New("invalid_reviewer")
)
