package domain

import (
	"context"
	"errors"
	"time"
)

// Service computes the standard statements. Every method is a pure
// function of the posted journal state: same inputs, same report.
type Service interface {
	TrialBalance(ctx context.Context, asOf *time.Time) (TrialBalanceReport, error)
	ProfitLoss(ctx context.Context, from, to *time.Time) (ProfitLossReport, error)
	BalanceSheet(ctx context.Context, asOf *time.Time) (BalanceSheetReport, error)
	AccountLedger(ctx context.Context, code string, start, end *time.Time) (LedgerReport, error)
}

// ErrAccountNotFound distinguishes "no such account" from a zero-balance
// ledger; a lookup for a nonexistent code never returns an empty report.
var ErrAccountNotFound = errors.New("account_not_found")
