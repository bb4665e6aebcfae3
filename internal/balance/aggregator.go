// Package balance aggregates posted debit/credit totals per account.
// Reports never walk lines account-by-account: totals for a whole
// statement come from one grouped query so report cost stays
// O(lines), not O(accounts x lines).
package balance

import (
	"context"
	"time"

	accountdomain "github.com/munimji/munimji/internal/account/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Totals holds the raw posted debit and credit sums of one account.
type Totals struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// BalanceFor applies the sign convention for the account type: assets
// and expenses carry a normal debit balance, everything else a normal
// credit balance.
func (t Totals) BalanceFor(accountType accountdomain.Type) decimal.Decimal {
	if accountType.HasDebitBalance() {
		return t.Debit.Sub(t.Credit)
	}
	return t.Credit.Sub(t.Debit)
}

// Filter restricts aggregation by transaction date. Nil bounds mean
// "since inception" / "through today's committed state". Before means
// strictly-before and excludes From/To (used for opening balances).
type Filter struct {
	From   *time.Time
	To     *time.Time
	Before *time.Time
}

type row struct {
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// TotalsByAccount runs the single grouped aggregation over posted lines
// and returns totals keyed by account code. Accounts without posted
// lines in range are absent from the map.
func TotalsByAccount(ctx context.Context, db *gorm.DB, f Filter) (map[string]Totals, error) {
	stmt := db.WithContext(ctx).
		Table("journal_lines").
		Select("journal_lines.account_code AS account_code, COALESCE(SUM(journal_lines.debit), 0) AS debit, COALESCE(SUM(journal_lines.credit), 0) AS credit").
		Joins("JOIN journal_entries ON journal_entries.id = journal_lines.journal_entry_id").
		Where("journal_entries.status = ?", "posted").
		Group("journal_lines.account_code")

	if f.From != nil {
		stmt = stmt.Where("journal_entries.transaction_date >= ?", *f.From)
	}
	if f.To != nil {
		stmt = stmt.Where("journal_entries.transaction_date <= ?", *f.To)
	}
	if f.Before != nil {
		stmt = stmt.Where("journal_entries.transaction_date < ?", *f.Before)
	}

	var rows []row
	if err := stmt.Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]Totals, len(rows))
	for _, r := range rows {
		totals[r.AccountCode] = Totals{
			Debit:  r.Debit.Round(2),
			Credit: r.Credit.Round(2),
		}
	}
	return totals, nil
}

// AccountTotals aggregates a single account's posted lines. Used for
// ledger opening balances; statements use TotalsByAccount.
func AccountTotals(ctx context.Context, db *gorm.DB, code string, f Filter) (Totals, error) {
	stmt := db.WithContext(ctx).
		Table("journal_lines").
		Select("COALESCE(SUM(journal_lines.debit), 0) AS debit, COALESCE(SUM(journal_lines.credit), 0) AS credit").
		Joins("JOIN journal_entries ON journal_entries.id = journal_lines.journal_entry_id").
		Where("journal_entries.status = ?", "posted").
		Where("journal_lines.account_code = ?", code)

	if f.From != nil {
		stmt = stmt.Where("journal_entries.transaction_date >= ?", *f.From)
	}
	if f.To != nil {
		stmt = stmt.Where("journal_entries.transaction_date <= ?", *f.To)
	}
	if f.Before != nil {
		stmt = stmt.Where("journal_entries.transaction_date < ?", *f.Before)
	}

	var r row
	if err := stmt.Scan(&r).Error; err != nil {
		return Totals{}, err
	}
	return Totals{Debit: r.Debit.Round(2), Credit: r.Credit.Round(2)}, nil
}
