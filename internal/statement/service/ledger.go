package service

import (
	"context"
	"time"

	"github.com/munimji/munimji/internal/balance"
	journaldomain "github.com/munimji/munimji/internal/journal/domain"
	"github.com/munimji/munimji/internal/statement/domain"
	"github.com/shopspring/decimal"
)

type ledgerLine struct {
	TransactionDate time.Time
	EntryID         int64
	EntryNumber     string
	Narration       string
	Reference       string
	TransactionType journaldomain.TransactionType
	Debit           decimal.Decimal
	Credit          decimal.Decimal
}

// AccountLedger walks an account's posted lines in (date, entry, line)
// order and accumulates a running balance. An unknown account code
// yields ErrAccountNotFound, never an empty ledger.
func (s *Service) AccountLedger(ctx context.Context, code string, start, end *time.Time) (domain.LedgerReport, error) {
	account, err := s.accounts.FindByCode(ctx, s.db, code)
	if err != nil {
		return domain.LedgerReport{}, err
	}
	if account == nil {
		return domain.LedgerReport{}, domain.ErrAccountNotFound
	}

	openingBalance := decimal.Zero
	if start != nil {
		openingTotals, err := balance.AccountTotals(ctx, s.db, code, balance.Filter{Before: start})
		if err != nil {
			return domain.LedgerReport{}, err
		}
		openingBalance = openingTotals.BalanceFor(account.Type)
	}

	stmt := s.db.WithContext(ctx).
		Table("journal_lines").
		Select(`journal_entries.transaction_date AS transaction_date,
			journal_entries.id AS entry_id,
			journal_entries.entry_number AS entry_number,
			journal_entries.narration AS narration,
			journal_entries.reference AS reference,
			journal_entries.transaction_type AS transaction_type,
			journal_lines.debit AS debit,
			journal_lines.credit AS credit`).
		Joins("JOIN journal_entries ON journal_entries.id = journal_lines.journal_entry_id").
		Where("journal_entries.status = ?", "posted").
		Where("journal_lines.account_code = ?", code)

	if start != nil {
		stmt = stmt.Where("journal_entries.transaction_date >= ?", *start)
	}
	if end != nil {
		stmt = stmt.Where("journal_entries.transaction_date <= ?", *end)
	}

	var lines []ledgerLine
	if err := stmt.
		Order("journal_entries.transaction_date asc, journal_entries.id asc, journal_lines.id asc").
		Scan(&lines).Error; err != nil {
		return domain.LedgerReport{}, err
	}

	transactions := make([]domain.LedgerRow, 0, len(lines))
	running := openingBalance
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, line := range lines {
		if account.Type.HasDebitBalance() {
			running = running.Add(line.Debit).Sub(line.Credit)
		} else {
			running = running.Add(line.Credit).Sub(line.Debit)
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)

		transactions = append(transactions, domain.LedgerRow{
			Date:            line.TransactionDate,
			EntryID:         line.EntryID,
			EntryNumber:     line.EntryNumber,
			Narration:       line.Narration,
			Reference:       line.Reference,
			TransactionType: line.TransactionType,
			Debit:           line.Debit,
			Credit:          line.Credit,
			Balance:         running,
		})
	}

	s.metrics.RecordStatement("account_ledger")
	return domain.LedgerReport{
		Account:        *account,
		Start:          start,
		End:            end,
		OpeningBalance: openingBalance,
		Transactions:   transactions,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		ClosingBalance: running,
	}, nil
}
