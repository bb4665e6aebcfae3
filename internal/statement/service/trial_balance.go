package service

import (
	"context"
	"time"

	accountdomain "github.com/munimji/munimji/internal/account/domain"
	"github.com/munimji/munimji/internal/balance"
	"github.com/munimji/munimji/internal/clock"
	"github.com/munimji/munimji/internal/statement/domain"
	"github.com/shopspring/decimal"
)

// TrialBalance lists every active account's balance split into debit and
// credit columns in the fixed type order. A negative normal balance is
// re-expressed as a positive balance on the opposite column; nothing is
// ever displayed negative. Expense accounts appear even at zero.
func (s *Service) TrialBalance(ctx context.Context, asOf *time.Time) (domain.TrialBalanceReport, error) {
	asOfDate := clock.Today(s.clock)
	if asOf != nil {
		asOfDate = *asOf
	}

	accounts, err := s.accounts.List(ctx, s.db, accountdomain.ListAccountsRequest{OnlyActive: true})
	if err != nil {
		return domain.TrialBalanceReport{}, err
	}

	totals, err := balance.TotalsByAccount(ctx, s.db, balance.Filter{To: &asOfDate})
	if err != nil {
		return domain.TrialBalanceReport{}, err
	}

	byType := make(map[accountdomain.Type][]domain.TrialBalanceRow, len(accountdomain.TypeOrder))
	for _, t := range accountdomain.TypeOrder {
		byType[t] = []domain.TrialBalanceRow{}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, account := range accounts {
		bal := totals[account.Code].BalanceFor(account.Type)

		var debit, credit decimal.Decimal
		if account.Type.HasDebitBalance() {
			if bal.Sign() >= 0 {
				debit = bal
			} else {
				credit = bal.Abs()
			}
		} else {
			if bal.Sign() >= 0 {
				credit = bal
			} else {
				debit = bal.Abs()
			}
		}

		// Expenses stay visible at zero; other types only when non-zero.
		include := account.Type == accountdomain.TypeExpense ||
			!debit.IsZero() || !credit.IsZero()
		if !include {
			continue
		}

		byType[account.Type] = append(byType[account.Type], domain.TrialBalanceRow{
			Code:          account.Code,
			Name:          account.Name,
			DebitBalance:  debit,
			CreditBalance: credit,
		})
		totalDebit = totalDebit.Add(debit)
		totalCredit = totalCredit.Add(credit)
	}

	difference := totalDebit.Sub(totalCredit)

	s.metrics.RecordStatement("trial_balance")
	return domain.TrialBalanceReport{
		AsOf:           asOfDate,
		AccountsByType: byType,
		TypeOrder:      accountdomain.TypeOrder,
		TypeLabels:     accountdomain.TypeLabels,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		Difference:     difference,
		IsBalanced:     domain.WithinTolerance(difference),
	}, nil
}
