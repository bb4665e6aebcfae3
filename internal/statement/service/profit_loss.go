package service

import (
	"context"
	"fmt"
	"time"

	accountdomain "github.com/munimji/munimji/internal/account/domain"
	"github.com/munimji/munimji/internal/balance"
	"github.com/munimji/munimji/internal/clock"
	"github.com/munimji/munimji/internal/statement/domain"
	"github.com/shopspring/decimal"
)

// ProfitLoss computes the income statement over [from, to]. A nil from
// means "since inception"; a nil to defaults to today. The report keeps
// the external shape of an unsigned net plus IsProfit; the sign only
// collapses at this boundary.
func (s *Service) ProfitLoss(ctx context.Context, from, to *time.Time) (domain.ProfitLossReport, error) {
	toDate := clock.Today(s.clock)
	if to != nil {
		toDate = *to
	}

	totals, err := balance.TotalsByAccount(ctx, s.db, balance.Filter{From: from, To: &toDate})
	if err != nil {
		return domain.ProfitLossReport{}, err
	}

	incomeRows, totalIncome, err := s.periodRows(ctx, accountdomain.TypeIncome, totals)
	if err != nil {
		return domain.ProfitLossReport{}, err
	}
	expenseRows, totalExpenses, err := s.periodRows(ctx, accountdomain.TypeExpense, totals)
	if err != nil {
		return domain.ProfitLossReport{}, err
	}

	net := totalIncome.Sub(totalExpenses)
	isProfit := net.Sign() >= 0

	s.metrics.RecordStatement("profit_loss")
	return domain.ProfitLossReport{
		From:            from,
		To:              toDate,
		PeriodLabel:     periodLabel(from, toDate),
		IncomeAccounts:  incomeRows,
		TotalIncome:     totalIncome,
		ExpenseAccounts: expenseRows,
		TotalExpenses:   totalExpenses,
		NetProfitLoss:   net.Abs(),
		IsProfit:        isProfit,
	}, nil
}

// periodRows builds the non-zero rows for one P&L side from the shared
// grouped totals.
func (s *Service) periodRows(ctx context.Context, accountType accountdomain.Type, totals map[string]balance.Totals) ([]domain.ProfitLossRow, decimal.Decimal, error) {
	accounts, err := s.accounts.List(ctx, s.db, accountdomain.ListAccountsRequest{
		OnlyActive: true,
		Type:       accountType,
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	rows := []domain.ProfitLossRow{}
	total := decimal.Zero
	for _, account := range accounts {
		bal := totals[account.Code].BalanceFor(account.Type)
		if bal.IsZero() {
			continue
		}
		rows = append(rows, domain.ProfitLossRow{
			Code:   account.Code,
			Name:   account.Name,
			Amount: bal,
		})
		total = total.Add(bal)
	}
	return rows, total, nil
}

func periodLabel(from *time.Time, to time.Time) string {
	if from != nil {
		return fmt.Sprintf("For the period from %s to %s",
			from.Format("02-01-2006"), to.Format("02-01-2006"))
	}
	return fmt.Sprintf("For the period up to %s", to.Format("02-01-2006"))
}
