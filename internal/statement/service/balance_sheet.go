package service

import (
	"context"
	"time"

	accountdomain "github.com/munimji/munimji/internal/account/domain"
	"github.com/munimji/munimji/internal/balance"
	"github.com/munimji/munimji/internal/clock"
	"github.com/munimji/munimji/internal/statement/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BalanceSheet re-derives the accounting identity from independently
// aggregated asset, liability and equity balances as of a single date.
// Retained earnings come from the P&L engine over (inception, asOf].
func (s *Service) BalanceSheet(ctx context.Context, asOf *time.Time) (domain.BalanceSheetReport, error) {
	asOfDate := clock.Today(s.clock)
	if asOf != nil {
		asOfDate = *asOf
	}

	totals, err := balance.TotalsByAccount(ctx, s.db, balance.Filter{To: &asOfDate})
	if err != nil {
		return domain.BalanceSheetReport{}, err
	}

	assetAccounts, err := s.accounts.List(ctx, s.db, accountdomain.ListAccountsRequest{
		OnlyActive: true, Type: accountdomain.TypeAsset,
	})
	if err != nil {
		return domain.BalanceSheetReport{}, err
	}
	liabilityAccounts, err := s.accounts.List(ctx, s.db, accountdomain.ListAccountsRequest{
		OnlyActive: true, Type: accountdomain.TypeLiability,
	})
	if err != nil {
		return domain.BalanceSheetReport{}, err
	}
	equityAccounts, err := s.accounts.List(ctx, s.db, accountdomain.ListAccountsRequest{
		OnlyActive: true, Type: accountdomain.TypeEquity,
	})
	if err != nil {
		return domain.BalanceSheetReport{}, err
	}

	currentAssets := []domain.BalanceSheetRow{}
	nonCurrentAssets := []domain.BalanceSheetRow{}
	totalCurrentAssets := decimal.Zero
	totalNonCurrentAssets := decimal.Zero

	for _, account := range assetAccounts {
		bal := totals[account.Code].BalanceFor(account.Type)
		if bal.IsZero() {
			continue
		}
		row := domain.BalanceSheetRow{Code: account.Code, Name: account.Name, Balance: bal}
		if account.IsCurrentAsset() {
			currentAssets = append(currentAssets, row)
			totalCurrentAssets = totalCurrentAssets.Add(bal)
		} else {
			nonCurrentAssets = append(nonCurrentAssets, row)
			totalNonCurrentAssets = totalNonCurrentAssets.Add(bal)
		}
	}
	totalAssets := totalCurrentAssets.Add(totalNonCurrentAssets)

	// No non-current liability classification exists; every liability is
	// treated as current.
	currentLiabilities := []domain.BalanceSheetRow{}
	totalCurrentLiabilities := decimal.Zero
	for _, account := range liabilityAccounts {
		bal := totals[account.Code].BalanceFor(account.Type)
		if bal.IsZero() {
			continue
		}
		currentLiabilities = append(currentLiabilities, domain.BalanceSheetRow{
			Code: account.Code, Name: account.Name, Balance: bal,
		})
		totalCurrentLiabilities = totalCurrentLiabilities.Add(bal)
	}
	totalLiabilities := totalCurrentLiabilities

	// Equity rows stay visible at zero balance.
	equityRows := []domain.BalanceSheetRow{}
	equitySum := decimal.Zero
	for _, account := range equityAccounts {
		bal := totals[account.Code].BalanceFor(account.Type)
		equityRows = append(equityRows, domain.BalanceSheetRow{
			Code: account.Code, Name: account.Name, Balance: bal,
		})
		equitySum = equitySum.Add(bal)
	}

	pnl, err := s.ProfitLoss(ctx, nil, &asOfDate)
	if err != nil {
		return domain.BalanceSheetReport{}, err
	}
	retainedEarnings := pnl.SignedNet()

	totalEquity := equitySum.Add(retainedEarnings)
	liabilitiesPlusEquity := totalLiabilities.Add(totalEquity)
	difference := totalAssets.Sub(liabilitiesPlusEquity)
	isBalanced := domain.WithinTolerance(difference)

	if !isBalanced {
		s.log.Warn("balance sheet does not balance",
			zap.String("difference", difference.StringFixed(2)),
			zap.Time("as_of", asOfDate),
		)
	}

	s.metrics.RecordStatement("balance_sheet")
	return domain.BalanceSheetReport{
		AsOf: asOfDate,

		CurrentAssets:         currentAssets,
		NonCurrentAssets:      nonCurrentAssets,
		TotalCurrentAssets:    totalCurrentAssets,
		TotalNonCurrentAssets: totalNonCurrentAssets,
		TotalAssets:           totalAssets,

		CurrentLiabilities:      currentLiabilities,
		TotalCurrentLiabilities: totalCurrentLiabilities,
		TotalLiabilities:        totalLiabilities,

		EquityAccounts:   equityRows,
		RetainedEarnings: retainedEarnings,
		TotalEquity:      totalEquity,

		LiabilitiesPlusEquity: liabilitiesPlusEquity,
		Difference:            difference,
		IsBalanced:            isBalanced,
	}, nil
}
