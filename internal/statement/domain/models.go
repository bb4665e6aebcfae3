package domain

import (
	"time"

	accountdomain "github.com/munimji/munimji/internal/account/domain"
	journaldomain "github.com/munimji/munimji/internal/journal/domain"
	"github.com/shopspring/decimal"
)

// Tolerance absorbs rounding noise in the balancing checks: statements
// report balanced when the difference is below 0.01 currency units.
var Tolerance = decimal.New(1, -2)

func WithinTolerance(d decimal.Decimal) bool {
	return d.Abs().LessThan(Tolerance)
}

// TrialBalanceRow shows one account's balance re-expressed so that
// exactly one column is non-zero and neither is ever negative.
type TrialBalanceRow struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	DebitBalance  decimal.Decimal `json:"debit_balance"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
}

type TrialBalanceReport struct {
	AsOf           time.Time                                       `json:"as_of_date"`
	AccountsByType map[accountdomain.Type][]TrialBalanceRow        `json:"accounts_by_type"`
	TypeOrder      []accountdomain.Type                            `json:"account_type_order"`
	TypeLabels     map[accountdomain.Type]string                   `json:"account_type_labels"`
	TotalDebit     decimal.Decimal                                 `json:"total_debit"`
	TotalCredit    decimal.Decimal                                 `json:"total_credit"`
	Difference     decimal.Decimal                                 `json:"difference"`
	IsBalanced     bool                                            `json:"is_balanced"`
}

// ProfitLossRow is one income or expense account with a non-zero
// period balance.
type ProfitLossRow struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ProfitLossReport carries the net result as an unsigned magnitude plus
// IsProfit; readers must combine both. SignedNet restores the signed
// figure for internal consumers such as the balance sheet.
type ProfitLossReport struct {
	From            *time.Time      `json:"from_date,omitempty"`
	To              time.Time       `json:"to_date"`
	PeriodLabel     string          `json:"period_label"`
	IncomeAccounts  []ProfitLossRow `json:"income_accounts"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	ExpenseAccounts []ProfitLossRow `json:"expense_accounts"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	NetProfitLoss   decimal.Decimal `json:"net_profit_loss"`
	IsProfit        bool            `json:"is_profit"`
}

func (r ProfitLossReport) SignedNet() decimal.Decimal {
	if r.IsProfit {
		return r.NetProfitLoss
	}
	return r.NetProfitLoss.Neg()
}

type BalanceSheetRow struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

type BalanceSheetReport struct {
	AsOf time.Time `json:"as_of_date"`

	CurrentAssets         []BalanceSheetRow `json:"current_assets"`
	NonCurrentAssets      []BalanceSheetRow `json:"non_current_assets"`
	TotalCurrentAssets    decimal.Decimal   `json:"total_current_assets"`
	TotalNonCurrentAssets decimal.Decimal   `json:"total_non_current_assets"`
	TotalAssets           decimal.Decimal   `json:"total_assets"`

	CurrentLiabilities      []BalanceSheetRow `json:"current_liabilities"`
	TotalCurrentLiabilities decimal.Decimal   `json:"total_current_liabilities"`
	TotalLiabilities        decimal.Decimal   `json:"total_liabilities"`

	EquityAccounts   []BalanceSheetRow `json:"equity_accounts"`
	RetainedEarnings decimal.Decimal   `json:"retained_earnings"`
	TotalEquity      decimal.Decimal   `json:"total_equity"`

	LiabilitiesPlusEquity decimal.Decimal `json:"liabilities_plus_equity"`
	Difference            decimal.Decimal `json:"difference"`
	IsBalanced            bool            `json:"is_balanced"`
}

// LedgerRow is one posted line of the account with the running balance
// after it.
type LedgerRow struct {
	Date            time.Time                     `json:"date"`
	EntryID         int64                         `json:"entry_id"`
	EntryNumber     string                        `json:"entry_number"`
	Narration       string                        `json:"narration"`
	Reference       string                        `json:"reference,omitempty"`
	TransactionType journaldomain.TransactionType `json:"transaction_type"`
	Debit           decimal.Decimal               `json:"debit"`
	Credit          decimal.Decimal               `json:"credit"`
	Balance         decimal.Decimal               `json:"balance"`
}

type LedgerReport struct {
	Account        accountdomain.Account `json:"account"`
	Start          *time.Time            `json:"start_date,omitempty"`
	End            *time.Time            `json:"end_date,omitempty"`
	OpeningBalance decimal.Decimal       `json:"opening_balance"`
	Transactions   []LedgerRow           `json:"transactions"`
	TotalDebit     decimal.Decimal       `json:"total_debit"`
	TotalCredit    decimal.Decimal       `json:"total_credit"`
	ClosingBalance decimal.Decimal       `json:"closing_balance"`
}
