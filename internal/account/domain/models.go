package domain

import "time"

// Type classifies an account for sign conventions and statement grouping.
type Type string

const (
	TypeAsset     Type = "asset"
	TypeLiability Type = "liability"
	TypeIncome    Type = "income"
	TypeExpense   Type = "expense"
	TypeEquity    Type = "equity"
)

// TypeOrder is the fixed display order used by the trial balance.
var TypeOrder = []Type{TypeAsset, TypeLiability, TypeEquity, TypeIncome, TypeExpense}

var TypeLabels = map[Type]string{
	TypeAsset:     "Assets",
	TypeLiability: "Liabilities",
	TypeEquity:    "Equity",
	TypeIncome:    "Income",
	TypeExpense:   "Expenses",
}

func (t Type) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeIncome, TypeExpense, TypeEquity:
		return true
	}
	return false
}

// HasDebitBalance reports whether the type carries a normal debit balance.
func (t Type) HasDebitBalance() bool {
	return t == TypeAsset || t == TypeExpense
}

// Classification is the balance-sheet liquidity bucket. It is an explicit
// attribute set at creation, not inferred from the subtype string.
type Classification string

const (
	ClassificationCurrent    Classification = "current"
	ClassificationNonCurrent Classification = "non_current"
)

func (c Classification) Valid() bool {
	return c == ClassificationCurrent || c == ClassificationNonCurrent
}

// Account is one row of the chart of accounts. Codes are immutable once
// referenced by journal lines; accounts are deactivated, never deleted.
type Account struct {
	Code           string         `gorm:"primaryKey;type:varchar(10)" json:"code"`
	Name           string         `gorm:"type:varchar(100);not null" json:"name"`
	Type           Type           `gorm:"type:varchar(20);not null;index" json:"type"`
	Subtype        string         `gorm:"type:varchar(50)" json:"subtype"`
	Classification Classification `gorm:"type:varchar(20);not null;default:current" json:"classification"`
	Description    string         `gorm:"type:text" json:"description,omitempty"`
	IsActive       bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Account) TableName() string { return "accounts" }

func (a Account) IsCurrentAsset() bool {
	return a.Type == TypeAsset && a.Classification == ClassificationCurrent
}
