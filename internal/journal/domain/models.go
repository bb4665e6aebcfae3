package domain

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// EntryStatus is the lifecycle state of a journal entry. Only posted
// entries count toward any balance.
type EntryStatus string

const (
	StatusDraft         EntryStatus = "draft"
	StatusFlagged       EntryStatus = "flagged"
	StatusPendingReview EntryStatus = "pending_review"
	StatusApproved      EntryStatus = "approved"
	StatusRejected      EntryStatus = "rejected"
	StatusPosted        EntryStatus = "posted"
)

// Reviewable reports whether the entry may still be approved.
func (s EntryStatus) Reviewable() bool {
	switch s {
	case StatusDraft, StatusFlagged, StatusPendingReview:
		return true
	}
	return false
}

// PrePosted reports whether the entry has not yet reached the books.
func (s EntryStatus) PrePosted() bool {
	return s != StatusPosted
}

type TransactionType string

const (
	TypeInvoice        TransactionType = "invoice"
	TypeReceipt        TransactionType = "receipt"
	TypeReceiptWithTDS TransactionType = "receipt_with_tds"
	TypeSalary         TransactionType = "salary"
	TypeExpense        TransactionType = "expense"
	TypeDrawings       TransactionType = "drawings"
	TypeCapital        TransactionType = "capital"
	TypeGSTPayment     TransactionType = "gst_payment"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeInvoice, TypeReceipt, TypeReceiptWithTDS, TypeSalary,
		TypeExpense, TypeDrawings, TypeCapital, TypeGSTPayment:
		return true
	}
	return false
}

// EntryNumberFormat is "JV-<year>-<5-digit sequence>", sequential per
// calendar year of the transaction date.
const entryNumberFormat = "JV-%d-%05d"

func FormatEntryNumber(year, seq int) string {
	return fmt.Sprintf(entryNumberFormat, year, seq)
}

func EntryNumberPrefix(year int) string {
	return fmt.Sprintf("JV-%d-", year)
}

// JournalEntry is a double-entry journal voucher drafted by the maker
// agent and reviewed by a human before posting. It exclusively owns its
// lines.
type JournalEntry struct {
	ID              snowflake.ID    `gorm:"primaryKey" json:"id"`
	EntryNumber     string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"entry_number"`
	TransactionDate time.Time       `gorm:"type:date;not null;index" json:"transaction_date"`
	TransactionType TransactionType `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Narration       string          `gorm:"type:text;not null" json:"narration"`
	Reference       string          `gorm:"type:varchar(100)" json:"reference,omitempty"`
	Status          EntryStatus     `gorm:"type:varchar(20);not null;default:draft;index" json:"status"`

	SourceText string `gorm:"type:text" json:"source_text,omitempty"`

	AIReasoning  string                      `gorm:"type:text" json:"ai_reasoning,omitempty"`
	AIConfidence float64                     `gorm:"not null;default:0" json:"ai_confidence"`
	AIWarnings   datatypes.JSONSlice[string] `gorm:"type:json" json:"ai_warnings,omitempty"`

	CheckerStatus   string                      `gorm:"type:varchar(20)" json:"checker_status,omitempty"`
	CheckerErrors   datatypes.JSONSlice[string] `gorm:"type:json" json:"checker_errors,omitempty"`
	CheckerWarnings datatypes.JSONSlice[string] `gorm:"type:json" json:"checker_warnings,omitempty"`
	CheckerSummary  string                      `gorm:"type:text" json:"checker_summary,omitempty"`

	ReviewedBy  string     `gorm:"type:varchar(100)" json:"reviewed_by,omitempty"`
	ReviewNotes string     `gorm:"type:text" json:"review_notes,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`

	PostedAt  *time.Time `json:"posted_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Lines []JournalLine `gorm:"foreignKey:JournalEntryID;constraint:OnDelete:CASCADE" json:"lines"`
}

// TableName sets the database table name.
func (JournalEntry) TableName() string { return "journal_entries" }

// TotalDebit sums the debit side of the entry's lines.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Debit)
	}
	return total
}

// TotalCredit sums the credit side of the entry's lines.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Credit)
	}
	return total
}

// IsBalanced reports whether debits equal credits exactly.
func (e JournalEntry) IsBalanced() bool {
	return e.TotalDebit().Equal(e.TotalCredit())
}

// JournalLine is one debit or credit posting. Exactly one side is
// strictly positive, never both and never neither.
type JournalLine struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	JournalEntryID snowflake.ID    `gorm:"not null;index" json:"journal_entry_id"`
	AccountCode    string          `gorm:"type:varchar(10);not null;index" json:"account_code"`
	AccountName    string          `gorm:"type:varchar(100);not null" json:"account_name"`
	Debit          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"debit"`
	Credit         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"credit"`
}

// TableName sets the database table name.
func (JournalLine) TableName() string { return "journal_lines" }
