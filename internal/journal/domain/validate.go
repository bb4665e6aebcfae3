package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FieldError describes a single structural rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors is the full set of violations for a proposed entry.
// Structural failures are surfaced, never silently corrected.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation error"
	}
	msgs := make([]string, 0, len(v.Errors))
	for _, e := range v.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(msgs, "; ")
}

func (v *ValidationErrors) add(field, code, message string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Code: code, Message: message})
}

// AccountChecker tests whether an account code exists in the chart of
// accounts.
type AccountChecker interface {
	Exists(code string) bool
}

var hundred = decimal.NewFromInt(100)

// hasMoneyPrecision reports whether d fits two decimal places exactly.
func hasMoneyPrecision(d decimal.Decimal) bool {
	scaled := d.Mul(hundred)
	return scaled.Equal(scaled.Truncate(0))
}

// ValidateEntry enforces the structural rules a proposed entry must meet
// before it may be approved:
//
//  1. at least two lines;
//  2. each line has exactly one strictly positive side;
//  3. amounts are non-negative with at most two decimal places;
//  4. every account code resolves in the chart of accounts;
//  5. total debits equal total credits exactly;
//  6. confidence is within [0, 1] and the transaction type is known.
func ValidateEntry(entry JournalEntry, accounts AccountChecker) error {
	var v ValidationErrors

	if !entry.TransactionType.Valid() {
		v.add("transaction_type", "invalid_type", fmt.Sprintf("unknown transaction type %q", entry.TransactionType))
	}
	if strings.TrimSpace(entry.Narration) == "" {
		v.add("narration", "required", "narration must not be empty")
	}
	if entry.AIConfidence < 0 || entry.AIConfidence > 1 {
		v.add("ai_confidence", "out_of_range", fmt.Sprintf("confidence %v outside [0, 1]", entry.AIConfidence))
	}
	if len(entry.Lines) < 2 {
		v.add("lines", "too_few", "an entry needs at least two lines")
	}

	for i, line := range entry.Lines {
		field := fmt.Sprintf("lines[%d]", i)

		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			v.add(field, "negative_amount", "debit and credit must be non-negative")
		}
		if !hasMoneyPrecision(line.Debit) || !hasMoneyPrecision(line.Credit) {
			v.add(field, "precision", "amounts must have at most two decimal places")
		}

		hasDebit := line.Debit.IsPositive()
		hasCredit := line.Credit.IsPositive()
		if hasDebit && hasCredit {
			v.add(field, "both_sides", fmt.Sprintf("line for %s has both debit (%s) and credit (%s)",
				line.AccountName, line.Debit.StringFixed(2), line.Credit.StringFixed(2)))
		}
		if !hasDebit && !hasCredit {
			v.add(field, "no_side", fmt.Sprintf("line for %s has neither debit nor credit", line.AccountName))
		}

		if accounts != nil && !accounts.Exists(line.AccountCode) {
			v.add(field, "unknown_account", fmt.Sprintf("unknown account %q", line.AccountCode))
		}
	}

	totalDebit := entry.TotalDebit()
	totalCredit := entry.TotalCredit()
	if !totalDebit.Equal(totalCredit) {
		v.add("lines", "not_balanced", fmt.Sprintf("entry does not balance: debits %s, credits %s",
			totalDebit.StringFixed(2), totalCredit.StringFixed(2)))
	}

	if len(v.Errors) > 0 {
		return &v
	}
	return nil
}
