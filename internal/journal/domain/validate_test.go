package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chartSet map[string]struct{}

func (c chartSet) Exists(code string) bool {
	_, ok := c[code]
	return ok
}

var testChart = chartSet{
	"A001":  {},
	"I001":  {},
	"L001":  {},
	"L002":  {},
	"EQ001": {},
}

func line(code string, debit, credit string) JournalLine {
	return JournalLine{
		AccountCode: code,
		AccountName: code,
		Debit:       decimal.RequireFromString(debit),
		Credit:      decimal.RequireFromString(credit),
	}
}

func validEntry() JournalEntry {
	return JournalEntry{
		TransactionType: TypeInvoice,
		Narration:       "Invoice raised",
		AIConfidence:    0.95,
		Lines: []JournalLine{
			line("A001", "118000", "0"),
			line("I001", "0", "100000"),
			line("L001", "0", "9000"),
			line("L002", "0", "9000"),
		},
	}
}

func TestValidateEntry_Valid(t *testing.T) {
	assert.NoError(t, ValidateEntry(validEntry(), testChart))
}

func TestValidateEntry_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *JournalEntry)
		code   string
	}{
		{
			name:   "unknown transaction type",
			mutate: func(e *JournalEntry) { e.TransactionType = "barter" },
			code:   "invalid_type",
		},
		{
			name:   "empty narration",
			mutate: func(e *JournalEntry) { e.Narration = "   " },
			code:   "required",
		},
		{
			name:   "confidence above one",
			mutate: func(e *JournalEntry) { e.AIConfidence = 1.2 },
			code:   "out_of_range",
		},
		{
			name:   "single line",
			mutate: func(e *JournalEntry) { e.Lines = e.Lines[:1] },
			code:   "too_few",
		},
		{
			name: "line with both sides",
			mutate: func(e *JournalEntry) {
				e.Lines[0].Credit = decimal.NewFromInt(1)
				e.Lines[1].Credit = decimal.RequireFromString("99999")
			},
			code: "both_sides",
		},
		{
			name: "line with neither side",
			mutate: func(e *JournalEntry) {
				e.Lines[2] = line("L001", "0", "0")
				e.Lines[3].Credit = decimal.RequireFromString("18000")
			},
			code: "no_side",
		},
		{
			name: "negative amount",
			mutate: func(e *JournalEntry) {
				e.Lines[0].Debit = decimal.RequireFromString("-118000")
			},
			code: "negative_amount",
		},
		{
			name: "three decimal places",
			mutate: func(e *JournalEntry) {
				e.Lines[0].Debit = decimal.RequireFromString("118000.005")
			},
			code: "precision",
		},
		{
			name: "unknown account code",
			mutate: func(e *JournalEntry) {
				e.Lines[0].AccountCode = "Z999"
			},
			code: "unknown_account",
		},
		{
			name: "unbalanced totals",
			mutate: func(e *JournalEntry) {
				e.Lines[3].Credit = decimal.RequireFromString("9000.01")
			},
			code: "not_balanced",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			entry := validEntry()
			tc.mutate(&entry)

			err := ValidateEntry(entry, testChart)
			require.Error(t, err)

			var vErr *ValidationErrors
			require.ErrorAs(t, err, &vErr)

			found := false
			for _, fe := range vErr.Errors {
				if fe.Code == tc.code {
					found = true
				}
			}
			assert.True(t, found, "expected violation %q in %v", tc.code, vErr.Errors)
		})
	}
}

func TestValidateEntry_BalanceIsExactNotTolerant(t *testing.T) {
	entry := validEntry()
	entry.Lines[3].Credit = decimal.RequireFromString("8999.999")

	err := ValidateEntry(entry, testChart)
	require.Error(t, err)
}

func TestFormatEntryNumber(t *testing.T) {
	assert.Equal(t, "JV-2026-00001", FormatEntryNumber(2026, 1))
	assert.Equal(t, "JV-2026-00042", FormatEntryNumber(2026, 42))
	assert.Equal(t, "JV-2026-123456", FormatEntryNumber(2026, 123456))
	assert.Equal(t, "JV-2026-", EntryNumberPrefix(2026))
}
