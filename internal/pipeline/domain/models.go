package domain

import (
	"context"
	"errors"
	"time"

	agentlogdomain "github.com/munimji/munimji/internal/agentlog/domain"
	journaldomain "github.com/munimji/munimji/internal/journal/domain"
	"github.com/shopspring/decimal"
)

// ProposedLine is one debit/credit line as proposed by the maker agent,
// before structural validation.
type ProposedLine struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// ProposedEntry is the maker agent's draft of a journal entry.
type ProposedEntry struct {
	TransactionDate time.Time                     `json:"transaction_date"`
	TransactionType journaldomain.TransactionType `json:"transaction_type"`
	Narration       string                        `json:"narration"`
	Reference       string                        `json:"reference,omitempty"`
	Lines           []ProposedLine                `json:"lines"`
	Reasoning       string                        `json:"reasoning"`
	Confidence      float64                       `json:"confidence"`
	Warnings        []string                      `json:"warnings,omitempty"`
}

// Telemetry captures the prompt/response/token/duration facts of one
// LLM call for the agent log.
type Telemetry struct {
	Prompt       string
	Response     string
	InputTokens  int
	OutputTokens int
	DurationMs   int
}

// MakerResult is the maker agent's output. Entry is nil when the
// response could not be parsed into a structurally shaped draft.
type MakerResult struct {
	Entry     *ProposedEntry
	Telemetry Telemetry
}

// CheckerResult is the checker agent's output. Verdict is nil when the
// response could not be parsed.
type CheckerResult struct {
	Verdict   *Verdict
	Telemetry Telemetry
}

// Maker drafts a journal entry from a natural-language description.
// Implementations wrap an external LLM service; the core treats them as
// opaque collaborators.
type Maker interface {
	Draft(ctx context.Context, description string, transactionDate time.Time) (MakerResult, error)
}

// Checker audits a proposed entry against the original input.
type Checker interface {
	Audit(ctx context.Context, entry ProposedEntry, originalInput string) (CheckerResult, error)
}

// Result is a completed authoring run: the persisted draft entry plus
// the checker's verdict and the session the run was logged under.
type Result struct {
	SessionID string                      `json:"session_id"`
	Entry     journaldomain.JournalEntry  `json:"entry"`
	Verdict   Verdict                     `json:"verdict"`
	Logs      []agentlogdomain.AgentLog   `json:"-"`
}

type ProcessRequest struct {
	Description     string
	TransactionDate *time.Time
}

type Service interface {
	// Process runs maker -> repair -> validation -> checker and persists
	// the draft with its log backlinks in one transaction. Malformed
	// agent output fails with ErrAuthoringFailed and creates no entry.
	Process(ctx context.Context, req ProcessRequest) (Result, error)

	Logs(ctx context.Context, sessionID string) ([]agentlogdomain.AgentLog, error)
}

var (
	ErrEmptyDescription = errors.New("empty_description")
	ErrAuthoringFailed  = errors.New("authoring_failed")
)
