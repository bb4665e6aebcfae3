package domain

import (
	"encoding/json"
	"errors"
)

type VerdictStatus string

const (
	VerdictApproved VerdictStatus = "approved"
	VerdictFlagged  VerdictStatus = "flagged"
)

var (
	ErrInvalidVerdictStatus = errors.New("invalid_verdict_status")
	ErrVerdictWithoutIssues = errors.New("flagged_verdict_without_issues")
)

// Verdict is the checker agent's decision on a draft. The two shapes
// are constructed through ApprovedVerdict and FlaggedVerdict so an
// approved verdict can never carry errors and a flagged one can never
// be issue-free.
type Verdict struct {
	status   VerdictStatus
	errors   []string
	warnings []string
	summary  string
}

// ApprovedVerdict builds an approval. Approved verdicts carry no
// errors or warnings.
func ApprovedVerdict(summary string) Verdict {
	return Verdict{status: VerdictApproved, summary: summary}
}

// FlaggedVerdict builds a flagging. At least one error or warning is
// required.
func FlaggedVerdict(summary string, errs, warnings []string) (Verdict, error) {
	if len(errs) == 0 && len(warnings) == 0 {
		return Verdict{}, ErrVerdictWithoutIssues
	}
	return Verdict{status: VerdictFlagged, errors: errs, warnings: warnings, summary: summary}, nil
}

// ParseVerdict decodes an untrusted (status, issues) tuple from agent
// output into a well-formed verdict.
func ParseVerdict(status string, errs, warnings []string, summary string) (Verdict, error) {
	switch VerdictStatus(status) {
	case VerdictApproved:
		return ApprovedVerdict(summary), nil
	case VerdictFlagged:
		return FlaggedVerdict(summary, errs, warnings)
	default:
		return Verdict{}, ErrInvalidVerdictStatus
	}
}

func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Status   VerdictStatus `json:"status"`
		Errors   []string      `json:"errors,omitempty"`
		Warnings []string      `json:"warnings,omitempty"`
		Summary  string        `json:"summary,omitempty"`
	}{v.status, v.errors, v.warnings, v.summary})
}

func (v Verdict) Status() VerdictStatus { return v.status }
func (v Verdict) Approved() bool        { return v.status == VerdictApproved }
func (v Verdict) Errors() []string      { return v.errors }
func (v Verdict) Warnings() []string    { return v.warnings }
func (v Verdict) Summary() string       { return v.summary }
