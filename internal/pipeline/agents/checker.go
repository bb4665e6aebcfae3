package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/munimji/munimji/internal/clock"
	"github.com/munimji/munimji/internal/pipeline/domain"
)

type verdictWire struct {
	Status   string   `json:"status"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Summary  string   `json:"summary"`
}

func (c *checker) Audit(ctx context.Context, entry domain.ProposedEntry, originalInput string) (domain.CheckerResult, error) {
	entryJSON, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return domain.CheckerResult{}, err
	}

	skill := renderSkill(checkerSkill, clock.Today(c.clock).Format("2006-01-02"))
	prompt := fmt.Sprintf(`You are an accounting auditor. Follow the skill document exactly.

<skill>
%s
</skill>

<original_input>
%s
</original_input>

<entry_to_validate>
%s
</entry_to_validate>

Validate the entry as specified in the skill. Output ONLY the JSON object, no other text.`,
		skill, originalInput, entryJSON)

	text, telemetry, err := c.client.complete(ctx, prompt)
	if err != nil {
		return domain.CheckerResult{Telemetry: telemetry}, err
	}

	var wire verdictWire
	if err := json.Unmarshal([]byte(extractJSON(text)), &wire); err != nil {
		return domain.CheckerResult{Telemetry: telemetry}, nil
	}

	verdict, err := domain.ParseVerdict(wire.Status, wire.Errors, wire.Warnings, wire.Summary)
	if err != nil {
		return domain.CheckerResult{Telemetry: telemetry}, nil
	}
	return domain.CheckerResult{Verdict: &verdict, Telemetry: telemetry}, nil
}
