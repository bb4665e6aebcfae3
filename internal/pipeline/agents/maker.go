package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/munimji/munimji/internal/clock"
	"github.com/munimji/munimji/internal/config"
	journaldomain "github.com/munimji/munimji/internal/journal/domain"
	"github.com/munimji/munimji/internal/pipeline/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type maker struct {
	client *client
	clock  clock.Clock
}

type checker struct {
	client *client
	clock  clock.Clock
}

// New builds the maker and checker against one shared API client.
func New(cfg config.Config, clk clock.Clock, log *zap.Logger) (domain.Maker, domain.Checker) {
	c := newClient(cfg, log.Named("pipeline.agents"))
	return &maker{client: c, clock: clk}, &checker{client: c, clock: clk}
}

// proposedLineWire mirrors the JSON the maker is asked to produce.
// Amounts decode through decimal so nothing passes through float64.
type proposedLineWire struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

type proposedEntryWire struct {
	TransactionDate string             `json:"transaction_date"`
	TransactionType string             `json:"transaction_type"`
	Narration       string             `json:"narration"`
	Reference       string             `json:"reference"`
	Lines           []proposedLineWire `json:"lines"`
	Reasoning       string             `json:"reasoning"`
	Confidence      float64            `json:"confidence"`
	Warnings        []string           `json:"warnings"`
}

func (m *maker) Draft(ctx context.Context, description string, transactionDate time.Time) (domain.MakerResult, error) {
	skill := renderSkill(makerSkill, clock.Today(m.clock).Format("2006-01-02"))
	prompt := fmt.Sprintf(`You are an accounting assistant. Follow the skill document exactly.

<skill>
%s
</skill>

<input>
Description: %s
Date: %s
</input>

Generate the journal entry as specified in the skill. Output ONLY the JSON object, no other text.`,
		skill, description, transactionDate.Format("2006-01-02"))

	text, telemetry, err := m.client.complete(ctx, prompt)
	if err != nil {
		return domain.MakerResult{Telemetry: telemetry}, err
	}

	var wire proposedEntryWire
	if err := json.Unmarshal([]byte(extractJSON(text)), &wire); err != nil {
		// Unparseable output is a result, not a transport error; the
		// caller decides how to fail.
		return domain.MakerResult{Telemetry: telemetry}, nil
	}

	entry := domain.ProposedEntry{
		TransactionType: journaldomain.TransactionType(wire.TransactionType),
		Narration:       wire.Narration,
		Reference:       wire.Reference,
		Reasoning:       wire.Reasoning,
		Confidence:      wire.Confidence,
		Warnings:        wire.Warnings,
	}
	if d, err := time.Parse("2006-01-02", wire.TransactionDate); err == nil {
		entry.TransactionDate = d
	} else {
		entry.TransactionDate = transactionDate
	}
	for _, l := range wire.Lines {
		entry.Lines = append(entry.Lines, domain.ProposedLine{
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	return domain.MakerResult{Entry: &entry, Telemetry: telemetry}, nil
}
