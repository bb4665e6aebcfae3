package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	accountdomain "github.com/munimji/munimji/internal/account/domain"
	agentlogdomain "github.com/munimji/munimji/internal/agentlog/domain"
	"github.com/munimji/munimji/internal/clock"
	journaldomain "github.com/munimji/munimji/internal/journal/domain"
	"github.com/munimji/munimji/internal/observability/metrics"
	"github.com/munimji/munimji/internal/pipeline/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Clock       clock.Clock
	GenID       *snowflake.Node
	Maker       domain.Maker
	Checker     domain.Checker
	JournalRepo journaldomain.Repository
	AccountRepo accountdomain.Repository
	LogRepo     agentlogdomain.Repository
	Metrics     *metrics.Metrics `optional:"true"`
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	clock       clock.Clock
	genID       *snowflake.Node
	maker       domain.Maker
	checker     domain.Checker
	journalRepo journaldomain.Repository
	accountRepo accountdomain.Repository
	logRepo     agentlogdomain.Repository
	metrics     *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("pipeline.service"),
		clock:       p.Clock,
		genID:       p.GenID,
		maker:       p.Maker,
		checker:     p.Checker,
		journalRepo: p.JournalRepo,
		accountRepo: p.AccountRepo,
		logRepo:     p.LogRepo,
		metrics:     p.Metrics,
	}
}

// Process runs one authoring session: maker draft, deterministic GST
// repair, structural validation, checker audit, then a single
// transaction that persists the entry with its lines and stamps the
// entry onto every log row of the session. Nothing the agents say can
// reach the books without passing validation first.
func (s *Service) Process(ctx context.Context, req domain.ProcessRequest) (domain.Result, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.Result{}, domain.ErrEmptyDescription
	}

	txnDate := clock.Today(s.clock)
	if req.TransactionDate != nil {
		d := *req.TransactionDate
		txnDate = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}

	sessionID := uuid.NewString()
	log := s.log.With(zap.String("session_id", sessionID))

	sanitized, suspicious := sanitizeInput(description)
	if suspicious {
		log.Warn("potential prompt injection attempt detected",
			zap.String("input", truncate(description, 100)))
	}

	s.logStage(ctx, sessionID, agentlogdomain.StageInput, agentlogdomain.LevelInfo,
		fmt.Sprintf("received input: %s", description), nil)

	// Maker.
	s.logStage(ctx, sessionID, agentlogdomain.StageMaker, agentlogdomain.LevelInfo,
		"starting maker agent", nil)

	makerRes, err := s.maker.Draft(ctx, sanitized, txnDate)
	if err != nil || makerRes.Entry == nil {
		msg := "maker output could not be parsed"
		if err != nil {
			msg = fmt.Sprintf("maker failed: %v", err)
		}
		s.logStage(ctx, sessionID, agentlogdomain.StageMaker, agentlogdomain.LevelError, msg, &makerRes.Telemetry)
		s.metrics.RecordPipelineFailure("maker")
		return domain.Result{}, fmt.Errorf("%w: %s", domain.ErrAuthoringFailed, msg)
	}
	s.logStage(ctx, sessionID, agentlogdomain.StageMaker, agentlogdomain.LevelInfo,
		"maker agent completed", &makerRes.Telemetry)

	proposed := *makerRes.Entry
	if proposed.TransactionDate.IsZero() {
		proposed.TransactionDate = txnDate
	}

	// Deterministic GST repair for invoice drafts. The agent decides the
	// accounts; the arithmetic is never left to it.
	if proposed.TransactionType == journaldomain.TypeInvoice {
		if breakdown, ok := repairInvoiceGST(&proposed); ok {
			s.logStage(ctx, sessionID, agentlogdomain.StageMaker, agentlogdomain.LevelInfo,
				fmt.Sprintf("applied GST repair: base=%s cgst=%s sgst=%s",
					breakdown.Base.StringFixed(2), breakdown.CGST.StringFixed(2), breakdown.SGST.StringFixed(2)), nil)
		}
	}

	entry := s.buildEntry(proposed, description)

	// Validation.
	s.logStage(ctx, sessionID, agentlogdomain.StageValidation, agentlogdomain.LevelInfo,
		"starting structural validation", nil)

	checker, err := s.accountExistence(ctx)
	if err != nil {
		return domain.Result{}, err
	}
	if err := journaldomain.ValidateEntry(entry, checker); err != nil {
		s.logStage(ctx, sessionID, agentlogdomain.StageValidation, agentlogdomain.LevelError,
			fmt.Sprintf("validation failed: %v", err), nil)
		s.metrics.RecordPipelineFailure("validation")
		return domain.Result{}, err
	}
	s.logStage(ctx, sessionID, agentlogdomain.StageValidation, agentlogdomain.LevelInfo,
		fmt.Sprintf("validation passed, balance %s", entry.TotalDebit().StringFixed(2)), nil)

	// Checker.
	s.logStage(ctx, sessionID, agentlogdomain.StageChecker, agentlogdomain.LevelInfo,
		"starting checker agent", nil)

	checkerRes, err := s.checker.Audit(ctx, proposed, sanitized)
	if err != nil || checkerRes.Verdict == nil {
		msg := "checker output could not be parsed"
		if err != nil {
			msg = fmt.Sprintf("checker failed: %v", err)
		}
		s.logStage(ctx, sessionID, agentlogdomain.StageChecker, agentlogdomain.LevelError, msg, &checkerRes.Telemetry)
		s.metrics.RecordPipelineFailure("checker")
		return domain.Result{}, fmt.Errorf("%w: %s", domain.ErrAuthoringFailed, msg)
	}
	verdict := *checkerRes.Verdict
	s.logStage(ctx, sessionID, agentlogdomain.StageChecker, agentlogdomain.LevelInfo,
		fmt.Sprintf("checker agent completed, verdict: %s", verdict.Status()), &checkerRes.Telemetry)

	// An approved verdict still needs a human sign-off, so the entry
	// lands in pending_review rather than approved.
	if verdict.Approved() {
		entry.Status = journaldomain.StatusPendingReview
	} else {
		entry.Status = journaldomain.StatusFlagged
	}
	entry.CheckerStatus = string(verdict.Status())
	entry.CheckerErrors = datatypes.NewJSONSlice(verdict.Errors())
	entry.CheckerWarnings = datatypes.NewJSONSlice(verdict.Warnings())
	entry.CheckerSummary = verdict.Summary()

	// Logged before the persisting transaction so the backlink update
	// covers every row of the session, this one included.
	s.logStage(ctx, sessionID, agentlogdomain.StageComplete, agentlogdomain.LevelInfo,
		fmt.Sprintf("pipeline complete, drafting entry as %s", entry.Status), nil)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		number, err := s.journalRepo.NextEntryNumber(ctx, tx, entry.TransactionDate.Year())
		if err != nil {
			return err
		}
		entry.EntryNumber = number

		if err := s.journalRepo.InsertEntry(ctx, tx, &entry); err != nil {
			return err
		}
		for i := range entry.Lines {
			entry.Lines[i].ID = s.genID.Generate()
			entry.Lines[i].JournalEntryID = entry.ID
		}
		if err := s.journalRepo.InsertLines(ctx, tx, entry.Lines); err != nil {
			return err
		}
		return s.logRepo.BacklinkSession(ctx, tx, sessionID, entry.ID)
	})
	if err != nil {
		s.metrics.RecordPipelineFailure("persist")
		return domain.Result{}, err
	}

	s.metrics.RecordEntryDrafted(string(entry.Status))
	log.Info("entry drafted",
		zap.String("entry_number", entry.EntryNumber),
		zap.String("status", string(entry.Status)),
	)

	logs, err := s.logRepo.ListBySession(ctx, s.db, sessionID)
	if err != nil {
		return domain.Result{}, err
	}

	return domain.Result{SessionID: sessionID, Entry: entry, Verdict: verdict, Logs: logs}, nil
}

func (s *Service) Logs(ctx context.Context, sessionID string) ([]agentlogdomain.AgentLog, error) {
	return s.logRepo.ListBySession(ctx, s.db, sessionID)
}

// buildEntry shapes the maker's proposal into a persistable draft.
// Amounts are quantized to two places; validation rejects anything that
// loses precision in the process.
func (s *Service) buildEntry(proposed domain.ProposedEntry, sourceText string) journaldomain.JournalEntry {
	now := s.clock.Now()
	lines := make([]journaldomain.JournalLine, 0, len(proposed.Lines))
	for _, l := range proposed.Lines {
		lines = append(lines, journaldomain.JournalLine{
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	return journaldomain.JournalEntry{
		ID:              s.genID.Generate(),
		TransactionDate: proposed.TransactionDate,
		TransactionType: proposed.TransactionType,
		Narration:       proposed.Narration,
		Reference:       proposed.Reference,
		Status:          journaldomain.StatusDraft,
		SourceText:      sourceText,
		AIReasoning:     proposed.Reasoning,
		AIConfidence:    proposed.Confidence,
		AIWarnings:      datatypes.NewJSONSlice(proposed.Warnings),
		CreatedAt:       now,
		UpdatedAt:       now,
		Lines:           lines,
	}
}

// repairInvoiceGST recomputes the credit split of an invoice draft from
// its debit total: commission income gets the base, the GST payable
// accounts get one half each. Reports false when there is no positive
// debit to derive the split from.
func repairInvoiceGST(proposed *domain.ProposedEntry) (domain.GSTBreakdown, bool) {
	totalDebit := decimal.Zero
	for _, line := range proposed.Lines {
		if line.Debit.IsPositive() {
			totalDebit = totalDebit.Add(line.Debit)
		}
	}
	if !totalDebit.IsPositive() {
		return domain.GSTBreakdown{}, false
	}

	breakdown := domain.GSTFromInclusive(totalDebit)
	for i := range proposed.Lines {
		switch proposed.Lines[i].AccountCode {
		case accountdomain.CodeCommissionIncome:
			proposed.Lines[i].Credit = breakdown.Base
		case accountdomain.CodeCGSTPayable:
			proposed.Lines[i].Credit = breakdown.CGST
		case accountdomain.CodeSGSTPayable:
			proposed.Lines[i].Credit = breakdown.SGST
		}
	}
	return breakdown, true
}

// accountExistence loads the full chart, inactive codes included, so
// drafts referencing deactivated accounts fail review rather than
// resolution.
func (s *Service) accountExistence(ctx context.Context) (journaldomain.AccountChecker, error) {
	accounts, err := s.accountRepo.List(ctx, s.db, accountdomain.ListAccountsRequest{})
	if err != nil {
		return nil, err
	}
	set := make(codeSet, len(accounts))
	for _, a := range accounts {
		set[a.Code] = struct{}{}
	}
	return set, nil
}

type codeSet map[string]struct{}

func (c codeSet) Exists(code string) bool {
	_, ok := c[code]
	return ok
}

// logStage appends one telemetry row. Log writes never fail the
// pipeline; a session with a gap is better than a lost draft.
func (s *Service) logStage(ctx context.Context, sessionID string, stage agentlogdomain.Stage, level agentlogdomain.Level, message string, t *domain.Telemetry) {
	row := agentlogdomain.AgentLog{
		ID:        s.genID.Generate(),
		SessionID: sessionID,
		Timestamp: s.clock.Now(),
		Stage:     stage,
		Level:     level,
		Message:   message,
	}
	if t != nil {
		row.PromptSent = t.Prompt
		row.ResponseReceived = t.Response
		row.InputTokens = intPtr(t.InputTokens)
		row.OutputTokens = intPtr(t.OutputTokens)
		row.DurationMs = intPtr(t.DurationMs)
	}
	if err := s.logRepo.Insert(ctx, s.db, &row); err != nil {
		s.log.Warn("agent log write failed",
			zap.String("session_id", sessionID),
			zap.String("stage", string(stage)),
			zap.Error(err),
		)
	}
}

func intPtr(v int) *int { return &v }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
