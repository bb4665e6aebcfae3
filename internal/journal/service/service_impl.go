package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/munimji/munimji/internal/clock"
	"github.com/munimji/munimji/internal/journal/domain"
	"github.com/munimji/munimji/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Clock   clock.Clock
	Repo    domain.Repository
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	clock   clock.Clock
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("journal.service"),
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Get(ctx context.Context, id int64) (domain.JournalEntry, error) {
	entry, err := s.repo.FindByID(ctx, s.db, snowflake.ID(id), false)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	if entry == nil {
		return domain.JournalEntry{}, domain.ErrNotFound
	}
	return *entry, nil
}

func (s *Service) List(ctx context.Context, req domain.ListEntriesRequest) ([]domain.JournalEntry, error) {
	return s.repo.List(ctx, s.db, req)
}

// Approve stamps the reviewer on a balanced entry. The reload, the balance
// guard and the status write share one transaction so two concurrent
// approvals cannot both pass on stale state.
func (s *Service) Approve(ctx context.Context, req domain.ReviewRequest) (domain.JournalEntry, error) {
	reviewer := strings.TrimSpace(req.Reviewer)
	if reviewer == "" {
		return domain.JournalEntry{}, domain.ErrInvalidReviewer
	}

	var approved domain.JournalEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		entry, err := s.repo.FindByID(ctx, tx, snowflake.ID(req.EntryID), true)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if entry.Status == domain.StatusPosted {
			return domain.ErrEntryAlreadyPosted
		}
		if !entry.Status.Reviewable() {
			return domain.ErrEntryNotReviewable
		}
		if !entry.IsBalanced() {
			return domain.ErrEntryNotBalanced
		}

		now := s.clock.Now()
		entry.Status = domain.StatusApproved
		entry.ReviewedBy = reviewer
		entry.ReviewNotes = req.Notes
		entry.ReviewedAt = &now
		entry.UpdatedAt = now
		if err := s.repo.UpdateEntry(ctx, tx, entry); err != nil {
			return err
		}

		approved = *entry
		return nil
	})
	if err != nil {
		return domain.JournalEntry{}, err
	}

	s.log.Info("entry approved",
		zap.String("entry_number", approved.EntryNumber),
		zap.String("reviewer", reviewer),
	)
	return approved, nil
}

func (s *Service) Reject(ctx context.Context, req domain.ReviewRequest) (domain.JournalEntry, error) {
	reviewer := strings.TrimSpace(req.Reviewer)
	if reviewer == "" {
		return domain.JournalEntry{}, domain.ErrInvalidReviewer
	}

	var rejected domain.JournalEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		entry, err := s.repo.FindByID(ctx, tx, snowflake.ID(req.EntryID), true)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if !entry.Status.PrePosted() {
			return domain.ErrEntryAlreadyPosted
		}

		// The proposed lines stay untouched so a rejection remains
		// inspectable in full.
		now := s.clock.Now()
		entry.Status = domain.StatusRejected
		entry.ReviewedBy = reviewer
		entry.ReviewNotes = req.Notes
		entry.ReviewedAt = &now
		entry.UpdatedAt = now
		if err := s.repo.UpdateEntry(ctx, tx, entry); err != nil {
			return err
		}

		rejected = *entry
		return nil
	})
	if err != nil {
		return domain.JournalEntry{}, err
	}

	s.log.Info("entry rejected",
		zap.String("entry_number", rejected.EntryNumber),
		zap.String("reviewer", reviewer),
	)
	return rejected, nil
}

// Post is the sole gate between "exists" and "affects the books". There
// is no transition back; a posted mistake needs an offsetting entry.
func (s *Service) Post(ctx context.Context, id int64) (domain.JournalEntry, error) {
	var posted domain.JournalEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		entry, err := s.repo.FindByID(ctx, tx, snowflake.ID(id), true)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		if entry.Status == domain.StatusPosted {
			return domain.ErrEntryAlreadyPosted
		}
		if entry.Status != domain.StatusApproved {
			return domain.ErrEntryNotApproved
		}

		now := s.clock.Now()
		entry.Status = domain.StatusPosted
		entry.PostedAt = &now
		entry.UpdatedAt = now
		if err := s.repo.UpdateEntry(ctx, tx, entry); err != nil {
			return err
		}

		posted = *entry
		return nil
	})
	if err != nil {
		return domain.JournalEntry{}, err
	}

	s.metrics.RecordEntryPosted()
	s.log.Info("entry posted", zap.String("entry_number", posted.EntryNumber))
	return posted, nil
}
