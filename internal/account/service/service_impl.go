package service

import (
	"context"
	"strings"

	"github.com/munimji/munimji/internal/account/domain"
	"github.com/munimji/munimji/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("account.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateAccountRequest) (domain.Account, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return domain.Account{}, domain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Account{}, domain.ErrInvalidName
	}
	if !req.Type.Valid() {
		return domain.Account{}, domain.ErrInvalidType
	}

	classification := req.Classification
	if classification == "" {
		classification = domain.ClassificationCurrent
	}
	if !classification.Valid() {
		return domain.Account{}, domain.ErrInvalidClassification
	}

	account := domain.Account{
		Code:           code,
		Name:           name,
		Type:           req.Type,
		Subtype:        strings.TrimSpace(req.Subtype),
		Classification: classification,
		Description:    strings.TrimSpace(req.Description),
		IsActive:       true,
	}

	if err := s.repo.Insert(ctx, s.db, &account); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Account{}, domain.ErrCodeExists
		}
		return domain.Account{}, err
	}

	s.log.Info("account created",
		zap.String("code", account.Code),
		zap.String("type", string(account.Type)),
	)
	return account, nil
}

func (s *Service) Get(ctx context.Context, code string) (domain.Account, error) {
	account, err := s.repo.FindByCode(ctx, s.db, strings.TrimSpace(code))
	if err != nil {
		return domain.Account{}, err
	}
	if account == nil {
		return domain.Account{}, domain.ErrNotFound
	}
	return *account, nil
}

func (s *Service) List(ctx context.Context, req domain.ListAccountsRequest) ([]domain.Account, error) {
	return s.repo.List(ctx, s.db, req)
}

// Deactivate retires an account from statement enumeration. Its posted
// history keeps counting wherever the code is referenced directly.
func (s *Service) Deactivate(ctx context.Context, code string) (domain.Account, error) {
	account, err := s.repo.FindByCode(ctx, s.db, strings.TrimSpace(code))
	if err != nil {
		return domain.Account{}, err
	}
	if account == nil {
		return domain.Account{}, domain.ErrNotFound
	}

	account.IsActive = false
	if err := s.repo.Update(ctx, s.db, account); err != nil {
		return domain.Account{}, err
	}

	s.log.Info("account deactivated", zap.String("code", account.Code))
	return *account, nil
}
