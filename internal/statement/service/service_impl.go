package service

import (
	accountdomain "github.com/munimji/munimji/internal/account/domain"
	"github.com/munimji/munimji/internal/clock"
	"github.com/munimji/munimji/internal/observability/metrics"
	"github.com/munimji/munimji/internal/statement/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Clock       clock.Clock
	AccountRepo accountdomain.Repository
	Metrics     *metrics.Metrics `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	clock    clock.Clock
	accounts accountdomain.Repository
	metrics  *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("statement.service"),
		clock:    p.Clock,
		accounts: p.AccountRepo,
		metrics:  p.Metrics,
	}
}
