package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/munimji/munimji/internal/account"
	accountdomain "github.com/munimji/munimji/internal/account/domain"
	"github.com/munimji/munimji/internal/agentlog"
	agentlogdomain "github.com/munimji/munimji/internal/agentlog/domain"
	"github.com/munimji/munimji/internal/config"
	"github.com/munimji/munimji/internal/journal"
	journaldomain "github.com/munimji/munimji/internal/journal/domain"
	"github.com/munimji/munimji/internal/observability/logger"
	"github.com/munimji/munimji/internal/pipeline"
	pipelinedomain "github.com/munimji/munimji/internal/pipeline/domain"
	"github.com/munimji/munimji/internal/statement"
	statementdomain "github.com/munimji/munimji/internal/statement/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	account.Module,
	journal.Module,
	agentlog.Module,
	statement.Module,
	pipeline.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, reg *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.ListenAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	accountSvc   accountdomain.Service
	journalSvc   journaldomain.Service
	statementSvc statementdomain.Service
	pipelineSvc  pipelinedomain.Service
	agentLogRepo agentlogdomain.Repository
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	AccountSvc   accountdomain.Service
	JournalSvc   journaldomain.Service
	StatementSvc statementdomain.Service
	PipelineSvc  pipelinedomain.Service
	AgentLogRepo agentlogdomain.Repository
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		accountSvc:   p.AccountSvc,
		journalSvc:   p.JournalSvc,
		statementSvc: p.StatementSvc,
		pipelineSvc:  p.PipelineSvc,
		agentLogRepo: p.AgentLogRepo,
	}
	s.registerAPIRoutes()
	return s
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/accounts", s.ListAccounts)
	api.POST("/accounts", s.CreateAccount)
	api.GET("/accounts/:code", s.GetAccount)
	api.DELETE("/accounts/:code", s.DeactivateAccount)

	api.POST("/entries", s.CreateEntry)
	api.GET("/entries", s.ListEntries)
	api.GET("/entries/:id", s.GetEntry)
	api.POST("/entries/:id/approve", s.ApproveEntry)
	api.POST("/entries/:id/reject", s.RejectEntry)
	api.POST("/entries/:id/post", s.PostEntry)

	api.GET("/statements/trial-balance", s.TrialBalance)
	api.GET("/statements/profit-loss", s.ProfitLoss)
	api.GET("/statements/balance-sheet", s.BalanceSheet)
	api.GET("/ledger/:code", s.AccountLedger)

	api.GET("/agent-logs", s.ListAgentLogs)
}
