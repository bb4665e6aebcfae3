package db

import (
	"context"
	"time"

	"github.com/munimji/munimji/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("db",
	fx.Provide(Open),
)

// Open builds the gorm connection from application config and registers
// a shutdown hook that closes the underlying pool.
func Open(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dbCfg := Config{
		Type:     cfg.DBType,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		Name:     cfg.DBName,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		SSLMode:  cfg.DBSSLMode,
		Pool: Pool{
			MaxIdle:         cfg.DBMaxIdleConn,
			MaxOpen:         cfg.DBMaxOpenConn,
			MaxLifetimeSecs: cfg.DBConnMaxLifetime,
			MaxIdleTimeSecs: cfg.DBConnMaxIdleTime,
		},
	}

	dialector, err := Dialect(dbCfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	pool := dbCfg.Pool
	if pool.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdle)
	}
	if pool.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpen)
	}
	if pool.MaxLifetimeSecs > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.MaxLifetimeSecs) * time.Second)
	}
	if pool.MaxIdleTimeSecs > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(pool.MaxIdleTimeSecs) * time.Second)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing database connection")
			return sqlDB.Close()
		},
	})

	return conn, nil
}
