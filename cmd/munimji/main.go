package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/munimji/munimji/internal/clock"
	"github.com/munimji/munimji/internal/config"
	"github.com/munimji/munimji/internal/migration"
	"github.com/munimji/munimji/internal/observability/logger"
	"github.com/munimji/munimji/internal/observability/metrics"
	"github.com/munimji/munimji/internal/server"
	"github.com/munimji/munimji/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		metrics.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// HTTP surface; pulls in every domain module.
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
