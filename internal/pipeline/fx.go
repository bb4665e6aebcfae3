package pipeline

import (
	"github.com/munimji/munimji/internal/pipeline/agents"
	"github.com/munimji/munimji/internal/pipeline/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pipeline.service",
	fx.Provide(agents.New),
	fx.Provide(service.New),
)
