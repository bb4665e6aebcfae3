package agentlog

import (
	"github.com/munimji/munimji/internal/agentlog/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("agentlog.repository",
	fx.Provide(repository.Provide),
)
