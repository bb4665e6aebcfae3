package journal

import (
	"github.com/munimji/munimji/internal/journal/repository"
	"github.com/munimji/munimji/internal/journal/service"
	"go.uber.org/fx"
)

var Module = fx.Module("journal.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
