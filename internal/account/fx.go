package account

import (
	"github.com/munimji/munimji/internal/account/repository"
	"github.com/munimji/munimji/internal/account/service"
	"go.uber.org/fx"
)

var Module = fx.Module("account.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
