package subscription

import (
	"github.com/meridianmobile/careline/internal/subscription/repository"
	"github.com/meridianmobile/careline/internal/subscription/service"
	"go.uber.org/fx"
)

var Module = fx.Module("subscription.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
