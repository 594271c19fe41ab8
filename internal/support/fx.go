package support

import (
	"github.com/meridianmobile/careline/internal/support/repository"
	"github.com/meridianmobile/careline/internal/support/service"
	"go.uber.org/fx"
)

var Module = fx.Module("support.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
