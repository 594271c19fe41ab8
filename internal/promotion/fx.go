package promotion

import (
	"github.com/meridianmobile/careline/internal/promotion/repository"
	"github.com/meridianmobile/careline/internal/promotion/service"
	"go.uber.org/fx"
)

var Module = fx.Module("promotion.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
