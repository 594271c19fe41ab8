package knowledge

import (
	"github.com/meridianmobile/careline/internal/knowledge/repository"
	"github.com/meridianmobile/careline/internal/knowledge/service"
	"go.uber.org/fx"
)

var Module = fx.Module("knowledge.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
