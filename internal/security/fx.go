package security

import (
	"github.com/meridianmobile/careline/internal/security/repository"
	"github.com/meridianmobile/careline/internal/security/service"
	"go.uber.org/fx"
)

var Module = fx.Module("security.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
