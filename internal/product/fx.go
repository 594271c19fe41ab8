package product

import (
	"github.com/meridianmobile/careline/internal/product/repository"
	"github.com/meridianmobile/careline/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
