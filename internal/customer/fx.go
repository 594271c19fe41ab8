package customer

import (
	"github.com/meridianmobile/careline/internal/customer/repository"
	"github.com/meridianmobile/careline/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideOrders),
	fx.Provide(service.New),
)
