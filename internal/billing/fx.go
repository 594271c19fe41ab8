package billing

import (
	"github.com/meridianmobile/careline/internal/billing/repository"
	"github.com/meridianmobile/careline/internal/billing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("billing.service",
	fx.Provide(repository.ProvideInvoices),
	fx.Provide(repository.ProvidePayments),
	fx.Provide(repository.ProvideSubscriptionIDs),
	fx.Provide(service.New),
)
