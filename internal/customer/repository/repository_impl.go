package repository

import (
	"context"

	"github.com/meridianmobile/careline/internal/customer/domain"
	"github.com/meridianmobile/careline/internal/store"
)

type repository struct {
	store *store.Client
}

// Provide returns the Cosmos-backed customer repository.
func Provide(client *store.Client) domain.Repository {
	return &repository{store: client}
}

func (r *repository) List(ctx context.Context) ([]domain.Summary, error) {
	return store.QueryItems[domain.Summary](ctx, r.store, store.ContainerCustomers, store.Query{
		Projection: []string{"customer_id", "first_name", "last_name", "email", "loyalty_level"},
	})
}

func (r *repository) FindByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	items, err := store.QueryItems[domain.Customer](ctx, r.store, store.ContainerCustomers, store.Query{
		Filters: []store.Filter{store.Eq("customer_id", customerID)},
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

type orderRepository struct {
	store *store.Client
}

// ProvideOrders returns the Cosmos-backed order repository.
func ProvideOrders(client *store.Client) domain.OrderRepository {
	return &orderRepository{store: client}
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	return store.QueryItems[domain.Order](ctx, r.store, store.ContainerOrders, store.Query{
		Filters: []store.Filter{store.Eq("customer_id", customerID)},
		OrderBy: "order_date",
		Desc:    true,
	})
}
