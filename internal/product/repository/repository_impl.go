package repository

import (
	"context"

	"github.com/meridianmobile/careline/internal/product/domain"
	"github.com/meridianmobile/careline/internal/store"
)

type repository struct {
	store *store.Client
}

// Provide returns the Cosmos-backed product repository.
func Provide(client *store.Client) domain.Repository {
	return &repository{store: client}
}

func (r *repository) List(ctx context.Context, category string) ([]domain.Product, error) {
	q := store.Query{}
	if category != "" {
		q.Filters = append(q.Filters, store.Eq("category", category))
	}
	return store.QueryItems[domain.Product](ctx, r.store, store.ContainerProducts, q)
}

func (r *repository) FindByID(ctx context.Context, productID int64) (*domain.Product, error) {
	items, err := store.QueryItems[domain.Product](ctx, r.store, store.ContainerProducts, store.Query{
		Filters: []store.Filter{store.Eq("product_id", productID)},
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}
