package repository

import (
	"context"

	"github.com/meridianmobile/careline/internal/promotion/domain"
	"github.com/meridianmobile/careline/internal/store"
)

type repository struct {
	store *store.Client
}

// Provide returns the Cosmos-backed promotion repository.
func Provide(client *store.Client) domain.Repository {
	return &repository{store: client}
}

func (r *repository) List(ctx context.Context) ([]domain.Promotion, error) {
	return store.QueryItems[domain.Promotion](ctx, r.store, store.ContainerPromotions, store.Query{})
}

func (r *repository) ListActive(ctx context.Context, today string) ([]domain.Promotion, error) {
	return store.QueryItems[domain.Promotion](ctx, r.store, store.ContainerPromotions, store.Query{
		Filters: []store.Filter{
			store.Lte("start_date", today),
			store.Gte("end_date", today),
		},
	})
}
