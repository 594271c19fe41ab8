package repository

import (
	"context"

	"github.com/meridianmobile/careline/internal/store"
	"github.com/meridianmobile/careline/internal/subscription/domain"
)

type repository struct {
	store *store.Client
}

// Provide returns the Cosmos-backed subscription repository.
func Provide(client *store.Client) domain.Repository {
	return &repository{store: client}
}

func (r *repository) FindByID(ctx context.Context, subscriptionID int64) (*domain.Subscription, error) {
	items, err := store.QueryItems[domain.Subscription](ctx, r.store, store.ContainerSubscriptions, store.Query{
		Filters: []store.Filter{store.Eq("subscription_id", subscriptionID)},
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Subscription, error) {
	return store.QueryItems[domain.Subscription](ctx, r.store, store.ContainerSubscriptions, store.Query{
		Filters: []store.Filter{store.Eq("customer_id", customerID)},
	})
}

func (r *repository) Replace(ctx context.Context, subscription *domain.Subscription) error {
	// Subscriptions partition on customer_id.
	return r.store.ReplaceItem(ctx, store.ContainerSubscriptions,
		store.PartitionKeyNumber(subscription.CustomerID), subscription.DocID, subscription)
}

func (r *repository) ListIncidents(ctx context.Context, subscriptionID int64) ([]domain.ServiceIncident, error) {
	return store.QueryItems[domain.ServiceIncident](ctx, r.store, store.ContainerServiceIncidents, store.Query{
		Projection: []string{"incident_id", "incident_date", "description", "resolution_status"},
		Filters:    []store.Filter{store.Eq("subscription_id", subscriptionID)},
	})
}

func (r *repository) ListUsage(ctx context.Context, subscriptionID int64, startDate, endDate string) ([]domain.DataUsage, error) {
	return store.QueryItems[domain.DataUsage](ctx, r.store, store.ContainerDataUsage, store.Query{
		Projection: []string{"usage_date", "data_used_mb", "voice_minutes", "sms_count"},
		Filters: []store.Filter{
			store.Eq("subscription_id", subscriptionID),
			store.Gte("usage_date", startDate),
			store.Lte("usage_date", endDate),
		},
		OrderBy: "usage_date",
	})
}
