package repository

import (
	"context"
	"strconv"

	"github.com/meridianmobile/careline/internal/security/domain"
	"github.com/meridianmobile/careline/internal/store"
)

type repository struct {
	store *store.Client
}

// Provide returns the Cosmos-backed security log repository.
func Provide(client *store.Client) domain.Repository {
	return &repository{store: client}
}

func (r *repository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.LogView, error) {
	return store.QueryItems[domain.LogView](ctx, r.store, store.ContainerSecurityLogs, store.Query{
		Projection: []string{"log_id", "event_type", "event_timestamp", "description"},
		Filters:    []store.Filter{store.Eq("customer_id", customerID)},
		OrderBy:    "event_timestamp",
		Desc:       true,
	})
}

func (r *repository) LatestEvent(ctx context.Context, customerID int64, eventType string) (*domain.SecurityLog, error) {
	items, err := store.QueryItems[domain.SecurityLog](ctx, r.store, store.ContainerSecurityLogs, store.Query{
		Filters: []store.Filter{
			store.Eq("customer_id", customerID),
			store.Eq("event_type", eventType),
		},
		OrderBy: "event_timestamp",
		Desc:    true,
		Top:     1,
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *repository) Create(ctx context.Context, log *domain.SecurityLog) error {
	log.DocID = strconv.FormatInt(log.LogID, 10)
	return r.store.CreateItem(ctx, store.ContainerSecurityLogs,
		store.PartitionKeyNumber(log.CustomerID), log)
}
