package repository

import (
	"context"
	"strconv"

	"github.com/meridianmobile/careline/internal/store"
	"github.com/meridianmobile/careline/internal/support/domain"
)

type repository struct {
	store *store.Client
}

// Provide returns the Cosmos-backed support ticket repository.
func Provide(client *store.Client) domain.Repository {
	return &repository{store: client}
}

func (r *repository) ListByCustomer(ctx context.Context, customerID int64, openOnly bool) ([]domain.SupportTicket, error) {
	filters := []store.Filter{store.Eq("customer_id", customerID)}
	if openOnly {
		filters = append(filters, store.Neq("status", domain.StatusClosed))
	}
	return store.QueryItems[domain.SupportTicket](ctx, r.store, store.ContainerSupportTickets, store.Query{
		Filters: filters,
	})
}

func (r *repository) Create(ctx context.Context, ticket *domain.SupportTicket) error {
	ticket.DocID = strconv.FormatInt(ticket.TicketID, 10)
	return r.store.CreateItem(ctx, store.ContainerSupportTickets,
		store.PartitionKeyNumber(ticket.CustomerID), ticket)
}
