package repository

import (
	"context"
	"strconv"

	"github.com/meridianmobile/careline/internal/billing/domain"
	"github.com/meridianmobile/careline/internal/store"
)

type invoiceRepository struct {
	store *store.Client
}

// ProvideInvoices returns the Cosmos-backed invoice repository.
func ProvideInvoices(client *store.Client) domain.InvoiceRepository {
	return &invoiceRepository{store: client}
}

func (r *invoiceRepository) FindByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	items, err := store.QueryItems[domain.Invoice](ctx, r.store, store.ContainerInvoices, store.Query{
		Filters: []store.Filter{store.Eq("invoice_id", invoiceID)},
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *invoiceRepository) ListBySubscription(ctx context.Context, subscriptionID int64) ([]domain.Invoice, error) {
	return store.QueryItems[domain.Invoice](ctx, r.store, store.ContainerInvoices, store.Query{
		Filters: []store.Filter{store.Eq("subscription_id", subscriptionID)},
	})
}

type paymentRepository struct {
	store *store.Client
}

// ProvidePayments returns the Cosmos-backed payment repository.
func ProvidePayments(client *store.Client) domain.PaymentRepository {
	return &paymentRepository{store: client}
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	return store.QueryItems[domain.Payment](ctx, r.store, store.ContainerPayments, store.Query{
		Filters: []store.Filter{store.Eq("invoice_id", invoiceID)},
	})
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	payment.DocID = strconv.FormatInt(payment.PaymentID, 10)
	return r.store.CreateItem(ctx, store.ContainerPayments,
		store.PartitionKeyNumber(payment.InvoiceID), payment)
}

type subscriptionIDSource struct {
	store *store.Client
}

// ProvideSubscriptionIDs returns a projection over the Subscriptions
// container that yields only subscription ids for a customer.
func ProvideSubscriptionIDs(client *store.Client) domain.SubscriptionIDSource {
	return &subscriptionIDSource{store: client}
}

func (r *subscriptionIDSource) ListIDsByCustomer(ctx context.Context, customerID int64) ([]int64, error) {
	type row struct {
		SubscriptionID int64 `json:"subscription_id"`
	}
	rows, err := store.QueryItems[row](ctx, r.store, store.ContainerSubscriptions, store.Query{
		Projection: []string{"subscription_id"},
		Filters:    []store.Filter{store.Eq("customer_id", customerID)},
	})
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.SubscriptionID)
	}
	return ids, nil
}
