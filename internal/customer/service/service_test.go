package service

import (
	"context"
	"testing"

	"github.com/meridianmobile/careline/internal/customer/domain"
	productdomain "github.com/meridianmobile/careline/internal/product/domain"
	subscriptiondomain "github.com/meridianmobile/careline/internal/subscription/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCustomers struct {
	customers map[int64]domain.Customer
}

func (f *fakeCustomers) List(_ context.Context) ([]domain.Summary, error) {
	return nil, nil
}

func (f *fakeCustomers) FindByID(_ context.Context, id int64) (*domain.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return &c, nil
	}
	return nil, nil
}

type fakeOrders struct {
	orders []domain.Order
}

func (f *fakeOrders) ListByCustomer(_ context.Context, _ int64) ([]domain.Order, error) {
	return f.orders, nil
}

type fakeSubscriptions struct {
	byCustomer map[int64][]subscriptiondomain.Subscription
}

func (f *fakeSubscriptions) FindByID(_ context.Context, _ int64) (*subscriptiondomain.Subscription, error) {
	return nil, nil
}

func (f *fakeSubscriptions) ListByCustomer(_ context.Context, id int64) ([]subscriptiondomain.Subscription, error) {
	return f.byCustomer[id], nil
}

func (f *fakeSubscriptions) Replace(_ context.Context, _ *subscriptiondomain.Subscription) error {
	return nil
}

func (f *fakeSubscriptions) ListIncidents(_ context.Context, _ int64) ([]subscriptiondomain.ServiceIncident, error) {
	return nil, nil
}

func (f *fakeSubscriptions) ListUsage(_ context.Context, _ int64, _, _ string) ([]subscriptiondomain.DataUsage, error) {
	return nil, nil
}

type fakeProducts struct {
	products map[int64]productdomain.Product
}

func (f *fakeProducts) List(_ context.Context, _ string) ([]productdomain.Product, error) {
	return nil, nil
}

func (f *fakeProducts) FindByID(_ context.Context, id int64) (*productdomain.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func newService(customers *fakeCustomers, orders *fakeOrders, subs *fakeSubscriptions, products *fakeProducts) domain.Service {
	return New(Params{
		Log:           zap.NewNop(),
		Repo:          customers,
		Orders:        orders,
		Subscriptions: subs,
		Products:      products,
	})
}

func TestGetDetailNotFound(t *testing.T) {
	svc := newService(&fakeCustomers{}, &fakeOrders{}, &fakeSubscriptions{}, &fakeProducts{})

	_, err := svc.GetDetail(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetDetailAttachesSubscriptions(t *testing.T) {
	customers := &fakeCustomers{customers: map[int64]domain.Customer{
		5: {CustomerID: 5, FirstName: "Dana", LoyaltyLevel: "Gold"},
	}}
	subs := &fakeSubscriptions{byCustomer: map[int64][]subscriptiondomain.Subscription{
		5: {{SubscriptionID: 10, CustomerID: 5}, {SubscriptionID: 11, CustomerID: 5}},
	}}

	svc := newService(customers, &fakeOrders{}, subs, &fakeProducts{})

	detail, err := svc.GetDetail(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Gold", detail.LoyaltyLevel)
	assert.Len(t, detail.Subscriptions, 2)
}

func TestGetDetailNoSubscriptionsYieldsEmptyList(t *testing.T) {
	customers := &fakeCustomers{customers: map[int64]domain.Customer{
		5: {CustomerID: 5},
	}}

	svc := newService(customers, &fakeOrders{}, &fakeSubscriptions{}, &fakeProducts{})

	detail, err := svc.GetDetail(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, detail.Subscriptions)
	assert.Empty(t, detail.Subscriptions)
}

func TestListOrdersResolvesProductNames(t *testing.T) {
	orders := &fakeOrders{orders: []domain.Order{
		{OrderID: 1, ProductID: 2, OrderDate: "2024-02-10", Amount: 99.0, OrderStatus: "delivered"},
		{OrderID: 2, ProductID: 777, OrderDate: "2024-01-05", Amount: 20.0, OrderStatus: "pending"},
	}}
	products := &fakeProducts{products: map[int64]productdomain.Product{
		2: {ProductID: 2, Name: "Internet Plan"},
	}}

	svc := newService(&fakeCustomers{}, orders, &fakeSubscriptions{}, products)

	views, err := svc.ListOrders(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Internet Plan", views[0].ProductName)
	assert.Equal(t, domain.UnknownProductName, views[1].ProductName)
}
