package service

import (
	"context"

	"github.com/meridianmobile/careline/internal/customer/domain"
	productdomain "github.com/meridianmobile/careline/internal/product/domain"
	subscriptiondomain "github.com/meridianmobile/careline/internal/subscription/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log           *zap.Logger
	Repo          domain.Repository
	Orders        domain.OrderRepository
	Subscriptions subscriptiondomain.Repository
	Products      productdomain.Repository
}

type Service struct {
	log           *zap.Logger
	repo          domain.Repository
	orders        domain.OrderRepository
	subscriptions subscriptiondomain.Repository
	products      productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:           p.Log.Named("customer.service"),
		repo:          p.Repo,
		orders:        p.Orders,
		subscriptions: p.Subscriptions,
		products:      p.Products,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Summary, error) {
	return s.repo.List(ctx)
}

// GetDetail returns the customer with their subscriptions attached. A
// customer with no subscriptions gets an empty list, not an error.
func (s *Service) GetDetail(ctx context.Context, customerID int64) (domain.Detail, error) {
	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return domain.Detail{}, err
	}
	if customer == nil {
		return domain.Detail{}, domain.ErrNotFound
	}

	subscriptions, err := s.subscriptions.ListByCustomer(ctx, customerID)
	if err != nil {
		return domain.Detail{}, err
	}
	if subscriptions == nil {
		subscriptions = []subscriptiondomain.Subscription{}
	}

	return domain.Detail{Customer: *customer, Subscriptions: subscriptions}, nil
}

// ListOrders returns the customer's orders newest first, each with its
// product name resolved. A product that no longer exists resolves to the
// "Unknown" placeholder rather than failing the listing.
func (s *Service) ListOrders(ctx context.Context, customerID int64) ([]domain.OrderView, error) {
	orders, err := s.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.OrderView, 0, len(orders))
	for _, order := range orders {
		name := domain.UnknownProductName
		product, err := s.products.FindByID(ctx, order.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			name = product.Name
		}
		views = append(views, domain.OrderView{
			OrderID:     order.OrderID,
			OrderDate:   order.OrderDate,
			ProductName: name,
			Amount:      order.Amount,
			OrderStatus: order.OrderStatus,
		})
	}
	return views, nil
}
