package service

import (
	"context"

	"github.com/meridianmobile/careline/internal/clock"
	customerdomain "github.com/meridianmobile/careline/internal/customer/domain"
	"github.com/meridianmobile/careline/internal/promotion/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Clock     clock.Clock
	Repo      domain.Repository
	Customers customerdomain.Repository
}

type Service struct {
	log       *zap.Logger
	clock     clock.Clock
	repo      domain.Repository
	customers customerdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("promotion.service"),
		clock:     p.Clock,
		repo:      p.Repo,
		customers: p.Customers,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Promotion, error) {
	return s.repo.List(ctx)
}

// EligibleForCustomer filters today's active promotions through the
// loyalty criteria rule for the customer's level.
func (s *Service) EligibleForCustomer(ctx context.Context, customerID int64) ([]domain.Promotion, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, customerdomain.ErrNotFound
	}

	today := s.clock.Now().Format("2006-01-02")
	active, err := s.repo.ListActive(ctx, today)
	if err != nil {
		return nil, err
	}

	eligible := make([]domain.Promotion, 0, len(active))
	for _, promo := range active {
		if domain.MatchesLoyalty(promo.EligibilityCriteria, customer.LoyaltyLevel) {
			eligible = append(eligible, promo)
		}
	}
	return eligible, nil
}
