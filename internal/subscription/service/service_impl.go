package service

import (
	"context"

	billingdomain "github.com/meridianmobile/careline/internal/billing/domain"
	productdomain "github.com/meridianmobile/careline/internal/product/domain"
	"github.com/meridianmobile/careline/internal/subscription/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Repo     domain.Repository
	Products productdomain.Repository
	Invoices billingdomain.InvoiceRepository
	Payments billingdomain.PaymentRepository
}

type Service struct {
	log      *zap.Logger
	repo     domain.Repository
	products productdomain.Repository
	invoices billingdomain.InvoiceRepository
	payments billingdomain.PaymentRepository
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("subscription.service"),
		repo:     p.Repo,
		products: p.Products,
		invoices: p.Invoices,
		payments: p.Payments,
	}
}

// GetDetail composes the subscription view. The product, invoice and
// incident fetches are independent and run concurrently; all three must
// succeed before the composite is returned. Only a missing product is
// tolerated — the view then ships without enrichment fields.
func (s *Service) GetDetail(ctx context.Context, subscriptionID int64) (domain.Detail, error) {
	subscription, err := s.repo.FindByID(ctx, subscriptionID)
	if err != nil {
		return domain.Detail{}, err
	}
	if subscription == nil {
		return domain.Detail{}, domain.ErrNotFound
	}

	detail := domain.Detail{
		Subscription:     *subscription,
		Invoices:         []billingdomain.InvoiceDetail{},
		ServiceIncidents: []domain.ServiceIncident{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		product, err := s.products.FindByID(gctx, subscription.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			s.log.Warn("subscription references missing product",
				zap.Int64("subscription_id", subscriptionID),
				zap.Int64("product_id", subscription.ProductID),
			)
			return nil
		}
		detail.ProductName = product.Name
		detail.ProductDescription = product.Description
		detail.Category = product.Category
		detail.MonthlyFee = product.MonthlyFee
		return nil
	})

	g.Go(func() error {
		invoices, err := s.invoices.ListBySubscription(gctx, subscriptionID)
		if err != nil {
			return err
		}
		enriched := make([]billingdomain.InvoiceDetail, 0, len(invoices))
		for _, invoice := range invoices {
			payments, err := s.payments.ListByInvoice(gctx, invoice.InvoiceID)
			if err != nil {
				return err
			}
			enriched = append(enriched, billingdomain.InvoiceDetail{
				Invoice:     invoice,
				Payments:    payments,
				Outstanding: billingdomain.Outstanding(invoice.Amount, payments),
			})
		}
		detail.Invoices = enriched
		return nil
	})

	g.Go(func() error {
		incidents, err := s.repo.ListIncidents(gctx, subscriptionID)
		if err != nil {
			return err
		}
		if incidents != nil {
			detail.ServiceIncidents = incidents
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Detail{}, err
	}
	return detail, nil
}

// Update merges the supplied fields over the current document and replaces
// it in full. There is no compare-and-swap: two concurrent updates to the
// same subscription are last-write-wins on the whole document.
func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (domain.UpdateResult, error) {
	subscription, err := s.repo.FindByID(ctx, req.SubscriptionID)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if subscription == nil {
		return domain.UpdateResult{}, domain.ErrNotFound
	}

	var updated []string
	if req.Status != nil {
		subscription.Status = *req.Status
		updated = append(updated, "status")
	}
	if req.ServiceStatus != nil {
		subscription.ServiceStatus = *req.ServiceStatus
		updated = append(updated, "service_status")
	}
	if req.EndDate != nil {
		subscription.EndDate = *req.EndDate
		updated = append(updated, "end_date")
	}
	if req.RoamingEnabled != nil {
		subscription.RoamingEnabled = *req.RoamingEnabled
		updated = append(updated, "roaming_enabled")
	}
	if req.AutopayEnabled != nil {
		subscription.AutopayEnabled = *req.AutopayEnabled
		updated = append(updated, "autopay_enabled")
	}
	if req.SpeedTier != nil {
		subscription.SpeedTier = req.SpeedTier
		updated = append(updated, "speed_tier")
	}
	if req.DataCapGB != nil {
		subscription.DataCapGB = req.DataCapGB
		updated = append(updated, "data_cap_gb")
	}

	if len(updated) == 0 {
		return domain.UpdateResult{}, domain.ErrInvalidInput
	}

	if err := s.repo.Replace(ctx, subscription); err != nil {
		return domain.UpdateResult{}, err
	}

	s.log.Info("subscription updated",
		zap.Int64("subscription_id", req.SubscriptionID),
		zap.Strings("fields", updated),
	)
	return domain.UpdateResult{SubscriptionID: req.SubscriptionID, UpdatedFields: updated}, nil
}

func (s *Service) GetUsage(ctx context.Context, req domain.UsageRequest) (domain.UsageResponse, error) {
	if req.StartDate == "" || req.EndDate == "" {
		return domain.UsageResponse{}, domain.ErrInvalidInput
	}

	records, err := s.repo.ListUsage(ctx, req.SubscriptionID, req.StartDate, req.EndDate)
	if err != nil {
		return domain.UsageResponse{}, err
	}

	if !req.Aggregate {
		return domain.UsageResponse{Records: records}, nil
	}

	totals := domain.UsageTotals{
		SubscriptionID: req.SubscriptionID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
	for _, r := range records {
		totals.TotalMB += r.DataUsedMB
		totals.TotalVoiceMinutes += r.VoiceMinutes
		totals.TotalSMS += r.SMSCount
	}
	return domain.UsageResponse{Totals: &totals}, nil
}
