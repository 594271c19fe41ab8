package service

import (
	"context"
	"strings"

	"github.com/meridianmobile/careline/internal/billing/domain"
	"github.com/meridianmobile/careline/internal/clock"
	"github.com/meridianmobile/careline/internal/idgen"
	"github.com/meridianmobile/careline/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const defaultPaymentMethod = "credit_card"

type Params struct {
	fx.In

	Log           *zap.Logger
	Clock         clock.Clock
	Seq           idgen.Sequence
	Invoices      domain.InvoiceRepository
	Payments      domain.PaymentRepository
	Subscriptions domain.SubscriptionIDSource
}

type Service struct {
	log           *zap.Logger
	clock         clock.Clock
	seq           idgen.Sequence
	invoices      domain.InvoiceRepository
	payments      domain.PaymentRepository
	subscriptions domain.SubscriptionIDSource
}

func New(p Params) domain.Service {
	return &Service{
		log:           p.Log.Named("billing.service"),
		clock:         p.Clock,
		seq:           p.Seq,
		invoices:      p.Invoices,
		payments:      p.Payments,
		subscriptions: p.Subscriptions,
	}
}

// BillingSummary walks every invoice of every subscription the customer
// owns and sums the derived outstanding balances. This is a nested-loop
// join, batched to one invoice range query per subscription; at tens of
// invoices per customer the round-trip count is acceptable.
func (s *Service) BillingSummary(ctx context.Context, customerID int64) (domain.BillingSummary, error) {
	summary := domain.BillingSummary{CustomerID: customerID, Invoices: []domain.InvoiceBalance{}}

	subscriptionIDs, err := s.subscriptions.ListIDsByCustomer(ctx, customerID)
	if err != nil {
		return domain.BillingSummary{}, err
	}
	if len(subscriptionIDs) == 0 {
		return summary, nil
	}

	for _, subscriptionID := range subscriptionIDs {
		invoices, err := s.invoices.ListBySubscription(ctx, subscriptionID)
		if err != nil {
			return domain.BillingSummary{}, err
		}
		for _, invoice := range invoices {
			payments, err := s.payments.ListByInvoice(ctx, invoice.InvoiceID)
			if err != nil {
				return domain.BillingSummary{}, err
			}
			outstanding := domain.Outstanding(invoice.Amount, payments)
			summary.Invoices = append(summary.Invoices, domain.InvoiceBalance{
				InvoiceID:   invoice.InvoiceID,
				Outstanding: outstanding,
			})
			summary.TotalDue += outstanding
		}
	}

	return summary, nil
}

func (s *Service) InvoicePayments(ctx context.Context, invoiceID int64) ([]domain.Payment, error) {
	return s.payments.ListByInvoice(ctx, invoiceID)
}

// PayInvoice appends a successful payment to the ledger and returns the
// balance remaining afterwards. There is no idempotency key: retrying
// after a timeout records a second payment.
func (s *Service) PayInvoice(ctx context.Context, req domain.PayInvoiceRequest) (domain.PaymentResult, error) {
	if req.Amount <= 0 {
		return domain.PaymentResult{}, domain.ErrInvalidInput
	}

	invoice, err := s.invoices.FindByID(ctx, req.InvoiceID)
	if err != nil {
		return domain.PaymentResult{}, err
	}
	if invoice == nil {
		return domain.PaymentResult{}, domain.ErrInvoiceNotFound
	}

	existing, err := s.payments.ListByInvoice(ctx, req.InvoiceID)
	if err != nil {
		return domain.PaymentResult{}, err
	}

	paymentID, err := s.seq.NextID(ctx, store.ContainerPayments, "payment_id")
	if err != nil {
		return domain.PaymentResult{}, err
	}

	method := strings.TrimSpace(req.Method)
	if method == "" {
		method = defaultPaymentMethod
	}

	payment := domain.Payment{
		PaymentID:   paymentID,
		InvoiceID:   req.InvoiceID,
		PaymentDate: s.clock.Now().Format("2006-01-02"),
		Amount:      req.Amount,
		Method:      method,
		Status:      domain.PaymentStatusSuccessful,
	}
	if err := s.payments.Create(ctx, &payment); err != nil {
		return domain.PaymentResult{}, err
	}

	s.log.Info("payment recorded",
		zap.Int64("invoice_id", req.InvoiceID),
		zap.Int64("payment_id", paymentID),
		zap.Float64("amount", req.Amount),
	)

	return domain.PaymentResult{
		InvoiceID:   req.InvoiceID,
		PaymentID:   paymentID,
		Outstanding: domain.Outstanding(invoice.Amount, append(existing, payment)),
	}, nil
}
