package service

import (
	"context"
	"testing"
	"time"

	"github.com/meridianmobile/careline/internal/billing/domain"
	"github.com/meridianmobile/careline/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInvoices struct {
	bySubscription map[int64][]domain.Invoice
	byID           map[int64]domain.Invoice
}

func (f *fakeInvoices) FindByID(_ context.Context, id int64) (*domain.Invoice, error) {
	if inv, ok := f.byID[id]; ok {
		return &inv, nil
	}
	return nil, nil
}

func (f *fakeInvoices) ListBySubscription(_ context.Context, subscriptionID int64) ([]domain.Invoice, error) {
	return f.bySubscription[subscriptionID], nil
}

type fakePayments struct {
	byInvoice map[int64][]domain.Payment
	created   []domain.Payment
}

func (f *fakePayments) ListByInvoice(_ context.Context, invoiceID int64) ([]domain.Payment, error) {
	return f.byInvoice[invoiceID], nil
}

func (f *fakePayments) Create(_ context.Context, payment *domain.Payment) error {
	f.created = append(f.created, *payment)
	return nil
}

type fakeSubscriptionIDs struct {
	byCustomer map[int64][]int64
}

func (f *fakeSubscriptionIDs) ListIDsByCustomer(_ context.Context, customerID int64) ([]int64, error) {
	return f.byCustomer[customerID], nil
}

type fakeSequence struct {
	next int64
}

func (f *fakeSequence) NextID(_ context.Context, _, _ string) (int64, error) {
	return f.next, nil
}

func newService(invoices *fakeInvoices, payments *fakePayments, subs *fakeSubscriptionIDs, seq *fakeSequence) domain.Service {
	return New(Params{
		Log:           zap.NewNop(),
		Clock:         clock.NewFakeClock(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)),
		Seq:           seq,
		Invoices:      invoices,
		Payments:      payments,
		Subscriptions: subs,
	})
}

func TestBillingSummaryNoSubscriptions(t *testing.T) {
	svc := newService(
		&fakeInvoices{},
		&fakePayments{},
		&fakeSubscriptionIDs{byCustomer: map[int64][]int64{}},
		&fakeSequence{next: 1},
	)

	summary, err := svc.BillingSummary(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), summary.CustomerID)
	assert.Equal(t, 0.0, summary.TotalDue)
	assert.Empty(t, summary.Invoices)
}

func TestBillingSummarySumsOutstandingAcrossSubscriptions(t *testing.T) {
	invoices := &fakeInvoices{bySubscription: map[int64][]domain.Invoice{
		10: {
			{InvoiceID: 100, SubscriptionID: 10, Amount: 150.0},
			{InvoiceID: 101, SubscriptionID: 10, Amount: 60.0},
		},
		11: {
			{InvoiceID: 102, SubscriptionID: 11, Amount: 80.0},
		},
	}}
	payments := &fakePayments{byInvoice: map[int64][]domain.Payment{
		100: {
			{InvoiceID: 100, Amount: 50.0, Status: domain.PaymentStatusSuccessful},
			{InvoiceID: 100, Amount: 25.0, Status: "partial"},
		},
		101: {
			{InvoiceID: 101, Amount: 60.0, Status: domain.PaymentStatusSuccessful},
		},
	}}
	subs := &fakeSubscriptionIDs{byCustomer: map[int64][]int64{5: {10, 11}}}

	svc := newService(invoices, payments, subs, &fakeSequence{next: 1})

	summary, err := svc.BillingSummary(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 180.0, summary.TotalDue)
	assert.Len(t, summary.Invoices, 3)
	assert.Equal(t, domain.InvoiceBalance{InvoiceID: 100, Outstanding: 100.0}, summary.Invoices[0])
	assert.Equal(t, domain.InvoiceBalance{InvoiceID: 101, Outstanding: 0.0}, summary.Invoices[1])
	assert.Equal(t, domain.InvoiceBalance{InvoiceID: 102, Outstanding: 80.0}, summary.Invoices[2])
}

func TestPayInvoiceNotFound(t *testing.T) {
	svc := newService(
		&fakeInvoices{byID: map[int64]domain.Invoice{}},
		&fakePayments{},
		&fakeSubscriptionIDs{},
		&fakeSequence{next: 1},
	)

	_, err := svc.PayInvoice(context.Background(), domain.PayInvoiceRequest{InvoiceID: 404, Amount: 20.0})
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestPayInvoiceRejectsNonPositiveAmount(t *testing.T) {
	svc := newService(&fakeInvoices{}, &fakePayments{}, &fakeSubscriptionIDs{}, &fakeSequence{next: 1})

	_, err := svc.PayInvoice(context.Background(), domain.PayInvoiceRequest{InvoiceID: 1, Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.PayInvoice(context.Background(), domain.PayInvoiceRequest{InvoiceID: 1, Amount: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPayInvoiceRecordsPaymentAndReturnsNewOutstanding(t *testing.T) {
	invoices := &fakeInvoices{byID: map[int64]domain.Invoice{
		100: {InvoiceID: 100, SubscriptionID: 10, Amount: 150.0},
	}}
	payments := &fakePayments{byInvoice: map[int64][]domain.Payment{
		100: {{InvoiceID: 100, Amount: 50.0, Status: domain.PaymentStatusSuccessful}},
	}}

	svc := newService(invoices, payments, &fakeSubscriptionIDs{}, &fakeSequence{next: 9})

	result, err := svc.PayInvoice(context.Background(), domain.PayInvoiceRequest{
		InvoiceID: 100,
		Amount:    25.0,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), result.InvoiceID)
	assert.Equal(t, int64(9), result.PaymentID)
	assert.Equal(t, 75.0, result.Outstanding)

	require.Len(t, payments.created, 1)
	created := payments.created[0]
	assert.Equal(t, int64(9), created.PaymentID)
	assert.Equal(t, domain.PaymentStatusSuccessful, created.Status)
	assert.Equal(t, "credit_card", created.Method)
	assert.Equal(t, "2024-03-15", created.PaymentDate)
}

func TestPayInvoiceOverpaymentClampsToZero(t *testing.T) {
	invoices := &fakeInvoices{byID: map[int64]domain.Invoice{
		100: {InvoiceID: 100, Amount: 40.0},
	}}
	payments := &fakePayments{byInvoice: map[int64][]domain.Payment{}}

	svc := newService(invoices, payments, &fakeSubscriptionIDs{}, &fakeSequence{next: 1})

	result, err := svc.PayInvoice(context.Background(), domain.PayInvoiceRequest{
		InvoiceID: 100,
		Amount:    90.0,
		Method:    "bank_transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Outstanding)
	assert.Equal(t, "bank_transfer", payments.created[0].Method)
}
