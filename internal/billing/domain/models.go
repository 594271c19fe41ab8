// Package domain contains the billing models and the outstanding-balance
// derivation. Balances are never persisted: they are recomputed from the
// payment ledger on every read so they cannot drift from it.
package domain

import (
	"context"
	"errors"
)

// Payment statuses as written by the billing processor. Only successful
// payments deduct from an invoice; partial and failed payments are kept
// for display.
const PaymentStatusSuccessful = "successful"

// Invoice is a billing charge raised against a subscription.
type Invoice struct {
	DocID          string  `json:"id"`
	InvoiceID      int64   `json:"invoice_id"`
	SubscriptionID int64   `json:"subscription_id"`
	InvoiceDate    string  `json:"invoice_date"`
	Amount         float64 `json:"amount"`
	Description    string  `json:"description"`
	DueDate        string  `json:"due_date"`
}

// Payment is one ledger entry against an invoice. Append-only.
type Payment struct {
	DocID       string  `json:"id"`
	PaymentID   int64   `json:"payment_id"`
	InvoiceID   int64   `json:"invoice_id"`
	PaymentDate string  `json:"payment_date"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Status      string  `json:"status"`
}

// InvoiceDetail is an invoice enriched with its payments and the derived
// outstanding balance.
type InvoiceDetail struct {
	Invoice
	Payments    []Payment `json:"payments"`
	Outstanding float64   `json:"outstanding"`
}

// InvoiceBalance is the per-invoice line of a billing summary.
type InvoiceBalance struct {
	InvoiceID   int64   `json:"invoice_id"`
	Outstanding float64 `json:"outstanding"`
}

// BillingSummary is the customer-level rollup of everything still owed.
type BillingSummary struct {
	CustomerID int64            `json:"customer_id"`
	TotalDue   float64          `json:"total_due"`
	Invoices   []InvoiceBalance `json:"invoices"`
}

// PayInvoiceRequest records a payment against an invoice.
type PayInvoiceRequest struct {
	InvoiceID int64
	Amount    float64
	Method    string
}

// PaymentResult reports the ledger entry created and the balance that
// remains after it.
type PaymentResult struct {
	InvoiceID   int64   `json:"invoice_id"`
	PaymentID   int64   `json:"payment_id"`
	Outstanding float64 `json:"outstanding"`
}

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvalidInput    = errors.New("invalid payment request")
)

// InvoiceRepository reads the Invoices container.
type InvoiceRepository interface {
	FindByID(ctx context.Context, invoiceID int64) (*Invoice, error)
	ListBySubscription(ctx context.Context, subscriptionID int64) ([]Invoice, error)
}

// PaymentRepository reads and appends to the Payments container.
type PaymentRepository interface {
	ListByInvoice(ctx context.Context, invoiceID int64) ([]Payment, error)
	Create(ctx context.Context, payment *Payment) error
}

// SubscriptionIDSource yields the subscription ids owned by a customer.
// Billing only needs the ids, not the subscription documents.
type SubscriptionIDSource interface {
	ListIDsByCustomer(ctx context.Context, customerID int64) ([]int64, error)
}

// Service exposes the billing operations.
type Service interface {
	BillingSummary(ctx context.Context, customerID int64) (BillingSummary, error)
	InvoicePayments(ctx context.Context, invoiceID int64) ([]Payment, error)
	PayInvoice(ctx context.Context, req PayInvoiceRequest) (PaymentResult, error)
}
