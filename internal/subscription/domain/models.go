// Package domain contains subscription models and the composite
// subscription views stitched together from several containers.
package domain

import (
	"context"
	"errors"

	billingdomain "github.com/meridianmobile/careline/internal/billing/domain"
)

// Subscription ties a customer to a product. roaming_enabled and
// autopay_enabled are stored as 0/1 integers in the source documents.
type Subscription struct {
	DocID          string  `json:"id"`
	SubscriptionID int64   `json:"subscription_id"`
	CustomerID     int64   `json:"customer_id"`
	ProductID      int64   `json:"product_id"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Status         string  `json:"status"`
	RoamingEnabled int     `json:"roaming_enabled"`
	ServiceStatus  string  `json:"service_status"`
	SpeedTier      *string `json:"speed_tier"`
	DataCapGB      *int    `json:"data_cap_gb"`
	AutopayEnabled int     `json:"autopay_enabled"`
}

// ServiceIncident is an outage or degradation recorded against a
// subscription. Append-only.
type ServiceIncident struct {
	IncidentID       int64  `json:"incident_id"`
	IncidentDate     string `json:"incident_date"`
	Description      string `json:"description"`
	ResolutionStatus string `json:"resolution_status"`
}

// DataUsage is one day of metered usage for a subscription.
type DataUsage struct {
	UsageDate    string `json:"usage_date"`
	DataUsedMB   int64  `json:"data_used_mb"`
	VoiceMinutes int64  `json:"voice_minutes"`
	SMSCount     int64  `json:"sms_count"`
}

// UsageTotals aggregates a usage window.
type UsageTotals struct {
	SubscriptionID    int64  `json:"subscription_id"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	TotalMB           int64  `json:"total_mb"`
	TotalVoiceMinutes int64  `json:"total_voice_minutes"`
	TotalSMS          int64  `json:"total_sms"`
}

// Detail is the composite subscription view: the subscription document,
// selected product fields, every invoice enriched with payments and
// outstanding balance, and the subscription's service incidents. A missing
// product leaves the enrichment fields empty without failing the view.
type Detail struct {
	Subscription
	ProductName        string                        `json:"product_name,omitempty"`
	ProductDescription string                        `json:"product_description,omitempty"`
	Category           string                        `json:"category,omitempty"`
	MonthlyFee         float64                       `json:"monthly_fee,omitempty"`
	Invoices           []billingdomain.InvoiceDetail `json:"invoices"`
	ServiceIncidents   []ServiceIncident             `json:"service_incidents"`
}

// UpdateRequest carries the fields a caller may patch. Nil means "leave
// unchanged"; at least one field must be set.
type UpdateRequest struct {
	SubscriptionID int64
	Status         *string
	ServiceStatus  *string
	EndDate        *string
	RoamingEnabled *int
	AutopayEnabled *int
	SpeedTier      *string
	DataCapGB      *int
}

// UpdateResult reports which fields a patch touched.
type UpdateResult struct {
	SubscriptionID int64    `json:"subscription_id"`
	UpdatedFields  []string `json:"updated_fields"`
}

// UsageRequest selects a usage window for a subscription.
type UsageRequest struct {
	SubscriptionID int64
	StartDate      string
	EndDate        string
	Aggregate      bool
}

// UsageResponse returns either the raw rows or their aggregate.
type UsageResponse struct {
	Records []DataUsage  `json:"records,omitempty"`
	Totals  *UsageTotals `json:"totals,omitempty"`
}

var (
	ErrNotFound     = errors.New("subscription not found")
	ErrInvalidInput = errors.New("no fields to update")
)

// Repository reads and replaces the subscription-partitioned containers.
type Repository interface {
	FindByID(ctx context.Context, subscriptionID int64) (*Subscription, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Subscription, error)
	Replace(ctx context.Context, subscription *Subscription) error
	ListIncidents(ctx context.Context, subscriptionID int64) ([]ServiceIncident, error)
	ListUsage(ctx context.Context, subscriptionID int64, startDate, endDate string) ([]DataUsage, error)
}

// Service exposes the subscription operations.
type Service interface {
	GetDetail(ctx context.Context, subscriptionID int64) (Detail, error)
	Update(ctx context.Context, req UpdateRequest) (UpdateResult, error)
	GetUsage(ctx context.Context, req UsageRequest) (UsageResponse, error)
}
