// Package domain contains promotion models and the eligibility rule.
package domain

import "context"

// Promotion is a time-boxed offer on a product. eligibility_criteria is a
// free-text rule maintained by marketing, not a structured predicate.
type Promotion struct {
	DocID               string  `json:"id"`
	PromotionID         int64   `json:"promotion_id"`
	ProductID           int64   `json:"product_id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	EligibilityCriteria string  `json:"eligibility_criteria"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	DiscountPercent     float64 `json:"discount_percent"`
}

// Repository reads the Promotions container.
type Repository interface {
	List(ctx context.Context) ([]Promotion, error)
	// ListActive returns promotions whose date range contains today
	// (start_date <= today <= end_date, both ends inclusive).
	ListActive(ctx context.Context, today string) ([]Promotion, error)
}

// Service exposes the promotion operations.
type Service interface {
	List(ctx context.Context) ([]Promotion, error)
	EligibleForCustomer(ctx context.Context, customerID int64) ([]Promotion, error)
}
