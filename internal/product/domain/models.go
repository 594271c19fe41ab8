// Package domain contains the product catalog models.
package domain

import (
	"context"
	"errors"
)

// Product is a catalog entry referenced by subscriptions, orders and
// promotions.
type Product struct {
	DocID       string  `json:"id"`
	ProductID   int64   `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	MonthlyFee  float64 `json:"monthly_fee"`
}

var ErrNotFound = errors.New("product not found")

// Repository reads the Products container.
type Repository interface {
	List(ctx context.Context, category string) ([]Product, error)
	FindByID(ctx context.Context, productID int64) (*Product, error)
}

// Service exposes catalog reads.
type Service interface {
	List(ctx context.Context, category string) ([]Product, error)
	GetByID(ctx context.Context, productID int64) (Product, error)
}
