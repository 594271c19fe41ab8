// Package domain contains the customer models and the customer-centric
// composite views.
package domain

import (
	"context"
	"errors"

	subscriptiondomain "github.com/meridianmobile/careline/internal/subscription/domain"
)

// UnknownProductName stands in when an order references a product that no
// longer exists; the lookup degrades instead of failing the listing.
const UnknownProductName = "Unknown"

// Customer is an account holder. Loyalty level is one of Bronze, Silver
// or Gold and drives promotion eligibility.
type Customer struct {
	DocID        string `json:"id"`
	CustomerID   int64  `json:"customer_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	LoyaltyLevel string `json:"loyalty_level"`
}

// Summary is the projected listing row.
type Summary struct {
	CustomerID   int64  `json:"customer_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	LoyaltyLevel string `json:"loyalty_level"`
}

// Detail is a customer with their subscriptions attached.
type Detail struct {
	Customer
	Subscriptions []subscriptiondomain.Subscription `json:"subscriptions"`
}

// Order is a one-off purchase by a customer.
type Order struct {
	OrderID     int64   `json:"order_id"`
	CustomerID  int64   `json:"customer_id"`
	ProductID   int64   `json:"product_id"`
	OrderDate   string  `json:"order_date"`
	Amount      float64 `json:"amount"`
	OrderStatus string  `json:"order_status"`
}

// OrderView is an order with the product name resolved for display.
type OrderView struct {
	OrderID     int64   `json:"order_id"`
	OrderDate   string  `json:"order_date"`
	ProductName string  `json:"product_name"`
	Amount      float64 `json:"amount"`
	OrderStatus string  `json:"order_status"`
}

var ErrNotFound = errors.New("customer not found")

// Repository reads the Customers container.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	FindByID(ctx context.Context, customerID int64) (*Customer, error)
}

// OrderRepository reads the Orders container.
type OrderRepository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]Order, error)
}

// Service exposes the customer operations.
type Service interface {
	List(ctx context.Context) ([]Summary, error)
	GetDetail(ctx context.Context, customerID int64) (Detail, error)
	ListOrders(ctx context.Context, customerID int64) ([]OrderView, error)
}
