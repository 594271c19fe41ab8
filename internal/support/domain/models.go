// Package domain contains the support ticket models.
package domain

import "context"

// Ticket statuses.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// SupportTicket is a customer-service case, optionally tied to a
// subscription. Append-only from this engine's point of view.
type SupportTicket struct {
	DocID          string  `json:"id"`
	TicketID       int64   `json:"ticket_id"`
	CustomerID     int64   `json:"customer_id"`
	SubscriptionID *int64  `json:"subscription_id"`
	Category       string  `json:"category"`
	OpenedAt       string  `json:"opened_at"`
	ClosedAt       *string `json:"closed_at"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	Subject        string  `json:"subject"`
	Description    string  `json:"description"`
	CSAgent        string  `json:"cs_agent"`
}

// CreateTicketRequest opens a new ticket.
type CreateTicketRequest struct {
	CustomerID     int64
	SubscriptionID *int64
	Category       string
	Priority       string
	Subject        string
	Description    string
}

// Repository reads and appends to the SupportTickets container.
type Repository interface {
	ListByCustomer(ctx context.Context, customerID int64, openOnly bool) ([]SupportTicket, error)
	Create(ctx context.Context, ticket *SupportTicket) error
}

// Service exposes the support operations.
type Service interface {
	List(ctx context.Context, customerID int64, openOnly bool) ([]SupportTicket, error)
	Create(ctx context.Context, req CreateTicketRequest) (SupportTicket, error)
}
