// Package domain contains the account security event models.
package domain

import (
	"context"
	"errors"
)

// Security event types the engine cares about.
const (
	EventAccountLocked   = "account_locked"
	EventAccountUnlocked = "account_unlocked"
)

// SecurityLog is one security event for a customer. Append-only, ordered
// by event_timestamp.
type SecurityLog struct {
	DocID          string `json:"id"`
	LogID          int64  `json:"log_id"`
	CustomerID     int64  `json:"customer_id"`
	EventType      string `json:"event_type"`
	EventTimestamp string `json:"event_timestamp"`
	Description    string `json:"description"`
}

// LogView is the projected listing row.
type LogView struct {
	LogID          int64  `json:"log_id"`
	EventType      string `json:"event_type"`
	EventTimestamp string `json:"event_timestamp"`
	Description    string `json:"description"`
}

// ErrNothingToUnlock is returned when no account_locked event exists for
// the customer; unlock creates no record in that case.
var ErrNothingToUnlock = errors.New("no lock event to unlock")

// Repository reads and appends to the SecurityLogs container.
type Repository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]LogView, error)
	LatestEvent(ctx context.Context, customerID int64, eventType string) (*SecurityLog, error)
	Create(ctx context.Context, log *SecurityLog) error
}

// UnlockResult confirms the unlock event appended.
type UnlockResult struct {
	CustomerID int64  `json:"customer_id"`
	LogID      int64  `json:"log_id"`
	Message    string `json:"message"`
}

// Service exposes the security operations.
type Service interface {
	Logs(ctx context.Context, customerID int64) ([]LogView, error)
	UnlockAccount(ctx context.Context, customerID int64) (UnlockResult, error)
}
