package impersonation

import (
	"context"
	"errors"
)

// SessionKey is the admin session value holding the impersonated customer ID.
const SessionKey = "logged_as_customer_customer_id"

var (
	ErrInvalidCustomerID = errors.New("customer ID must be positive")
	ErrNoSession         = errors.New("impersonation requires an admin session")
)

// Tracker records which customer the current admin is impersonating.
type Tracker interface {
	// SetCustomerID marks the admin session as impersonating customerID.
	SetCustomerID(ctx context.Context, customerID int64) error

	// GetCustomerID returns the impersonated customer ID, or 0 when none is active.
	GetCustomerID(ctx context.Context) (int64, error)

	// Clear ends the impersonation recorded in the admin session.
	Clear(ctx context.Context) error

	// IsImpersonating reports whether the admin session has an active impersonation.
	IsImpersonating(ctx context.Context) bool
}
