// Package analytics records audit events for admin impersonation in PostHog.
//
// Without a project key the service degrades to a no-op, so environments
// without analytics behave exactly like production minus the events.
package analytics

import "time"

// EventLoginAsCustomer is captured each time an admin is issued an impersonation secret.
const EventLoginAsCustomer = "login as customer"

// LoginAsCustomerEvent describes a single issued impersonation.
type LoginAsCustomerEvent struct {
	AdminID    int64     `json:"adminId"`
	CustomerID int64     `json:"customerId"`
	StoreID    int64     `json:"storeId"`
	IssuedAt   time.Time `json:"issuedAt"`
}

// Config represents the analytics service configuration.
type Config struct {
	PostHogProjectKey string
	PostHogHost       string
}

// DefaultConfig returns the default analytics configuration.
func DefaultConfig() *Config {
	return &Config{
		PostHogHost: "https://app.posthog.com",
	}
}
