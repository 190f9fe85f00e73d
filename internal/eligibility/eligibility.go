// Package eligibility decides whether an admin may log in as a given customer.
package eligibility

import (
	"context"
	"fmt"
)

const (
	MessageDisabled             = "Login as Customer is disabled."
	MessageAssistanceNotAllowed = `The user has not enabled the "Allow remote shopping assistance" functionality. Contact the customer to discuss this user configuration.`
)

// Result carries the decision and, when denied, the reasons to show the admin.
type Result struct {
	Enabled  bool
	Messages []string
}

// AssistanceLookup reports a customer's remote shopping assistance consent.
type AssistanceLookup interface {
	IsAssistanceAllowed(ctx context.Context, customerID int64) (bool, error)
}

type Checker struct {
	enabled    bool
	assistance AssistanceLookup
}

// NewChecker builds a checker. enabled is the module-wide switch.
func NewChecker(enabled bool, assistance AssistanceLookup) *Checker {
	return &Checker{
		enabled:    enabled,
		assistance: assistance,
	}
}

// Check runs every rule and collects the reasons of those that deny.
func (c *Checker) Check(ctx context.Context, customerID int64) (Result, error) {
	var messages []string

	if !c.enabled {
		messages = append(messages, MessageDisabled)
	}

	allowed, err := c.assistance.IsAssistanceAllowed(ctx, customerID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to check assistance consent: %w", err)
	}
	if !allowed {
		messages = append(messages, MessageAssistanceNotAllowed)
	}

	return Result{
		Enabled:  len(messages) == 0,
		Messages: messages,
	}, nil
}
