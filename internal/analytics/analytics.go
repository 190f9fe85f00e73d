package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/posthog/posthog-go"
)

// enqueuer is the subset of posthog.Client the service needs.
type enqueuer interface {
	Enqueue(posthog.Message) error
	Close() error
}

type BehaviouralAnalytics struct {
	client enqueuer
	config *Config
	logger *slog.Logger
}

// NewBehaviouralAnalytics creates the PostHog backed audit service.
func NewBehaviouralAnalytics(config *Config, logger *slog.Logger) (*BehaviouralAnalytics, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	if config.PostHogProjectKey == "" {
		logger.Info("No PostHog API key, so analytics won't track")
		return &BehaviouralAnalytics{config: config, logger: logger}, nil
	}

	client, err := posthog.NewWithConfig(
		config.PostHogProjectKey,
		posthog.Config{
			Endpoint: config.PostHogHost,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostHog client: %w", err)
	}

	return &BehaviouralAnalytics{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// LoginAsCustomer captures an impersonation audit event, distinct per admin and
// grouped by store.
func (b *BehaviouralAnalytics) LoginAsCustomer(ctx context.Context, event LoginAsCustomerEvent) error {
	if b.client == nil {
		return nil
	}

	properties := posthog.Properties{
		"adminId":    event.AdminID,
		"customerId": event.CustomerID,
		"storeId":    event.StoreID,
	}

	capture := posthog.Capture{
		DistinctId: adminDistinctID(event.AdminID),
		Event:      EventLoginAsCustomer,
		Properties: properties,
		Groups: posthog.Groups{
			"store": strconv.FormatInt(event.StoreID, 10),
		},
	}
	if !event.IssuedAt.IsZero() {
		capture.Timestamp = event.IssuedAt
	}

	if err := b.client.Enqueue(capture); err != nil {
		b.logger.Warn("Failed to capture analytics event",
			"event", EventLoginAsCustomer,
			"adminId", event.AdminID,
			"error", err)
		return fmt.Errorf("failed to capture %q: %w", EventLoginAsCustomer, err)
	}
	return nil
}

// Close flushes pending events.
func (b *BehaviouralAnalytics) Close() error {
	if b.client == nil {
		return nil
	}
	return b.client.Close()
}

func adminDistinctID(adminID int64) string {
	return "admin:" + strconv.FormatInt(adminID, 10)
}
