// Package workerqueue runs background maintenance for impersonation tokens on River Queue.
package workerqueue

import (
	"time"
)

// Config contains configuration for the worker system
type Config struct {
	// MaxWorkers is the maximum number of workers for the maintenance queue
	MaxWorkers int

	// PurgeInterval is how often expired impersonation tokens are removed
	PurgeInterval time.Duration

	// JobTimeout is the default timeout for jobs
	JobTimeout time.Duration

	// FetchPollInterval is the interval for polling new jobs
	FetchPollInterval time.Duration

	// Schema is the database schema to use for River tables
	Schema string

	// TestMode indicates if running in test mode
	TestMode bool
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxWorkers:        2,
		PurgeInterval:     time.Hour,
		JobTimeout:        time.Minute,
		FetchPollInterval: time.Second,
		Schema:            "public",
	}
}

// JobQueue names a River queue.
type JobQueue string

const (
	QueueMaintenance JobQueue = "maintenance"
)

// JobPriority represents job priority levels (lower number = higher priority)
type JobPriority int

const (
	PriorityHigh   JobPriority = 1
	PriorityNormal JobPriority = 2
	PriorityLow    JobPriority = 3
)
