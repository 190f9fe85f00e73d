package workerqueue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivertype"
)

// Manager manages the River Queue client and workers lifecycle
type Manager struct {
	riverClient *river.Client[pgx.Tx]
	migrations  *MigrationManager
	config      Config
	logger      *slog.Logger
}

// NewManager wires the purge worker and its periodic schedule into a River client.
func NewManager(config Config, dbPool *pgxpool.Pool, purger Purger, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if purger == nil {
		return nil, errors.New("purger is required")
	}
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultConfig().MaxWorkers
	}
	if config.PurgeInterval <= 0 {
		config.PurgeInterval = DefaultConfig().PurgeInterval
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewPurgeExpiredTokensWorker(purger, logger))

	riverConfig := &river.Config{
		Logger: logger,
		Queues: map[string]river.QueueConfig{
			string(QueueMaintenance): {
				MaxWorkers: config.MaxWorkers,
			},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(config.PurgeInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return PurgeExpiredTokensArgs{Reason: "periodic"}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		JobTimeout:        config.JobTimeout,
		FetchPollInterval: config.FetchPollInterval,
		Schema:            config.Schema,
		TestOnly:          config.TestMode,
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), riverConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create river client: %w", err)
	}

	return &Manager{
		riverClient: riverClient,
		migrations:  NewMigrationManager(dbPool, logger),
		config:      config,
		logger:      logger,
	}, nil
}

// Start ensures the River tables exist and begins processing jobs.
func (m *Manager) Start(ctx context.Context) error {
	if err := m.migrations.EnsureRiverTables(ctx); err != nil {
		return err
	}

	m.logger.Info("Starting worker manager",
		"max_workers", m.config.MaxWorkers,
		"purge_interval", m.config.PurgeInterval.String(),
	)

	if err := m.riverClient.Start(ctx); err != nil {
		return fmt.Errorf("failed to start river client: %w", err)
	}

	m.logger.Info("Worker manager started successfully")
	return nil
}

// Stop gracefully stops the worker manager
func (m *Manager) Stop(ctx context.Context) error {
	m.logger.Info("Stopping worker manager")

	if err := m.riverClient.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop river client: %w", err)
	}

	m.logger.Info("Worker manager stopped successfully")
	return nil
}

// EnqueuePurge schedules an immediate purge outside the periodic cadence.
func (m *Manager) EnqueuePurge(ctx context.Context, reason string) (*rivertype.JobInsertResult, error) {
	result, err := m.riverClient.Insert(ctx, PurgeExpiredTokensArgs{Reason: reason}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue token purge: %w", err)
	}
	return result, nil
}
