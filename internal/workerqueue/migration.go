package workerqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
)

// MigrationManager applies River's schema.
type MigrationManager struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewMigrationManager(pool *pgxpool.Pool, logger *slog.Logger) *MigrationManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &MigrationManager{pool: pool, logger: logger}
}

// EnsureRiverTables migrates River up to its latest version.
func (m *MigrationManager) EnsureRiverTables(ctx context.Context) error {
	migrator, err := rivermigrate.New(riverpgxv5.New(m.pool), &rivermigrate.Config{Logger: m.logger})
	if err != nil {
		return fmt.Errorf("river migrator: %w", err)
	}

	result, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{})
	if err != nil {
		return fmt.Errorf("river migrate up: %w", err)
	}

	m.logger.Info("River schema migrated", "applied", len(result.Versions))
	return nil
}
