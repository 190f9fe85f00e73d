package workerqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/riverqueue/river"
)

// Purger deletes expired impersonation tokens and reports how many were removed.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// PurgeExpiredTokensWorker handles token purge jobs
type PurgeExpiredTokensWorker struct {
	river.WorkerDefaults[PurgeExpiredTokensArgs]
	purger Purger
	logger *slog.Logger
}

func NewPurgeExpiredTokensWorker(purger Purger, logger *slog.Logger) *PurgeExpiredTokensWorker {
	if logger == nil {
		logger = slog.Default()
	}

	return &PurgeExpiredTokensWorker{
		purger: purger,
		logger: logger,
	}
}

// Work processes a purge job
func (w *PurgeExpiredTokensWorker) Work(ctx context.Context, job *river.Job[PurgeExpiredTokensArgs]) error {
	w.logger.Info("Processing purge expired tokens job",
		"job_id", job.ID,
		"reason", job.Args.Reason,
		"attempt", job.Attempt,
	)

	deleted, err := w.purger.PurgeExpired(ctx)
	if err != nil {
		w.logger.Error("Token purge failed",
			"job_id", job.ID,
			"error", err.Error(),
			"attempt", job.Attempt,
		)
		return fmt.Errorf("failed to purge expired tokens: %w", err)
	}

	w.logger.Info("Token purge completed",
		"job_id", job.ID,
		"deleted", deleted,
	)
	return nil
}

// Timeout returns the timeout for purge jobs
func (w *PurgeExpiredTokensWorker) Timeout(job *river.Job[PurgeExpiredTokensArgs]) time.Duration {
	return 30 * time.Second
}
