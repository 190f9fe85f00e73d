package workerqueue

import (
	"time"

	"github.com/riverqueue/river"
)

// PurgeExpiredTokensArgs removes impersonation tokens past their expiration.
type PurgeExpiredTokensArgs struct {
	// Reason is informational, e.g. "periodic" or "manual"
	Reason string `json:"reason,omitempty"`
}

// Kind returns the unique identifier for this job type
func (PurgeExpiredTokensArgs) Kind() string {
	return "purge_expired_login_as_customer_tokens"
}

// InsertOpts keeps at most one purge per minute regardless of who enqueued it.
func (PurgeExpiredTokensArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       string(QueueMaintenance),
		Priority:    int(PriorityLow),
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Minute,
		},
	}
}
