// Package ulid generates lowercase ULIDs used as row identifiers for issued tokens.
//
// IDs from one Service are strictly increasing, even within a millisecond, so rows
// sort by issue order. Entropy comes from crypto/rand.
package ulid

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Service provides goroutine-safe monotonic ULID generation.
type Service struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

func New() *Service {
	return &Service{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Generate returns a 26-character lowercase ULID.
func (s *Service) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(s.now()), s.entropy)
	return strings.ToLower(id.String())
}

// Time extracts the millisecond timestamp encoded in id.
func Time(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(strings.ToUpper(id))
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
