package impersonation

import (
	"context"

	"loginascustomer/internal/sessionstorage"
)

// Service stores the impersonation state in the admin session attached to the
// request context. The session cookie is written when the caller commits it.
type Service struct{}

var _ Tracker = (*Service)(nil)

func NewService() *Service {
	return &Service{}
}

func (s *Service) SetCustomerID(ctx context.Context, customerID int64) error {
	if customerID <= 0 {
		return ErrInvalidCustomerID
	}

	session, ok := sessionstorage.FromContext(ctx)
	if !ok {
		return ErrNoSession
	}

	session.Values[SessionKey] = customerID
	return nil
}

func (s *Service) GetCustomerID(ctx context.Context) (int64, error) {
	session, ok := sessionstorage.FromContext(ctx)
	if !ok {
		return 0, ErrNoSession
	}

	// A tampered or stale value reads as no impersonation.
	id, ok := session.Values[SessionKey].(int64)
	if !ok || id <= 0 {
		return 0, nil
	}
	return id, nil
}

func (s *Service) Clear(ctx context.Context) error {
	session, ok := sessionstorage.FromContext(ctx)
	if !ok {
		return ErrNoSession
	}

	delete(session.Values, SessionKey)
	return nil
}

func (s *Service) IsImpersonating(ctx context.Context) bool {
	id, err := s.GetCustomerID(ctx)
	return err == nil && id > 0
}
