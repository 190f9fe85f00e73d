package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loginascustomer/internal/services/ulid"
)

type Service struct {
	repo   Repository
	ids    *ulid.Service
	config Config
	now    func() time.Time
}

func NewService(repo Repository, config Config) (*Service, error) {
	if len(config.SecretKey) < 16 {
		return nil, ErrInvalidSecretKey
	}

	defaults := DefaultConfig()
	if config.Expiration <= 0 {
		config.Expiration = defaults.Expiration
	}
	if config.SecretLength <= 0 {
		config.SecretLength = defaults.SecretLength
	}

	return &Service{
		repo:   repo,
		ids:    ulid.New(),
		config: config,
		now:    time.Now,
	}, nil
}

// Save persists data under a freshly generated secret and returns the secret.
func (s *Service) Save(ctx context.Context, data AuthenticationData) (string, error) {
	if data.CustomerID <= 0 || data.AdminID <= 0 {
		return "", ErrInvalidToken
	}

	secret, err := generateSecret(s.config.SecretLength)
	if err != nil {
		return "", err
	}

	token := StoredToken{
		AuthenticationData: AuthenticationData{
			ID:         s.ids.Generate(),
			CustomerID: data.CustomerID,
			AdminID:    data.AdminID,
			CreatedAt:  s.now().UTC(),
		},
		SecretHash: s.hashSecret(secret),
	}

	if err := s.repo.Create(ctx, token); err != nil {
		return "", fmt.Errorf("failed to save authentication data for admin %d: %w", data.AdminID, err)
	}

	return secret, nil
}

// DeleteForAdmin removes every pending secret issued to adminID.
func (s *Service) DeleteForAdmin(ctx context.Context, adminID int64) error {
	if _, err := s.repo.DeleteForAdmin(ctx, adminID); err != nil {
		return fmt.Errorf("failed to delete authentication data for admin %d: %w", adminID, err)
	}
	return nil
}

// GetBySecret looks up the data behind a secret that has not yet expired.
func (s *Service) GetBySecret(ctx context.Context, secret string) (AuthenticationData, error) {
	if secret == "" {
		return AuthenticationData{}, ErrTokenNotFound
	}

	token, err := s.repo.GetBySecretHash(ctx, s.hashSecret(secret))
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return AuthenticationData{}, ErrTokenNotFound
		}
		return AuthenticationData{}, fmt.Errorf("failed to get authentication data: %w", err)
	}

	if !token.CreatedAt.After(s.expiryCutoff()) {
		return AuthenticationData{}, ErrTokenExpired
	}

	return token.AuthenticationData, nil
}

// PurgeExpired deletes secrets older than the configured expiration.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteCreatedBefore(ctx, s.expiryCutoff())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired authentication data: %w", err)
	}
	return deleted, nil
}

func (s *Service) expiryCutoff() time.Time {
	return s.now().UTC().Add(-s.config.Expiration)
}
