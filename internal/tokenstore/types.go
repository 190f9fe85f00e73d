// Package tokenstore issues and stores the one-time secrets an admin uses to open a
// storefront session as a customer.
//
// Only an HMAC of each secret is persisted. An admin holds at most one pending
// secret: issuing a new one is preceded by DeleteForAdmin.
package tokenstore

import (
	"errors"
	"time"
)

var (
	ErrInvalidSecretKey = errors.New("secret key must be at least 16 bytes")
	ErrTokenNotFound    = errors.New("authentication data not found")
	ErrTokenExpired     = errors.New("authentication data expired")
	ErrInvalidToken     = errors.New("customer ID and admin ID are required")
)

// AuthenticationData binds a customer to the admin allowed to log in as them.
type AuthenticationData struct {
	ID         string
	CustomerID int64
	AdminID    int64
	CreatedAt  time.Time
}

type Config struct {
	// SecretKey keys the HMAC stored in place of the secret (required, >= 16 bytes).
	SecretKey []byte

	// Expiration is how long an issued secret stays redeemable (default: 60s).
	Expiration time.Duration

	// SecretLength is the number of characters in a generated secret (default: 64).
	SecretLength int
}

func DefaultConfig() Config {
	return Config{
		Expiration:   60 * time.Second,
		SecretLength: 64,
	}
}
