package tokenstore

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateSecret returns n characters drawn uniformly from secretAlphabet.
func generateSecret(n int) (string, error) {
	// Largest multiple of the alphabet size that fits in a byte; bytes above it are
	// rejected so every character is equally likely.
	limit := byte(256 - 256%len(secretAlphabet))

	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, secretAlphabet[int(b)%len(secretAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}

// hashSecret derives the value stored for secret.
func (s *Service) hashSecret(secret string) string {
	h := hmac.New(sha256.New, s.config.SecretKey)
	h.Write([]byte(secret))
	return hex.EncodeToString(h.Sum(nil))
}
