// Package auth verifies the operator key that gates the team administration
// surface. Teams themselves carry no credentials: possession of an opaque
// team_id is the access token for play.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidKey is returned when the provided operator key does not match.
var ErrInvalidKey = errors.New("invalid operator key")

// ErrNotConfigured is returned when no operator key hash is configured;
// the admin surface is disabled in that case.
var ErrNotConfigured = errors.New("operator key not configured")

// Service verifies operator keys against a configured bcrypt hash.
type Service struct {
	keyHash []byte
}

// NewService creates an auth Service from the configured hash. An empty
// hash disables the admin surface.
func NewService(keyHash string) *Service {
	return &Service{keyHash: []byte(keyHash)}
}

// Enabled reports whether an operator key hash is configured.
func (s *Service) Enabled() bool {
	return len(s.keyHash) > 0
}

// Verify checks a raw operator key against the configured hash.
func (s *Service) Verify(rawKey string) error {
	if !s.Enabled() {
		return ErrNotConfigured
	}
	if bcrypt.CompareHashAndPassword(s.keyHash, []byte(rawKey)) != nil {
		return ErrInvalidKey
	}
	return nil
}

// GenerateKey creates a new operator key and its bcrypt hash. The raw key
// is: 32 random bytes -> base64url -> prepend "enigma_". The raw key is
// only displayed once, at provisioning time.
func GenerateKey(bcryptCost int) (rawKey, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generating random bytes: %w", err)
	}

	rawKey = "enigma_" + base64.RawURLEncoding.EncodeToString(b)

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(rawKey), bcryptCost)
	if err != nil {
		return "", "", fmt.Errorf("hashing key: %w", err)
	}

	return rawKey, string(hashBytes), nil
}
