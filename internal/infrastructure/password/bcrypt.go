// Package password hashes and verifies user secrets with bcrypt.
package password

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/talentbridge/platform-api/internal/api/metrics"
	"github.com/talentbridge/platform-api/internal/core/domain"
)

// DefaultCost matches the cost the platform has always hashed with.
const DefaultCost = 10

// dummySecret is hashed once so unknown-email logins still pay for a compare.
const dummySecret = "talentbridge-dummy-secret"

// BcryptHasher implements ports.PasswordHasher. It holds no mutable state
// and is safe for concurrent use.
type BcryptHasher struct {
	cost      int
	dummyHash string
}

// NewBcryptHasher returns a hasher using cost, or DefaultCost when cost is
// zero. Costs outside bcrypt's accepted range are rejected.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("password: cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	h := &BcryptHasher{cost: cost}
	dummy, err := h.Hash(dummySecret)
	if err != nil {
		return nil, err
	}
	h.dummyHash = dummy
	return h, nil
}

// MaxSecretBytes is the longest secret bcrypt accepts.
const MaxSecretBytes = 72

// Hash returns a salted bcrypt hash of secret. Every call draws a fresh
// salt, so hashing the same secret twice yields different artifacts.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	start := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password must be at most %d bytes: %w", domain.ErrInvalidInput, MaxSecretBytes, err)
		}
		// Remaining failures come from the salt source.
		return "", fmt.Errorf("password: hash: %w: %v", domain.ErrUnrecoverable, err)
	}
	return string(hash), nil
}

// Verify reports whether secret matches storedHash. The comparison is
// constant time; a malformed hash is simply a mismatch.
func (h *BcryptHasher) Verify(secret, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret)) == nil
}

// DummyHash is a valid hash of a secret no user can know.
func (h *BcryptHasher) DummyHash() string {
	return h.dummyHash
}

// Cost returns the configured work factor.
func (h *BcryptHasher) Cost() int {
	return h.cost
}
