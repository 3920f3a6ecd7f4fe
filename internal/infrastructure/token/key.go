// Package token issues and verifies the platform's HS256 bearer tokens.
//
// A SigningKey is built once at startup from configuration and handed to
// both the Issuer and the Verifier. It is never mutated afterwards, so both
// are safe for concurrent use without locking.
package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// SigningKey holds the process-wide HMAC secret.
type SigningKey struct {
	secret []byte
}

// NewSigningKey copies secret into an immutable key. An empty or
// whitespace-only secret is a fatal misconfiguration.
func NewSigningKey(secret string) (*SigningKey, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("token: signing key is empty: %w", domain.ErrUnrecoverable)
	}
	return &SigningKey{secret: []byte(secret)}, nil
}

type options struct {
	ttl    time.Duration
	leeway time.Duration
	now    func() time.Time
}

// Option tunes an Issuer or Verifier.
type Option func(*options)

// WithTTL overrides DefaultTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithLeeway tolerates clock skew when checking expiry. Zero is strict.
func WithLeeway(leeway time.Duration) Option {
	return func(o *options) {
		if leeway >= 0 {
			o.leeway = leeway
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{ttl: DefaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
