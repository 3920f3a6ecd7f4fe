package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

// Failure kinds. All wrap domain.ErrInvalidToken; callers outside this
// package should only ever branch on that.
var (
	ErrMalformed = fmt.Errorf("%w: malformed", domain.ErrInvalidToken)
	ErrSignature = fmt.Errorf("%w: signature mismatch", domain.ErrInvalidToken)
	ErrExpired   = fmt.Errorf("%w: expired", domain.ErrInvalidToken)
)

// Verifier validates tokens produced by an Issuer sharing the same key.
type Verifier struct {
	key    *SigningKey
	parser *jwt.Parser
}

// NewVerifier returns a Verifier checking signatures against key.
func NewVerifier(key *SigningKey, opts ...Option) *Verifier {
	o := buildOptions(opts)
	return &Verifier{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(o.leeway),
			jwt.WithTimeFunc(o.now),
		),
	}
}

// Verify checks the signature, then expiry, and returns the claims.
func (v *Verifier) Verify(tokenString string) (*domain.TokenClaims, error) {
	var c claims
	if _, err := v.parser.ParseWithClaims(tokenString, &c, v.keyFunc); err != nil {
		return nil, classify(err)
	}

	role, err := domain.ParseRole(c.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if c.UserID == "" {
		return nil, fmt.Errorf("%w: missing id claim", ErrMalformed)
	}

	out := &domain.TokenClaims{
		UserID:  c.UserID,
		Email:   c.Email,
		Role:    role,
		TokenID: c.ID,
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}

func (v *Verifier) keyFunc(_ *jwt.Token) (interface{}, error) {
	return v.key.secret, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}

// Kind names the failure class of a Verify error for logs and metrics.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrSignature):
		return "signature"
	default:
		return "malformed"
	}
}
