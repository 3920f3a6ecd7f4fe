package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

// Issuer mints signed tokens for users.
type Issuer struct {
	key  *SigningKey
	opts options
}

// NewIssuer returns an Issuer signing with key.
func NewIssuer(key *SigningKey, opts ...Option) *Issuer {
	return &Issuer{key: key, opts: buildOptions(opts)}
}

// Issue signs {id, email, role, iat, exp, jti} for user. The role is
// captured as it is now; later role changes do not affect the token.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("token: issue: user has no id")
	}
	if !user.Role.Valid() {
		return "", fmt.Errorf("token: issue: %w: %q", domain.ErrInvalidRole, user.Role)
	}

	now := i.opts.now()
	c := claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.opts.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.key.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// TTL returns the lifetime applied to issued tokens.
func (i *Issuer) TTL() time.Duration {
	return i.opts.ttl
}
