package ports

import "github.com/talentbridge/platform-api/internal/core/domain"

// PasswordHasher hashes and verifies secrets. Verify never errors: a
// mismatch or malformed hash is false.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, storedHash string) bool
}

// TokenIssuer mints signed bearer tokens.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier validates a bearer token and returns its claims. Every
// failure wraps domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (*domain.TokenClaims, error)
}
