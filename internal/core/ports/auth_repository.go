package ports

import (
	"context"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

// AuthRepository is the credential store boundary. Lookups exclude
// soft-deleted users and return domain.ErrUserNotFound when nothing matches.
type AuthRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists user and returns it with ID and CreatedAt populated.
	// Returns domain.ErrUserExists when the email is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// SoftDelete stamps deleted_at. Returns domain.ErrUserNotFound when the
	// user is missing or already deleted.
	SoftDelete(ctx context.Context, id string) error
}

// IdentityFinder is the narrow read the authentication middleware needs.
type IdentityFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
