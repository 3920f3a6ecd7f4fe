package ports

import (
	"context"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. An empty Role
// means domain.DefaultRole.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserService covers admin-level identity management.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Deactivate(ctx context.Context, id string) error
}
