package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/talentbridge/platform-api/internal/core/domain"
	"github.com/talentbridge/platform-api/internal/core/ports"
)

// UserService exposes admin operations on identities.
type UserService struct {
	repo ports.AuthRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.AuthRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Get returns the active user with id, without its password hash.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u.Public(), nil
}

// Deactivate soft-deletes the user. Tokens already issued to it stop
// authenticating on their next request, because the gate re-reads the
// store every time.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("deactivate user: %w", err)
	}
	s.log.Info().Str("user_id", id).Msg("user deactivated")
	return nil
}
