package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/talentbridge/platform-api/internal/core/domain"
	"github.com/talentbridge/platform-api/internal/core/ports"
)

// dummyHasher is implemented by hashers that can supply a throwaway hash
// for equalising login latency on unknown emails.
type dummyHasher interface {
	DummyHash() string
}

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, issuer: issuer, log: log}
}

// Register creates a user and returns a token for it. Role defaults to
// candidate; anything outside the closed role set is rejected.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	email := domain.NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return "", nil, domain.ErrInvalidInput
	}

	role := domain.DefaultRole
	if in.Role != "" {
		r, err := domain.ParseRole(in.Role)
		if err != nil {
			return "", nil, err
		}
		role = r
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, fmt.Errorf("register: lookup: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", nil, fmt.Errorf("register: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("register: create: %w", err)
	}

	token, err := s.issuer.Issue(created)
	if err != nil {
		return "", nil, fmt.Errorf("register: %w", err)
	}

	s.log.Debug().Str("user_id", created.ID).Str("role", string(role)).Msg("user registered")
	return token, created.Public(), nil
}

// Login verifies credentials and returns a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			if d, ok := s.hasher.(dummyHasher); ok {
				s.hasher.Verify(password, d.DummyHash())
			}
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: lookup: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	return token, user.Public(), nil
}
