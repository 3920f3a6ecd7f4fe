package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentbridge/platform-api/internal/core/domain"
	"github.com/talentbridge/platform-api/internal/core/ports"
	"github.com/talentbridge/platform-api/internal/infrastructure/password"
	"github.com/talentbridge/platform-api/internal/infrastructure/token"
)

type stubAuthRepo struct {
	users   map[string]*domain.User // keyed by id
	nextID  int
	findErr error
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email && u.Active() {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = strconv.Itoa(r.nextID)
	copy.CreatedAt = time.Now().UTC()
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok || !u.Active() {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email && u.Active() {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) SoftDelete(_ context.Context, id string) error {
	u, ok := r.users[id]
	if !ok || !u.Active() {
		return domain.ErrUserNotFound
	}
	now := time.Now().UTC()
	u.DeletedAt = &now
	return nil
}

type fixture struct {
	repo     *stubAuthRepo
	svc      *AuthService
	verifier *token.Verifier
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	hasher, err := password.NewBcryptHasher(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hasher: %v", err)
	}
	key, err := token.NewSigningKey("secret")
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	repo := newStubAuthRepo()
	return fixture{
		repo:     repo,
		svc:      NewAuthService(repo, hasher, token.NewIssuer(key), zerolog.Nop()),
		verifier: token.NewVerifier(key),
	}
}

func register(t *testing.T, f fixture, email, pass, role string) *domain.User {
	t.Helper()
	_, u, err := f.svc.Register(context.Background(), ports.RegisterInput{Email: email, Password: pass, Name: "Test User", Role: role})
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return u
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newFixture(t)

	tok, user, err := f.svc.Register(context.Background(), ports.RegisterInput{
		Email: "Test@Example.com", Password: "password123", Name: "Test User",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "test@example.com" {
		t.Fatalf("expected normalised email, got %q", user.Email)
	}
	if user.Role != domain.RoleCandidate {
		t.Fatalf("expected default role candidate, got %s", user.Role)
	}
	if user.PasswordHash != "" {
		t.Fatalf("expected hash to be stripped from returned user")
	}

	stored := f.repo.users[user.ID]
	if stored.PasswordHash == "password123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims, err := f.verifier.Verify(tok)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != "test@example.com" || claims.Role != domain.RoleCandidate {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, _, err := f.svc.Register(ctx, ports.RegisterInput{Password: "pass", Name: "x"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if _, _, err := f.svc.Register(ctx, ports.RegisterInput{Email: "bob@example.com", Password: "pass12", Name: "Bob", Role: "superuser"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole for bad role, got %v", err)
	}
	if len(f.repo.users) != 0 {
		t.Fatalf("no user should be created on validation failure")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	f := newFixture(t)

	register(t, f, "bob@example.com", "pass12", "employer")
	_, _, err := f.svc.Register(context.Background(), ports.RegisterInput{Email: "BOB@example.com", Password: "pass34", Name: "Bob"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newFixture(t)
	registered := register(t, f, "carol@example.com", "s3cret", "admin")

	tok, user, err := f.svc.Login(context.Background(), "Carol@Example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.ID != registered.ID || user.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := f.verifier.Verify(tok)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims.Role)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	f := newFixture(t)
	register(t, f, "dave@example.com", "password123", "")

	if _, _, err := f.svc.Login(context.Background(), "dave@example.com", "wrongpassword"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailLooksLikeBadPassword(t *testing.T) {
	f := newFixture(t)

	if _, _, err := f.svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_DeletedUser(t *testing.T) {
	f := newFixture(t)
	u := register(t, f, "erin@example.com", "password123", "")
	if err := f.repo.SoftDelete(context.Background(), u.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if _, _, err := f.svc.Login(context.Background(), "erin@example.com", "password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for deleted user, got %v", err)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.findErr = errors.New("db down")

	_, _, err := f.svc.Login(context.Background(), "a@b.com", "pass")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}

func TestAuthService_Register_SecretOverByteLimit(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svc.Register(context.Background(), ports.RegisterInput{
		Email: "multi@example.com", Password: strings.Repeat("é", 40), Name: "Test User",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(f.repo.users) != 0 {
		t.Fatalf("no user should be stored")
	}
}
