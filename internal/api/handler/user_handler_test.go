package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

type stubUserService struct {
	getFn        func(ctx context.Context, id string) (*domain.User, error)
	deactivateFn func(ctx context.Context, id string) error
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Deactivate(ctx context.Context, id string) error {
	return s.deactivateFn(ctx, id)
}

func TestUserHandler_Get(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "42" {
				t.Fatalf("unexpected id %q", id)
			}
			return &domain.User{ID: id, Role: domain.RoleEmployer}, nil
		},
	}
	handler := NewUserHandler(stub, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/users/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub, nil)

	c, _ := newJSONContext(http.MethodGet, "/api/users/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	var deactivated string
	stub := &stubUserService{
		deactivateFn: func(ctx context.Context, id string) error {
			deactivated = id
			return nil
		},
	}
	audit := &stubRecorder{}
	handler := NewUserHandler(stub, audit)

	c, rec := newJSONContext(http.MethodDelete, "/api/users/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")
	c.Set("identity", &domain.User{ID: "1", Role: domain.RoleAdmin})

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deactivated != "42" {
		t.Fatalf("expected user 42 deactivated, got %q", deactivated)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditDeactivate || audit.events[0].UserID != "1" {
		t.Fatalf("unexpected audit events: %+v", audit.events)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	stub := &stubUserService{
		deactivateFn: func(ctx context.Context, id string) error { return domain.ErrUserNotFound },
	}
	handler := NewUserHandler(stub, nil)

	c, _ := newJSONContext(http.MethodDelete, "/api/users/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	c.Set("identity", &domain.User{ID: "1", Role: domain.RoleAdmin})

	if err := handler.Delete(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
