package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(string(r))
		if err != nil || got != r {
			t.Fatalf("ParseRole(%q) = %q, %v", r, got, err)
		}
	}

	for _, s := range []string{"", "Admin", "recruiter", " employer"} {
		if _, err := ParseRole(s); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("ParseRole(%q): expected ErrInvalidRole, got %v", s, err)
		}
	}
}

func TestAuthErrorsShareParent(t *testing.T) {
	if !errors.Is(ErrMissingToken, ErrUnauthenticated) || !errors.Is(ErrInvalidToken, ErrUnauthenticated) {
		t.Fatalf("token errors must wrap ErrUnauthenticated")
	}
	if errors.Is(ErrForbidden, ErrUnauthenticated) {
		t.Fatalf("ErrForbidden must stay distinct from authentication failures")
	}
}

func TestUser_PublicAndActive(t *testing.T) {
	u := &User{ID: "1", PasswordHash: "$2a$10$abc"}
	pub := u.Public()
	if pub.PasswordHash != "" {
		t.Fatalf("Public must clear the hash")
	}
	if u.PasswordHash == "" {
		t.Fatalf("Public must not mutate the receiver")
	}

	if !u.Active() {
		t.Fatalf("expected active user")
	}
	now := time.Now()
	u.DeletedAt = &now
	if u.Active() {
		t.Fatalf("expected soft-deleted user to be inactive")
	}

	var nilUser *User
	if nilUser.Active() || nilUser.Public() != nil {
		t.Fatalf("nil user must be inactive and render as nil")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ana@Example.COM "); got != "ana@example.com" {
		t.Fatalf("unexpected normalisation: %q", got)
	}
}
