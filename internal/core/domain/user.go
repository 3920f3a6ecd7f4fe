package domain

import (
	"strings"
	"time"
)

// User models an authenticated actor in the system.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Active reports whether the user has not been soft-deleted.
func (u *User) Active() bool {
	return u != nil && u.DeletedAt == nil
}

// Public returns a copy of u with the password hash cleared, suitable for
// attaching to a request or rendering in a response.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// NormalizeEmail lower-cases and trims an email so lookups are
// case-insensitive regardless of the store backend.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
