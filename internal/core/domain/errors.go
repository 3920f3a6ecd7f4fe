package domain

import (
	"errors"
	"fmt"
)

// Authentication failures. Both surface as 401 with an opaque message.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrMissingToken    = fmt.Errorf("%w: no token provided", ErrUnauthenticated)
	ErrInvalidToken    = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
)

var (
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)

// ErrUnrecoverable marks misconfiguration or entropy failures. Seeing it at
// boot halts the process; at request time it is a 500.
var ErrUnrecoverable = errors.New("unrecoverable")
