package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

// identityKey is where Auth stores the resolved user on the echo context.
const identityKey = "identity"

type ctxKey struct{}

// WithIdentity returns a copy of ctx carrying user.
func WithIdentity(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// IdentityFromContext returns the user attached by Auth, for code that only
// sees the request context.
func IdentityFromContext(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*domain.User)
	return u, ok && u != nil
}

// Identity returns the user resolved by Auth for this request.
func Identity(c echo.Context) (*domain.User, bool) {
	u, ok := c.Get(identityKey).(*domain.User)
	return u, ok && u != nil
}

// MustIdentity is Identity for code mounted behind Auth. A missing identity
// means the route was wired without authentication, and it panics.
func MustIdentity(c echo.Context) *domain.User {
	u, ok := Identity(c)
	if !ok {
		panic("middleware: no identity on request; RequireRole used without Auth")
	}
	return u
}

func setIdentity(c echo.Context, user *domain.User) {
	c.Set(identityKey, user)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), user)))
}
