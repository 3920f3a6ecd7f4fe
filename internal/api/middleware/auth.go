package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/platform-api/internal/api/metrics"
	"github.com/talentbridge/platform-api/internal/core/domain"
	"github.com/talentbridge/platform-api/internal/core/ports"
	"github.com/talentbridge/platform-api/internal/infrastructure/token"
)

// Auth resolves the bearer token to a live user and attaches it to the
// request. Every request re-reads the user from the store, so a deleted
// account stops authenticating even while its tokens are unexpired.
//
// Verification failures and missing users produce the same error so the
// response never reveals whether an account exists.
func Auth(verifier ports.TokenVerifier, users ports.IdentityFinder, audit ports.AuditRecorder) echo.MiddlewareFunc {
	audit = RecorderOrNop(audit)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deny := func(reason string, ev domain.AuditEvent, err error) error {
				metrics.AuthenticationsTotal.WithLabelValues("denied", reason).Inc()
				ev.Reason = reason
				audit.Record(ev)
				return err
			}
			ev := AuditEvent(c, domain.AuditAuthenticate, "denied", "")

			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return deny("no_token", ev, domain.ErrMissingToken)
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				return deny(token.Kind(err), ev, domain.ErrInvalidToken)
			}
			ev.UserID = claims.UserID
			ev.TokenID = claims.TokenID

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return deny("identity_missing", ev, domain.ErrInvalidToken)
				}
				return fmt.Errorf("authenticate: %w", err)
			}
			if !user.Active() {
				return deny("identity_missing", ev, domain.ErrInvalidToken)
			}

			setIdentity(c, user.Public())

			metrics.AuthenticationsTotal.WithLabelValues("success", "").Inc()
			ev.Result = "success"
			audit.Record(ev)

			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}
