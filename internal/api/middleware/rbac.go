package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/platform-api/internal/api/metrics"
	"github.com/talentbridge/platform-api/internal/core/domain"
	"github.com/talentbridge/platform-api/internal/core/ports"
)

// RequireRole admits requests whose authenticated user holds one of
// allowedRoles. It must be mounted after Auth. Passing a role outside the
// closed set panics at wiring time.
func RequireRole(audit ports.AuditRecorder, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	audit = RecorderOrNop(audit)

	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		if !r.Valid() {
			panic(fmt.Sprintf("middleware: RequireRole: unknown role %q", r))
		}
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := MustIdentity(c)
			role := string(user.Role)

			if _, ok := allowed[user.Role]; !ok {
				metrics.AuthorizationsTotal.WithLabelValues("forbidden", role).Inc()
				ev := AuditEvent(c, domain.AuditAuthorize, "denied", "role")
				ev.UserID = user.ID
				audit.Record(ev)
				return domain.ErrForbidden
			}

			metrics.AuthorizationsTotal.WithLabelValues("allowed", role).Inc()
			return next(c)
		}
	}
}
