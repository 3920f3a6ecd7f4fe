package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/platform-api/internal/core/domain"
	"github.com/talentbridge/platform-api/internal/core/ports"
)

type nopRecorder struct{}

func (nopRecorder) Record(domain.AuditEvent) {}

// RecorderOrNop substitutes a recorder that discards events for a nil one.
func RecorderOrNop(r ports.AuditRecorder) ports.AuditRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

// AuditEvent pre-fills the request-scoped fields of an audit record.
func AuditEvent(c echo.Context, action domain.AuditAction, result, reason string) domain.AuditEvent {
	return domain.AuditEvent{
		Action:    action,
		Result:    result,
		Reason:    reason,
		RemoteIP:  c.RealIP(),
		Path:      c.Request().URL.Path,
		Timestamp: time.Now().UTC(),
	}
}
