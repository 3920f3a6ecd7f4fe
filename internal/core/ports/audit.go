package ports

import (
	"context"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

// AuditRecorder accepts audit events without blocking the caller.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditSink durably stores audit events.
type AuditSink interface {
	Write(ctx context.Context, event domain.AuditEvent) error
}
