package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

// LogSink writes audit events as structured info logs. Denials are routine
// and never logged at error level.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "audit").Logger()}
}

func (s *LogSink) Write(_ context.Context, e domain.AuditEvent) error {
	ev := s.log.Info().
		Str("action", string(e.Action)).
		Str("result", e.Result).
		Time("at", e.Timestamp)
	if e.Reason != "" {
		ev = ev.Str("reason", e.Reason)
	}
	if e.UserID != "" {
		ev = ev.Str("user_id", e.UserID)
	}
	if e.TokenID != "" {
		ev = ev.Str("jti", e.TokenID)
	}
	if e.RemoteIP != "" {
		ev = ev.Str("remote_ip", e.RemoteIP)
	}
	if e.Path != "" {
		ev = ev.Str("path", e.Path)
	}
	ev.Msg("auth audit")
	return nil
}
