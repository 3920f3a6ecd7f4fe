package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

const (
	defaultAuditStream = "auth:audit"
	defaultAuditMaxLen = 100_000
)

// AuditStream appends audit events to a capped Redis stream so a separate
// consumer can ship them to long-term storage.
type AuditStream struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewAuditStream creates an AuditStream writing to stream, trimmed
// approximately to maxLen entries. Zero values select the defaults.
func NewAuditStream(client *redis.Client, stream string, maxLen int64) *AuditStream {
	if stream == "" {
		stream = defaultAuditStream
	}
	if maxLen <= 0 {
		maxLen = defaultAuditMaxLen
	}
	return &AuditStream{client: client, stream: stream, maxLen: maxLen}
}

// Write appends e to the stream.
func (s *AuditStream) Write(ctx context.Context, e domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: streamValues(e),
	}).Err()
	if err != nil {
		return fmt.Errorf("audit xadd: %w", err)
	}
	return nil
}

func streamValues(e domain.AuditEvent) map[string]any {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return map[string]any{
		"action":    string(e.Action),
		"result":    e.Result,
		"reason":    e.Reason,
		"user_id":   e.UserID,
		"jti":       e.TokenID,
		"remote_ip": e.RemoteIP,
		"path":      e.Path,
		"ts":        ts.UTC().Format(time.RFC3339Nano),
	}
}
