package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

func TestNewAuditStream_Defaults(t *testing.T) {
	s := NewAuditStream(nil, "", 0)
	if s.stream != defaultAuditStream {
		t.Fatalf("expected default stream, got %q", s.stream)
	}
	if s.maxLen != defaultAuditMaxLen {
		t.Fatalf("expected default max len, got %d", s.maxLen)
	}
}

func TestStreamValues(t *testing.T) {
	at := time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)
	v := streamValues(domain.AuditEvent{
		Action:    domain.AuditAuthorize,
		Result:    "denied",
		Reason:    "role",
		UserID:    "12",
		TokenID:   "jti-1",
		RemoteIP:  "10.1.1.1",
		Path:      "/api/users/3",
		Timestamp: at,
	})

	want := map[string]string{
		"action":    "authorize",
		"result":    "denied",
		"reason":    "role",
		"user_id":   "12",
		"jti":       "jti-1",
		"remote_ip": "10.1.1.1",
		"path":      "/api/users/3",
		"ts":        "2026-05-01T08:30:00Z",
	}
	for k, w := range want {
		if v[k] != w {
			t.Errorf("%s: expected %q, got %v", k, w, v[k])
		}
	}
}

func newMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)
	return mini
}

func TestConnect(t *testing.T) {
	mini := newMiniredis(t)

	addr := mini.Addr()

	client, err := Connect(context.Background(), Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	mini.Close()
	if _, err := Connect(context.Background(), Config{Addr: addr, Timeout: 200 * time.Millisecond}); err == nil {
		t.Fatalf("expected ping failure against a closed server")
	}
}

func TestAuditStream_Write(t *testing.T) {
	mini := newMiniredis(t)
	client, err := Connect(context.Background(), Config{Addr: mini.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	s := NewAuditStream(client, "test:audit", 0)
	ctx := context.Background()
	for _, reason := range []string{"no_token", "expired"} {
		if err := s.Write(ctx, domain.AuditEvent{
			Action:    domain.AuditAuthenticate,
			Result:    "denied",
			Reason:    reason,
			Timestamp: time.Now(),
		}); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	entries, err := client.XRange(ctx, "test:audit", "-", "+").Result()
	if err != nil {
		t.Fatalf("xrange: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Values["reason"] != "no_token" || entries[1].Values["reason"] != "expired" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}
