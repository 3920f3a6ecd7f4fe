package domain

import "time"

// AuditAction names the auth step an AuditEvent describes.
type AuditAction string

const (
	AuditAuthenticate AuditAction = "authenticate"
	AuditAuthorize    AuditAction = "authorize"
	AuditLogin        AuditAction = "login"
	AuditRegister     AuditAction = "register"
	AuditDeactivate   AuditAction = "deactivate"
)

// AuditEvent is a routine record of an auth decision. Denials are expected
// traffic and are recorded here rather than logged as errors.
type AuditEvent struct {
	Action    AuditAction
	Result    string // "success" or "denied"
	Reason    string // e.g. "no_token", "expired", "role"
	UserID    string
	TokenID   string
	RemoteIP  string
	Path      string
	Timestamp time.Time
}
