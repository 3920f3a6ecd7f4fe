// Package metrics defines and registers all custom Prometheus metrics for the
// TalentBridge platform API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto; importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "talentbridge"

// ── Authentication metrics ────────────────────────────────────────────────────

// AuthenticationsTotal counts Authentication Gate outcomes.
// Labels:
//   - result: "success" or "denied"
//   - reason: "" on success, otherwise e.g. "no_token", "expired", "signature", "malformed", "identity_missing"
var AuthenticationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_authentications_total",
		Help:      "Total number of bearer token authentications, by result and reason.",
	},
	[]string{"result", "reason"},
)

// AuthorizationsTotal counts role checks.
// Labels:
//   - result: "allowed" or "forbidden"
//   - role: the caller's role
var AuthorizationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_authorizations_total",
		Help:      "Total number of role-based authorization checks, by result and caller role.",
	},
	[]string{"result", "role"},
)

// ── Credential metrics ────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registrations.
// Labels:
//   - result: "success", "conflict", "invalid" or "error"
//   - role: requested role (empty when invalid)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_registrations_total",
		Help:      "Total number of registrations, by result and role.",
	},
	[]string{"result", "role"},
)

// PasswordHashDuration measures bcrypt hashing time. Its cost is intentional;
// this tracks that BCRYPT_COST stays within the latency envelope.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_password_hash_duration_seconds",
		Help:      "Duration of password hashing operations.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsDroppedTotal counts audit events discarded because a worker
// channel was full.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of audit events dropped due to a full dispatcher queue.",
	},
)

// AuditSinkErrorsTotal counts failed sink writes.
// Label:
//   - sink: sink name (e.g. "log", "redis_stream")
var AuditSinkErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_sink_errors_total",
		Help:      "Total number of audit sink write failures, by sink.",
	},
	[]string{"sink"},
)

// AuditQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
