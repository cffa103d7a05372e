// Package metrics defines the custom Prometheus metrics of the time-tracking
// identity service. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timetracking"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts register attempts.
// Labels:
//   - result: "created", "duplicate", "invalid" or "error"
//   - role: requested role, or "unknown" when it did not parse
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result and role.",
	},
	[]string{"result", "role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts completed logouts.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts.",
	},
)

// PermissionChecksTotal counts role checks.
// Labels:
//   - required_role: the role demanded by the caller
//   - result: "granted" or "denied"
var PermissionChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_checks_total",
		Help:      "Total number of permission checks, by required role and outcome.",
	},
	[]string{"required_role", "result"},
)

// ValidationFailuresTotal counts rejected inputs.
// Labels:
//   - code: domain error code (e.g. "INVALID_EMAIL")
//   - rule: the failing rule (e.g. "min_length")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of inputs rejected by domain validation.",
	},
	[]string{"code", "rule"},
)
