// Package metrics defines all custom Prometheus metrics for the catalog
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: "success", "conflict", "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "invalid_credentials", "not_found", "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// TokenVerificationsTotal counts bearer token verifications at the gate.
// Label:
//   - result: "ok", "expired", "invalid", "missing"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// BookMutationsTotal counts gated catalog mutations that succeeded.
// Label:
//   - action: "create", "update", "delete"
var BookMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "book_mutations_total",
		Help:      "Total number of successful catalog mutations, by action.",
	},
	[]string{"action"},
)

// AuditEventsTotal counts audit entries recorded by the trail workers.
// Labels:
//   - action: audit action (e.g. "login", "book_create")
//   - outcome: "success", "failure", "denied"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit entries recorded, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// AuditQueueDepth tracks the number of entries waiting in each audit worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
