// Package metrics defines and registers all custom Prometheus metrics for the
// hospitality hub API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package init
// through promauto and exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hospitality"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "authentication_failed", "missing_role" or "role_mismatch"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SignupsTotal counts created accounts.
// Label:
//   - role: "vendor", "company" or "organiser"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// InFlightRejectedTotal counts submissions rejected because the same form was
// already being processed.
var InFlightRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inflight_rejected_total",
		Help:      "Total number of duplicate concurrent submissions rejected, by route.",
	},
	[]string{"route"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit records waiting in each worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of auth events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts audit records dropped because the worker channel was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of auth events dropped due to a full queue.",
	},
)

// AuditWriteDuration measures how long persisting one audit record takes.
var AuditWriteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_write_duration_seconds",
		Help:      "Duration of writing a single auth event.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// EventsCreatedTotal counts events created by organisers.
// Label:
//   - positions: "ok" or "failed"
var EventsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_created_total",
		Help:      "Total number of events created, by positions insert result.",
	},
	[]string{"positions"},
)

// VendorApplicationsTotal counts vendor applications.
// Label:
//   - result: "created" or "duplicate"
var VendorApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vendor_applications_total",
		Help:      "Total number of vendor applications, by result.",
	},
	[]string{"result"},
)

// DocumentsUploadedTotal counts verification document uploads.
// Label:
//   - doc_type: "GovID" or "Business"
var DocumentsUploadedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_uploaded_total",
		Help:      "Total number of verification documents uploaded, by type.",
	},
	[]string{"doc_type"},
)
