// Package metrics defines all custom Prometheus metrics for the time-tracker
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via promauto
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timetracker"

// ── Identity metrics ──────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// AuthFailuresTotal counts failed authentication attempts.
// Label:
//   - reason: "unknown_account" or "bad_password"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed login attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Registry metrics ──────────────────────────────────────────────────────────

// JobsCreatedTotal counts jobs registered across all users.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs created.",
	},
)

// JobsDeletedTotal counts job deletions.
var JobsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_deleted_total",
		Help:      "Total number of jobs deleted.",
	},
)

// ── Ledger metrics ────────────────────────────────────────────────────────────

// ShiftsLoggedTotal counts shifts successfully persisted.
var ShiftsLoggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shifts_logged_total",
		Help:      "Total number of shifts logged.",
	},
)

// ShiftsDeletedTotal counts shift deletions.
var ShiftsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shifts_deleted_total",
		Help:      "Total number of shifts deleted.",
	},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardComputeDuration measures a full dashboard aggregation, store reads
// included.
var DashboardComputeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_compute_duration_seconds",
		Help:      "Duration of a dashboard summary computation, reads included.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
