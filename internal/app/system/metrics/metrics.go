// Package metrics exposes schedule generation counters for Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for generation runs.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	reg *prometheus.Registry

	runs          *prometheus.CounterVec
	piAssignments prometheus.Counter
	gdGroups      prometheus.Counter
	shortfall     prometheus.Gauge
	conflicts     prometheus.Gauge
	duration      prometheus.Histogram
	uploads       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mentorhub",
			Name:      "schedule_runs_total",
			Help:      "Schedule generation attempts by outcome.",
		}, []string{"outcome"}),
		piAssignments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mentorhub",
			Name:      "pi_assignments_total",
			Help:      "PI sessions booked across all runs.",
		}),
		gdGroups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mentorhub",
			Name:      "gd_groups_total",
			Help:      "GD groups formed across all runs.",
		}),
		shortfall: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mentorhub",
			Name:      "shortfall_students",
			Help:      "Students with fewer than two PI mentors in the latest run.",
		}),
		conflicts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mentorhub",
			Name:      "cross_conflicts",
			Help:      "Mentor PI/GD overlaps in the latest run.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mentorhub",
			Name:      "generate_duration_seconds",
			Help:      "Time spent allocating a schedule, excluding storage.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mentorhub",
			Name:      "roster_uploads_total",
			Help:      "Roster uploads by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
	m.reg.MustRegister(m.runs, m.piAssignments, m.gdGroups, m.shortfall, m.conflicts, m.duration, m.uploads)
	return m
}

// RunFinished records a completed generation. Recording methods are no-ops
// on a nil *Metrics.
func (m *Metrics) RunFinished(elapsed time.Duration, pi, groups, shortfall, conflicts int) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(OutcomeOK).Inc()
	m.piAssignments.Add(float64(pi))
	m.gdGroups.Add(float64(groups))
	m.shortfall.Set(float64(shortfall))
	m.conflicts.Set(float64(conflicts))
	m.duration.Observe(elapsed.Seconds())
}

// RunFailed records a generation that did not produce a schedule.
func (m *Metrics) RunFailed(outcome string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(outcome).Inc()
}

// Upload records a roster upload.
func (m *Metrics) Upload(kind string, ok bool) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeRejected
	}
	m.uploads.WithLabelValues(kind, outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
