// Package metrics defines the Prometheus collectors of the form service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "userform"

// Submission results.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// Metrics holds the collectors. Each instance owns its registry so several
// servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	Submissions     *prometheus.CounterVec
	FieldUpdates    *prometheus.CounterVec
	Dismissals      prometheus.Counter
	Resets          prometheus.Counter
	ActiveSessions  prometheus.Gauge
	EvictedSessions prometheus.Counter
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Form submissions by validation result.",
		}, []string{"result"}),
		FieldUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_updates_total",
			Help:      "Field edits by field and outcome.",
		}, []string{"field", "result"}),
		Dismissals: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notice_dismissals_total",
			Help:      "Success notices closed by the visitor.",
		}),
		Resets: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Forms cleared through refresh.",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Visitor sessions currently held in memory.",
		}),
		EvictedSessions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evicted_sessions_total",
			Help:      "Visitor sessions dropped after the idle timeout.",
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveSubmission counts a submit attempt.
func (m *Metrics) ObserveSubmission(valid bool) {
	result := ResultRejected
	if valid {
		result = ResultAccepted
	}
	m.Submissions.WithLabelValues(result).Inc()
}

// ObserveFieldUpdate counts an edit of field; err marks it rejected.
func (m *Metrics) ObserveFieldUpdate(field string, err error) {
	result := ResultAccepted
	if err != nil {
		result = ResultRejected
	}
	m.FieldUpdates.WithLabelValues(field, result).Inc()
}

// SessionsChanged records the number of live sessions.
func (m *Metrics) SessionsChanged(active int) {
	m.ActiveSessions.Set(float64(active))
}

// SessionsEvicted counts sessions removed by the janitor.
func (m *Metrics) SessionsEvicted(n int) {
	m.EvictedSessions.Add(float64(n))
}
