// Package metrics exposes Prometheus counters for dashboard actions and
// authentication attempts.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeIgnored  = "ignored"
)

// Metrics holds the application collectors. A nil *Metrics records nothing.
type Metrics struct {
	actions *prometheus.CounterVec
	auth    *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "todo",
			Name:      "dashboard_actions_total",
			Help:      "Dashboard form submissions by form type and outcome.",
		}, []string{"form_type", "outcome"}),
		auth: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "todo",
			Name:      "auth_attempts_total",
			Help:      "Registration and login attempts by outcome.",
		}, []string{"flow", "outcome"}),
	}
	reg.MustRegister(m.actions, m.auth)
	return m
}

// ObserveAction counts one dashboard submission.
func (m *Metrics) ObserveAction(formType, outcome string) {
	if m == nil {
		return
	}
	if formType == "" {
		formType = "none"
	}
	m.actions.WithLabelValues(formType, outcome).Inc()
}

// ObserveAuth counts one registration or login attempt.
func (m *Metrics) ObserveAuth(flow, outcome string) {
	if m == nil {
		return
	}
	m.auth.WithLabelValues(flow, outcome).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
