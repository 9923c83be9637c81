// Package metrics provides Prometheus metrics for the arena service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector the service exports. All collectors live
// on a private registry, so the exposition endpoint carries only arena
// metrics and tests can build isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	scoresSubmitted     *prometheus.CounterVec
	challengesGenerated *prometheus.CounterVec
	usersRegistered     prometheus.Counter
	logins              prometheus.Counter
}

// New creates a Metrics instance with its own registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "arena",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		scoresSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "scores_submitted_total",
			Help:      "Recorded score submissions by game type and verdict.",
		}, []string{"game_type", "verdict"}),
		challengesGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "challenges_generated_total",
			Help:      "Generated game challenges by game type.",
		}, []string{"game_type"}),
		usersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "users_registered_total",
			Help:      "Successful account registrations.",
		}),
		logins: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "arena",
			Name:      "logins_total",
			Help:      "Successful logins.",
		}),
	}
}

// Handler returns the exposition endpoint for this instance's registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordScoreSubmitted counts one recorded submission
func (m *Metrics) RecordScoreSubmitted(gameType, verdict string) {
	m.scoresSubmitted.WithLabelValues(gameType, verdict).Inc()
}

// RecordChallengeGenerated counts one generated challenge
func (m *Metrics) RecordChallengeGenerated(gameType string) {
	m.challengesGenerated.WithLabelValues(gameType).Inc()
}

// RecordRegistration counts one successful registration
func (m *Metrics) RecordRegistration() {
	m.usersRegistered.Inc()
}

// RecordLogin counts one successful login
func (m *Metrics) RecordLogin() {
	m.logins.Inc()
}
