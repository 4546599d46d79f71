// Package metrics provides Prometheus metrics for the API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered for the service.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authFailures    prometheus.Counter
}

// New creates and registers the service metrics on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "portfolio",
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "portfolio",
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		authFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "portfolio",
				Subsystem: "api",
				Name:      "auth_failures_total",
				Help:      "Total number of failed admin authentications",
			},
		),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.authFailures)
	return m
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordAuthFailure counts one failed login or token check.
func (m *Metrics) RecordAuthFailure() {
	m.authFailures.Inc()
}
