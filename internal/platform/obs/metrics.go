// Package obs exposes the service's Prometheus collectors.
package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Posting outcomes recorded by ObservePosting.
const (
	OutcomePosted   = "posted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds the HTTP and ledger collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	entriesTotal *prometheus.CounterVec
	booksLoaded  prometheus.Gauge
}

// NewMetrics creates the collectors on a fresh registry that also carries
// the Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		entriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_journal_entries_total",
				Help: "Journal entry post attempts by outcome.",
			},
			[]string{"outcome"},
		),
		booksLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_tenant_books_loaded",
			Help: "Tenant books currently held in memory.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reg.MustRegister(m.httpInFlight, m.httpRequestsTotal, m.httpRequestDuration, m.entriesTotal, m.booksLoaded)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RequestStarted marks a request in flight.
func (m *Metrics) RequestStarted() {
	m.httpInFlight.Inc()
}

// RequestFinished records a completed request.
func (m *Metrics) RequestFinished(method, path, status string, seconds float64) {
	m.httpInFlight.Dec()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// ObservePosting counts one post attempt.
func (m *Metrics) ObservePosting(outcome string) {
	m.entriesTotal.WithLabelValues(outcome).Inc()
}

// SetBooksLoaded reports how many tenant books are cached.
func (m *Metrics) SetBooksLoaded(n int) {
	m.booksLoaded.Set(float64(n))
}
