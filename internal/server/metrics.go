// Package server exposes run metrics over HTTP in Prometheus format while
// a benchmark invocation is in flight (--metrics-addr).
package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus instruments for strategy runs and the
// HTTP endpoint itself. Each Metrics value owns a dedicated registry so
// tests can construct instances freely without global-registration panics.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	runsTotal      *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	activeRuns     prometheus.Gauge
	requestsTotal  prometheus.Counter
	activeRequests prometheus.Gauge
}

// NewMetrics creates the instrument set on a fresh registry, including the
// standard Go runtime and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(registry)
	m := &Metrics{
		registry: registry,
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "reducebench_runs_total",
			Help: "Completed strategy runs, by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reducebench_run_duration_seconds",
			Help:    "Wall-clock duration of strategy runs.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 16),
		}, []string{"strategy"}),
		activeRuns: factory.NewGauge(prometheus.GaugeOpts{
			Name: "reducebench_active_runs",
			Help: "Strategy runs currently in flight.",
		}),
		requestsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "reducebench_requests_total",
			Help: "HTTP requests served by the metrics endpoint.",
		}),
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "reducebench_active_requests",
			Help: "HTTP requests currently being served.",
		}),
	}
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// RunStarted records the start of a strategy run.
func (m *Metrics) RunStarted() {
	m.activeRuns.Inc()
}

// RunCompleted records a finished strategy run with its outcome.
func (m *Metrics) RunCompleted(strategy string, d time.Duration, err error) {
	m.activeRuns.Dec()
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.runsTotal.WithLabelValues(strategy, outcome).Inc()
	if err == nil {
		m.runDuration.WithLabelValues(strategy).Observe(d.Seconds())
	}
}

// IncrementActiveRequests tracks an HTTP request entering the server.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests tracks an HTTP request leaving the server.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// WritePrometheus serves the registry in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
