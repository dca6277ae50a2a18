package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atmofx/bigint/internal/ops"
)

// Metrics holds the Prometheus collectors exposed by the compute service's
// /metrics endpoint, and the handler that serves them.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	activeRequests  prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	resultLimbs     *prometheus.HistogramVec
}

// NewMetrics registers a fresh set of compute-service collectors on a
// private registry (so repeated calls in tests don't collide on the
// global default registerer) and builds the handler that serves them.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bigint_active_requests",
			Help: "Number of compute requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bigint_requests_total",
			Help: "Total compute requests served, by operation and status.",
		}, []string{"op", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bigint_request_duration_seconds",
			Help:    "Compute request latency in seconds, by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		resultLimbs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bigint_result_limbs",
			Help:    "Number of 32-bit limbs in the computed result, by operation.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"op"}),
	}

	registry.MustRegister(m.activeRequests, m.requestsTotal, m.requestDuration, m.resultLimbs)
	// Start every registered op's request counters at zero so that
	// bigint_requests_total is exposed before the first request arrives.
	for _, op := range ops.Names() {
		m.requestsTotal.WithLabelValues(op, "ok")
		m.requestsTotal.WithLabelValues(op, "error")
	}
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return m
}

// IncrementActiveRequests records the start of a compute request.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests records the completion of a compute request.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// ObserveRequest records the outcome of a single compute request: its
// operation, status label ("ok" or "error"), latency, and (when
// successful) the limb count of the result.
func (m *Metrics) ObserveRequest(op, status string, duration float64, resultLimbs int) {
	m.requestsTotal.WithLabelValues(op, status).Inc()
	m.requestDuration.WithLabelValues(op).Observe(duration)
	if status == "ok" {
		m.resultLimbs.WithLabelValues(op).Observe(float64(resultLimbs))
	}
}

// WritePrometheus serves the current metrics in the Prometheus text
// exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
