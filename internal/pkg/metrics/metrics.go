package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "warehouse"

// Outcome labels for processed orders.
const (
	OutcomeProcessed         = "processed"
	OutcomeOrderNotFound     = "order_not_found"
	OutcomeInsufficientStock = "insufficient_stock"
	OutcomeNotificationError = "notification_failure"
	OutcomeError             = "error"
)

// ProcessingMetrics records the result and latency of every order run through
// the processing pipeline.
type ProcessingMetrics struct {
	Orders        *prometheus.CounterVec
	LatencySec    *prometheus.HistogramVec
	AuditFailures prometheus.Counter
}

// NewProcessingMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewProcessingMetrics(reg prometheus.Registerer) *ProcessingMetrics {
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "processed_total",
		Help:      "Total number of order processing attempts by outcome.",
	}, []string{"outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "processing_duration_seconds",
		Help:      "Order processing latency in seconds.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"outcome"})
	auditFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "audit",
		Name:      "export_failures_total",
		Help:      "Total number of order snapshots that could not be exported.",
	})

	reg.MustRegister(orders, latency, auditFailures)
	return &ProcessingMetrics{Orders: orders, LatencySec: latency, AuditFailures: auditFailures}
}

// Observe counts one processing attempt and records its duration.
func (m *ProcessingMetrics) Observe(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Orders.WithLabelValues(outcome).Inc()
	m.LatencySec.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// AuditFailed counts a snapshot that was not written.
func (m *ProcessingMetrics) AuditFailed() {
	if m == nil {
		return
	}
	m.AuditFailures.Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
