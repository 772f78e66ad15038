package metrics_test

import (
	"testing"
	"time"

	"warehouse/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestProcessingMetrics(t *testing.T) {
	t.Run("should count outcomes separately", func(t *testing.T) {
		m := metrics.NewProcessingMetrics(prometheus.NewRegistry())

		m.Observe(metrics.OutcomeProcessed, 20*time.Millisecond)
		m.Observe(metrics.OutcomeProcessed, 30*time.Millisecond)
		m.Observe(metrics.OutcomeInsufficientStock, time.Millisecond)

		assert.InDelta(t, 2, testutil.ToFloat64(m.Orders.WithLabelValues(metrics.OutcomeProcessed)), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.Orders.WithLabelValues(metrics.OutcomeInsufficientStock)), 0)
		assert.Equal(t, 2, testutil.CollectAndCount(m.LatencySec))
	})

	t.Run("should count audit failures", func(t *testing.T) {
		m := metrics.NewProcessingMetrics(prometheus.NewRegistry())

		m.AuditFailed()

		assert.InDelta(t, 1, testutil.ToFloat64(m.AuditFailures), 0)
	})

	t.Run("nil metrics should be a no-op", func(t *testing.T) {
		var m *metrics.ProcessingMetrics

		assert.NotPanics(t, func() {
			m.Observe(metrics.OutcomeError, time.Second)
			m.AuditFailed()
		})
	})
}
