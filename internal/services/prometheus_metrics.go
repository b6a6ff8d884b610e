package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements tracker.MetricsRecorder on the default
// Prometheus registry, exposed on /metrics.
type PrometheusMetrics struct {
	mutationsTotal       *prometheus.CounterVec
	derivationsTotal     prometheus.Counter
	derivationResultSize prometheus.Histogram
}

func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		mutationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracker_mutations_total",
				Help: "Total number of entity mutations by entity, operation and outcome",
			},
			[]string{"entity", "operation", "status"},
		),
		derivationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tracker_derivations_total",
				Help: "Total number of filtered-list derivations",
			},
		),
		derivationResultSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tracker_derivation_result_size",
				Help:    "Number of transactions in the derived list",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordMutation(entity, operation string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.mutationsTotal.WithLabelValues(entity, operation, status).Inc()
}

func (m *PrometheusMetrics) RecordDerivation(resultSize int) {
	m.derivationsTotal.Inc()
	m.derivationResultSize.Observe(float64(resultSize))
}
