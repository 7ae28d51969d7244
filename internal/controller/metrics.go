package controller

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	ctrlmetrics "sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Metric label constants.
const (
	labelKind      = "kind"
	labelResult    = "result"
	labelErrorType = "error_type"
)

// Result constants for conversion metrics.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// ControllerMetrics contains Prometheus metrics for the route controllers.
type ControllerMetrics struct {
	conversionsTotal  *prometheus.CounterVec
	reconcileDuration *prometheus.HistogramVec
	reconcileErrors   *prometheus.CounterVec
}

var (
	globalMetrics     *ControllerMetrics
	globalMetricsOnce sync.Once
)

// GetControllerMetrics returns the global controller metrics instance,
// registered with the controller-runtime metrics registry so they are served
// by the manager's metrics endpoint.
func GetControllerMetrics() *ControllerMetrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = NewControllerMetrics(ctrlmetrics.Registry)
	})
	return globalMetrics
}

// NewControllerMetrics creates controller metrics registered with reg.
func NewControllerMetrics(reg prometheus.Registerer) *ControllerMetrics {
	factory := promauto.With(reg)
	return &ControllerMetrics{
		conversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "avapolicy",
				Name:      "conversions_total",
				Help:      "Total number of HTTPRoute conversions by route kind and result",
			},
			[]string{labelKind, labelResult},
		),
		reconcileDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "avapolicy",
				Name:      "reconcile_duration_seconds",
				Help:      "Duration of HTTPRoute reconciliations in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{labelKind},
		),
		reconcileErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "avapolicy",
				Name:      "reconcile_errors_total",
				Help:      "Total number of HTTPRoute reconcile errors by route kind and error type",
			},
			[]string{labelKind, labelErrorType},
		),
	}
}

// RecordConversion records the outcome of one route conversion.
func (m *ControllerMetrics) RecordConversion(kind string, success bool) {
	result := ResultSuccess
	if !success {
		result = ResultError
	}
	m.conversionsTotal.WithLabelValues(kind, result).Inc()
}

// ObserveReconcile records the duration of one reconciliation.
func (m *ControllerMetrics) ObserveReconcile(kind string, d time.Duration) {
	m.reconcileDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// RecordError records a classified reconcile error.
func (m *ControllerMetrics) RecordError(kind string, errType ErrorType) {
	m.reconcileErrors.WithLabelValues(kind, string(errType)).Inc()
}
