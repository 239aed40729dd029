package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Expense metrics
	ExpenseMutations *prometheus.CounterVec

	// Analytics metrics
	AnalyticsDuration prometheus.Histogram
	AnalyticsRecords  prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge

	// Idempotency metrics
	IdempotencyReplays prometheus.Counter
}

// New creates all metrics and registers them with reg. A nil reg means the
// default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ExpenseMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goexpense_expense_mutations_total",
				Help: "Total expense mutations by operation",
			},
			[]string{"operation"},
		),

		AnalyticsDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "goexpense_analytics_duration_seconds",
			Help:    "Duration of analytics summary computations",
			Buckets: prometheus.DefBuckets,
		}),
		AnalyticsRecords: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "goexpense_analytics_records",
			Help:    "Number of records aggregated per analytics summary",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goexpense_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goexpense_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "goexpense_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),

		IdempotencyReplays: factory.NewCounter(prometheus.CounterOpts{
			Name: "goexpense_idempotency_replays_total",
			Help: "Requests answered from a stored idempotent response",
		}),
	}
}

// ExpenseMutated implements usecase.MetricsRecorder.
func (m *Metrics) ExpenseMutated(operation string) {
	m.ExpenseMutations.WithLabelValues(operation).Inc()
}

// AnalyticsComputed implements usecase.MetricsRecorder.
func (m *Metrics) AnalyticsComputed(duration time.Duration, records int) {
	m.AnalyticsDuration.Observe(duration.Seconds())
	m.AnalyticsRecords.Observe(float64(records))
}
