package prometheus

import (
	"reconcile-service/pkg/config"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthErrorsCounter prometheus.Counter

	// Import pipeline metrics
	ImportRunsCounter      prometheus.CounterVec
	ImportDuration         prometheus.Histogram
	ListingsProcessed      prometheus.Counter
	ComponentMatches       prometheus.CounterVec
	UnmatchedListings      prometheus.Counter
	CatalogComponentsGauge prometheus.Gauge

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of authentication errors",
		},
	)

	// Import pipeline metrics
	ImportRunsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_import_runs_total",
			Help: "Total number of catalog import runs",
		},
		[]string{"status"},
	)

	ImportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_import_duration_seconds",
			Help:    "Duration of catalog import runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ListingsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_listings_processed_total",
			Help: "Total number of marketplace listings resolved",
		},
	)

	ComponentMatches = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_component_matches_total",
			Help: "Total number of component matches by heuristic tier",
		},
		[]string{"tier"},
	)

	UnmatchedListings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_unmatched_listings_total",
			Help: "Total number of listings flagged for manual review",
		},
	)

	CatalogComponentsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_catalog_components",
			Help: "Unique components in the catalog after deduplication",
		},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordImportRun increments the run counter with its outcome and records
// the duration.
func RecordImportRun(status string, startTime time.Time) {
	ImportRunsCounter.WithLabelValues(status).Inc()
	ImportDuration.Observe(time.Since(startTime).Seconds())
}

// RecordComponentMatch increments the per-tier match counter.
func RecordComponentMatch(tier string) {
	ComponentMatches.WithLabelValues(tier).Inc()
}
