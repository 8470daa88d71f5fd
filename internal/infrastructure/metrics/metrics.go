package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Record metrics
	RecordsCreated *prometheus.CounterVec
	RecordsDeleted *prometheus.CounterVec

	// Statement metrics
	StatementsBuilt    *prometheus.CounterVec
	StatementDuration  *prometheus.HistogramVec
	StatementCacheHits *prometheus.CounterVec
	StatementRows      prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBErrors   *prometheus.CounterVec
	DBRetries  prometheus.Counter
	DBDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RecordsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "khata_records_created_total",
				Help: "Total records created by collection",
			},
			[]string{"collection"},
		),
		RecordsDeleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "khata_records_deleted_total",
				Help: "Total records deleted by collection",
			},
			[]string{"collection"},
		),

		StatementsBuilt: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "khata_statements_built_total",
				Help: "Total statements built by counterparty kind",
			},
			[]string{"kind"},
		),
		StatementDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "khata_statement_duration_seconds",
				Help:    "Statement build duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		StatementCacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "khata_statement_cache_hits_total",
				Help: "Statement cache hits and misses",
			},
			[]string{"result"},
		),
		StatementRows: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "khata_statement_rows",
			Help:    "Rows per built statement",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),

		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "khata_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "khata_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "khata_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),
		DBRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "khata_db_retries_total",
			Help: "Total retried collection mutations",
		}),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "khata_db_duration_seconds",
				Help:    "Collection load and save duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "khata_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),

		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "khata_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}
