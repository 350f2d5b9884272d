package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes counters for mirror sync runs and synced records, a gauge for
// the last successful sync, and histograms for HTTP and database latency.
type Metrics struct {
	SyncRuns          *prometheus.CounterVec
	EmpleadosSynced   prometheus.Counter
	LastSyncTime      prometheus.Gauge
	SyncDuration      prometheus.Histogram
	HTTPRequestsTotal *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	DBQueryDuration   *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance registered against the provided
// Registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		SyncRuns: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "empleados_sync_runs_total",
			Help: "Total times the mirror has successfully or unsuccessfully completed a sync cycle.",
		}, []string{"status"}),
		EmpleadosSynced: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "empleados_synced_total",
			Help: "Total number of empleado records saved or updated by the mirror.",
		}),
		LastSyncTime: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "empleados_last_successful_sync_timestamp",
			Help: "Last time a sync cycle completed successfully.",
		}),
		SyncDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name: "empleados_sync_duration_seconds",
			Help: "Measures how long a full sync cycle takes to complete.",
		}),
		HTTPRequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "empleados_http_requests_total",
			Help: "Total HTTP requests served, by handler and status code.",
		}, []string{"handler", "code"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "empleados_http_request_duration_seconds",
			Help:    "Duration of served HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "empleados_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'list_empleados', 'create_empleado', ...
	}

	metrics.SyncRuns.WithLabelValues("success")
	metrics.SyncRuns.WithLabelValues("failure")

	return metrics
}
