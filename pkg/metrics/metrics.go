// Package metrics exposes the service's Prometheus collectors: HTTP request
// counters/latency used by the API middleware and a sampler for database
// connection pool stats.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics service metrics collectors
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	ScheduleCacheHits   prometheus.Counter
	ScheduleCacheMisses prometheus.Counter
}

// New registers and returns the service metrics
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBOpenConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open database connections",
			ConstLabels: labels,
		}),

		DBInUseConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database connections currently in use",
			ConstLabels: labels,
		}),

		DBIdleConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle database connections",
			ConstLabels: labels,
		}),

		ScheduleCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_cache_hits_total",
			Help:        "Schedule cache hits",
			ConstLabels: labels,
		}),

		ScheduleCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_cache_misses_total",
			Help:        "Schedule cache misses",
			ConstLabels: labels,
		}),
	}
}

// CacheHit records one schedule cache hit
func (m *Metrics) CacheHit() {
	m.ScheduleCacheHits.Inc()
}

// CacheMiss records one schedule cache miss
func (m *Metrics) CacheMiss() {
	m.ScheduleCacheMisses.Inc()
}

// ObserveRequest records one completed HTTP request
func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// CollectDBStats samples connection pool statistics every interval until
// the stop channel is closed. Blocks; run it on its own goroutine.
func (m *Metrics) CollectDBStats(db *sql.DB, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := db.Stats()
			m.DBOpenConnections.Set(float64(stats.OpenConnections))
			m.DBInUseConnections.Set(float64(stats.InUse))
			m.DBIdleConnections.Set(float64(stats.Idle))
		case <-stop:
			return
		}
	}
}
