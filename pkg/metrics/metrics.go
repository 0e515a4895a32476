package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbErrorsTotal   *prometheus.CounterVec

	dbConnsOpen  *prometheus.GaugeVec
	dbConnsInUse *prometheus.GaugeVec
	dbConnsIdle  *prometheus.GaugeVec
	dbWaitCount  *prometheus.GaugeVec
}

// New создает и регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		dbErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total number of database errors",
		}, []string{"service", "operation"}),
		dbConnsOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		}, []string{"service"}),
		dbConnsInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Number of database connections currently in use",
		}, []string{"service"}),
		dbConnsIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		}, []string{"service"}),
		dbWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbErrorsTotal,
		m.dbConnsOpen,
		m.dbConnsInUse,
		m.dbConnsIdle,
		m.dbWaitCount,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(service, method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(service, operation string, duration time.Duration, err error) {
	m.dbQueryDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbErrorsTotal.WithLabelValues(service, operation).Inc()
	}
}

// SetDBPoolStats публикует статистику connection pool
func (m *Metrics) SetDBPoolStats(service string, stats sql.DBStats) {
	m.dbConnsOpen.WithLabelValues(service).Set(float64(stats.OpenConnections))
	m.dbConnsInUse.WithLabelValues(service).Set(float64(stats.InUse))
	m.dbConnsIdle.WithLabelValues(service).Set(float64(stats.Idle))
	m.dbWaitCount.WithLabelValues(service).Set(float64(stats.WaitCount))
}
