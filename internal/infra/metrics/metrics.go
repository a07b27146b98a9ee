// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"prepmap/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "prepmap"

// Collector owns a private registry and the service-level metrics.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	fetchFailures    *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	activeSessions   prometheus.Gauge
	geometryLoadTime prometheus.Gauge
}

// New builds a Collector with Go runtime and process collectors registered.
func New() (*Collector, error) {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		fetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "facility_fetch_failures_total",
			Help:      "Facility directory failures by caller.",
		}, []string{"source"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "facility_cache_lookups_total",
			Help:      "Facility cache lookups by result.",
		}, []string{"result"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Interactive map sessions currently connected.",
		}),
		geometryLoadTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "geometry_load_seconds",
			Help:      "Time taken by the one-time geometry load.",
		}),
	}

	for _, col := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.requestsTotal,
		c.requestDuration,
		c.fetchFailures,
		c.cacheLookups,
		c.activeSessions,
		c.geometryLoadTime,
	} {
		if err := reg.Register(col); err != nil {
			return nil, errors.Wrap(err, "register collector")
		}
	}

	return c, nil
}

// RegisterDB exposes connection pool statistics for db.
func (c *Collector) RegisterDB(db *sql.DB, name string) error {
	if c == nil {
		return nil
	}

	return errors.Wrap(c.registry.Register(collectors.NewDBStatsCollector(db, name)), "register db stats")
}

// Gatherer returns the registry backing the collector.
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return prometheus.NewRegistry()
	}

	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.Gatherer(), promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// IncFetchFailure counts a facility directory failure seen by source.
func (c *Collector) IncFetchFailure(source string) {
	if c == nil {
		return
	}
	c.fetchFailures.WithLabelValues(source).Inc()
}

// CacheHit counts a facility cache hit.
func (c *Collector) CacheHit() {
	if c == nil {
		return
	}
	c.cacheLookups.WithLabelValues("hit").Inc()
}

// CacheMiss counts a facility cache miss.
func (c *Collector) CacheMiss() {
	if c == nil {
		return
	}
	c.cacheLookups.WithLabelValues("miss").Inc()
}

// SessionOpened increments the active session gauge.
func (c *Collector) SessionOpened() {
	if c == nil {
		return
	}
	c.activeSessions.Inc()
}

// SessionClosed decrements the active session gauge.
func (c *Collector) SessionClosed() {
	if c == nil {
		return
	}
	c.activeSessions.Dec()
}

// ObserveGeometryLoad records how long the geometry load took.
func (c *Collector) ObserveGeometryLoad(elapsed time.Duration) {
	if c == nil {
		return
	}
	c.geometryLoadTime.Set(elapsed.Seconds())
}
