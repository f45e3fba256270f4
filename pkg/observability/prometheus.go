package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements AnalysisHooks, CacheHooks and HTTPHooks with
// Prometheus collectors.
type Metrics struct {
	gatherer prometheus.Gatherer

	analyses     *prometheus.CounterVec
	duration     prometheus.Histogram
	tetrads      prometheus.Counter
	quadruplexes prometheus.Counter
	inflight     prometheus.Gauge

	cacheEvents *prometheus.CounterVec
	cacheBytes  prometheus.Counter

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tetrado",
			Name:      "analyses_total",
			Help:      "Analyses run, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tetrado",
			Name:      "analysis_duration_seconds",
			Help:      "Time spent detecting and classifying tetrads.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		tetrads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tetrado",
			Name:      "tetrads_found_total",
			Help:      "Tetrads found across all analyses.",
		}),
		quadruplexes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tetrado",
			Name:      "quadruplexes_found_total",
			Help:      "Quadruplexes found across all analyses.",
		}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tetrado",
			Name:      "analyses_in_flight",
			Help:      "Analyses currently running.",
		}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tetrado",
			Subsystem: "cache",
			Name:      "events_total",
			Help:      "Cache lookups and writes, by key type and event.",
		}, []string{"key_type", "event"}),
		cacheBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tetrado",
			Subsystem: "cache",
			Name:      "written_bytes_total",
			Help:      "Bytes written to the cache.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tetrado",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tetrado",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	reg.MustRegister(
		m.analyses, m.duration, m.tetrads, m.quadruplexes, m.inflight,
		m.cacheEvents, m.cacheBytes,
		m.requests, m.requestDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) OnAnalyzeStart(_ context.Context, _ string, _ bool) {
	m.inflight.Inc()
}

func (m *Metrics) OnAnalyzeComplete(_ context.Context, _ string, strict bool, tetrads, quadruplexes int, d time.Duration, err error) {
	m.inflight.Dec()
	mode := "relaxed"
	if strict {
		mode = "strict"
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.analyses.WithLabelValues(mode, outcome).Inc()
	if err != nil {
		return
	}
	m.duration.Observe(d.Seconds())
	m.tetrads.Add(float64(tetrads))
	m.quadruplexes.Add(float64(quadruplexes))
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheEvents.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.Add(float64(size))
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}
