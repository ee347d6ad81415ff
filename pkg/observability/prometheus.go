package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusHooks records hook events as Prometheus metrics.
type PrometheusHooks struct {
	diagrams         *prometheus.CounterVec
	diagramDuration  *prometheus.HistogramVec
	diagramNodes     *prometheus.HistogramVec
	emptyDiagrams    *prometheus.CounterVec
	artifacts        *prometheus.CounterVec
	artifactDuration *prometheus.HistogramVec
	cacheEvents      *prometheus.CounterVec
	cacheBytes       *prometheus.CounterVec
	requestsInFlight prometheus.Gauge
	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// NewPrometheusHooks registers the metrics with reg. Passing
// prometheus.DefaultRegisterer exposes them through promhttp.Handler.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	f := promauto.With(reg)
	return &PrometheusHooks{
		diagrams: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mermaidgraph_diagrams_total",
			Help: "Diagrams rendered, by kind and outcome.",
		}, []string{"kind", "outcome"}),

		diagramDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mermaidgraph_diagram_seconds",
			Help:    "Time spent decoding and building a diagram.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),

		diagramNodes: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mermaidgraph_diagram_nodes",
			Help:    "Number of nodes in rendered diagrams.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"kind"}),

		emptyDiagrams: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mermaidgraph_empty_diagrams_total",
			Help: "Diagrams cleared because nothing was linked to the root.",
		}, []string{"kind"}),

		artifacts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mermaidgraph_artifacts_total",
			Help: "Derived artifacts rendered, by format and outcome.",
		}, []string{"format", "outcome"}),

		artifactDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mermaidgraph_artifact_seconds",
			Help:    "Time spent rendering a derived artifact.",
			Buckets: prometheus.DefBuckets,
		}, []string{"format"}),

		cacheEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mermaidgraph_cache_events_total",
			Help: "Cache lookups and writes, by key type and event.",
		}, []string{"key_type", "event"}),

		cacheBytes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mermaidgraph_cache_written_bytes_total",
			Help: "Bytes written to the cache.",
		}, []string{"key_type"}),

		requestsInFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "mermaidgraph_http_requests_in_flight",
			Help: "HTTP requests currently being served.",
		}),

		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mermaidgraph_http_requests_total",
			Help: "HTTP requests served, by method, route and status code.",
		}, []string{"method", "route", "code"}),

		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mermaidgraph_http_request_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (h *PrometheusHooks) OnRenderStart(context.Context, string) {}

func (h *PrometheusHooks) OnRenderComplete(_ context.Context, kind string, nodes, _ int, d time.Duration, err error) {
	h.diagrams.WithLabelValues(kind, outcome(err)).Inc()
	h.diagramDuration.WithLabelValues(kind).Observe(d.Seconds())
	if err != nil {
		return
	}
	if nodes == 0 {
		h.emptyDiagrams.WithLabelValues(kind).Inc()
		return
	}
	h.diagramNodes.WithLabelValues(kind).Observe(float64(nodes))
}

func (h *PrometheusHooks) OnArtifactComplete(_ context.Context, format string, _ int, d time.Duration, err error) {
	h.artifacts.WithLabelValues(format, outcome(err)).Inc()
	h.artifactDuration.WithLabelValues(format).Observe(d.Seconds())
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheEvents.WithLabelValues(keyType, "set").Inc()
	h.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string) {
	h.requestsInFlight.Inc()
}

func (h *PrometheusHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.requestsInFlight.Dec()
	h.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

var _ AllHooks = (*PrometheusHooks)(nil)
