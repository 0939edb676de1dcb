package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_gateway_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "image_gateway_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "image_gateway_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Response cache metrics
var (
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "image_gateway_cache_hits_total",
			Help: "Total number of response cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "image_gateway_cache_misses_total",
			Help: "Total number of response cache misses (stale entries included)",
		},
	)

	CacheBypass = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "image_gateway_cache_bypass_total",
			Help: "Total number of requests served directly from origin files",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "image_gateway_cache_entries",
			Help: "Number of entries resident in the response cache",
		},
	)

	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "image_gateway_cache_evictions_total",
			Help: "Total number of capacity evictions from the response cache",
		},
	)
)

// Transcode metrics
var (
	TranscodeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "image_gateway_transcode_duration_seconds",
			Help:    "Decode+resize+encode duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"source", "target"},
	)

	TranscodeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_gateway_transcode_errors_total",
			Help: "Total number of failed conversions by pipeline stage",
		},
		[]string{"stage"},
	)
)
