// Package metrics provides Prometheus instrumentation for the image-gateway
// application.
//
// All metrics are prefixed with "image_gateway_" to avoid naming collisions
// with other applications.
//
// # Metric Categories
//
// ## HTTP Metrics
//
// Track request performance and error rates:
//   - HTTPRequestsTotal: Counter of total requests by method, path, and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of currently processing requests
//
// ## Cache Metrics
//
// Monitor the transcoded-response cache:
//   - CacheHits / CacheMisses / CacheBypass: Counters of lookup outcomes
//   - CacheEntries: Gauge of resident entries
//   - CacheEvictions: Counter of capacity evictions
//
// ## Transcode Metrics
//
//   - TranscodeDuration: Histogram of decode+resize+encode time by source
//     and target format
//   - TranscodeErrors: Counter of failed conversions by stage
//
// All metrics register themselves via promauto. Expose them by mounting
// promhttp.Handler() on a mux:
//
//	mux.Handle("/metrics", promhttp.Handler())
package metrics
