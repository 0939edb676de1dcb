// Package middleware provides HTTP middleware for the image gateway.
//
// It includes:
//   - Streaming gzip response compression with content-aware levels
//   - Cache-Control classification by content type and request path
//   - Request logging in W3C Extended Log Format
//   - Prometheus request metrics
//
// The compression and cache-control stages cooperate: compression marks
// responses Cache-Control: no-transform, and the cache-control stage folds
// that marker into the single directive it emits. Wrap cache-control
// outside compression so it sees the final headers.
package middleware
