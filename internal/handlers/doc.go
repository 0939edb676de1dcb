// Package handlers contains the HTTP handlers for the gateway: the image
// transcoding pipeline plus the health, readiness, and version endpoints.
package handlers
