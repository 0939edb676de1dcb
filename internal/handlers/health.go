package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"image-gateway/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// HealthResponse contains the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`

	// Cache occupancy
	CacheEntries int `json:"cacheEntries"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// HealthCheck reports overall service health. The service is degraded when
// the origin image directory is unreadable; everything else it does is
// per-request and carries no standing state worth reporting as unhealthy.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	response := HealthResponse{
		Status:       statusHealthy,
		Version:      startup.Version,
		Uptime:       time.Since(h.startedAt).Round(time.Second).String(),
		CacheEntries: h.responses.Len(),
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	}

	code := http.StatusOK
	if !h.originReadable() {
		response.Status = statusDegraded
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// For HEAD requests, only send headers (no body)
	if r.Method != http.MethodHead {
		writeJSON(w, map[string]string{
			"status": "alive",
		})
	}
}

// ReadinessCheck returns 200 when the origin image directory is readable
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, _ *http.Request) {
	if h.originReadable() {
		writeJSONStatus(w, "ready")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	writeJSON(w, map[string]string{"status": "not_ready"})
}

func (h *Handlers) originReadable() bool {
	info, err := os.Stat(h.store.Dir())
	return err == nil && info.IsDir()
}
