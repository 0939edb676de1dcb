package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"image-gateway/internal/assets"
	"image-gateway/internal/cache"
	"image-gateway/internal/mediatypes"
)

func TestHealthCheck(t *testing.T) {
	h, _ := newTestHandlers(t)

	w := httptest.NewRecorder()
	h.HealthCheck(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if response.Status != statusHealthy {
		t.Errorf("status = %q, want %q", response.Status, statusHealthy)
	}
	if response.CacheEntries != 0 {
		t.Errorf("cacheEntries = %d, want 0", response.CacheEntries)
	}
	if response.GoVersion == "" {
		t.Error("goVersion missing")
	}
}

func TestHealthCheckReportsCacheOccupancy(t *testing.T) {
	h, _ := newTestHandlers(t)
	h.responses.Set(cache.NewKey("abcd", mediatypes.FormatPNG, 0, 0), []byte("x"), "image/png")

	w := httptest.NewRecorder()
	h.HealthCheck(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var response HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if response.CacheEntries != 1 {
		t.Errorf("cacheEntries = %d, want 1", response.CacheEntries)
	}
}

func TestHealthCheckDegradedWithoutOriginDir(t *testing.T) {
	store := assets.NewStore("/nonexistent/origin/dir")
	h := New(store, cache.New(4, time.Minute), 1)

	w := httptest.NewRecorder()
	h.HealthCheck(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestLivenessCheck(t *testing.T) {
	h, _ := newTestHandlers(t)

	w := httptest.NewRecorder()
	h.LivenessCheck(w, httptest.NewRequest(http.MethodGet, "/livez", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("GET liveness should carry a body")
	}

	head := httptest.NewRecorder()
	h.LivenessCheck(head, httptest.NewRequest(http.MethodHead, "/livez", nil))

	if head.Code != http.StatusOK {
		t.Errorf("HEAD status = %d, want 200", head.Code)
	}
	if head.Body.Len() != 0 {
		t.Error("HEAD liveness must not carry a body")
	}
}

func TestReadinessCheck(t *testing.T) {
	h, dir := newTestHandlers(t)

	w := httptest.NewRecorder()
	h.ReadinessCheck(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 while origin dir exists", w.Code)
	}

	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}

	w = httptest.NewRecorder()
	h.ReadinessCheck(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 after origin dir removed", w.Code)
	}
}

func TestGetVersion(t *testing.T) {
	h, _ := newTestHandlers(t)

	w := httptest.NewRecorder()
	h.GetVersion(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var info map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&info); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	for _, key := range []string{"version", "commit", "goVersion", "os", "arch"} {
		if _, ok := info[key]; !ok {
			t.Errorf("missing %q in version response", key)
		}
	}
}
