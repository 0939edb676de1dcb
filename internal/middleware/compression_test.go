package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

// serve runs a handler through the Compression middleware and returns the
// recorded response.
func serveCompressed(t *testing.T, acceptEncoding string, handler http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	if acceptEncoding != "" {
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}
	w := httptest.NewRecorder()
	Compression(DefaultCompressionConfig())(handler).ServeHTTP(w, req)
	return w
}

func jsonHandler(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Write(body)
	}
}

func gunzip(t *testing.T, data []byte) []byte {
	t.Helper()
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer gz.Close()
	out, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("gunzip: %v", err)
	}
	return out
}

func TestCompressionLargeJSON(t *testing.T) {
	body := bytes.Repeat([]byte(`{"k":"v"}`), 250) // ~2KB

	w := serveCompressed(t, "gzip, deflate", jsonHandler(body))

	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", got)
	}
	if w.Header().Get("Content-Length") != "" {
		t.Error("stale Content-Length header survived compression")
	}
	if !strings.Contains(w.Header().Get("Cache-Control"), "no-transform") {
		t.Error("compressed response missing no-transform")
	}
	if !bytes.Equal(gunzip(t, w.Body.Bytes()), body) {
		t.Error("decompressed body does not match original")
	}
}

func TestCompressionSmallBodyNeverCompressed(t *testing.T) {
	body := bytes.Repeat([]byte("a"), 500)

	w := serveCompressed(t, "gzip", jsonHandler(body))

	if w.Header().Get("Content-Encoding") != "" {
		t.Error("500-byte body should never be compressed")
	}
	if !bytes.Equal(w.Body.Bytes(), body) {
		t.Error("small body was modified")
	}
	if !strings.Contains(w.Header().Get("Cache-Control"), "no-transform") {
		t.Error("passthrough response missing no-transform")
	}
}

func TestCompressionSkipsImages(t *testing.T) {
	body := bytes.Repeat([]byte{0xFF}, 4096)
	w := serveCompressed(t, "gzip", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/webp")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Write(body)
	})

	if w.Header().Get("Content-Encoding") != "" {
		t.Error("image payload should never be compressed")
	}
	if !bytes.Equal(w.Body.Bytes(), body) {
		t.Error("image bytes were modified")
	}
}

func TestCompressionRequiresAcceptEncoding(t *testing.T) {
	body := bytes.Repeat([]byte("x"), 4096)

	w := serveCompressed(t, "", jsonHandler(body))
	if w.Header().Get("Content-Encoding") != "" {
		t.Error("compressed without client gzip support")
	}

	w = serveCompressed(t, "br", jsonHandler(body))
	if w.Header().Get("Content-Encoding") != "" {
		t.Error("compressed for a client that only accepts br")
	}
}

func TestCompressionUnknownLengthStillCompresses(t *testing.T) {
	// Without a declared length the size rule cannot apply.
	w := serveCompressed(t, "gzip", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(bytes.Repeat([]byte("y"), 2048))
	})
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Error("expected compression when length is undeclared")
	}
}

func TestCompressionPreservesStatusCode(t *testing.T) {
	w := serveCompressed(t, "gzip", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write(bytes.Repeat([]byte("e"), 2048))
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestLevelForContentTypes(t *testing.T) {
	config := DefaultCompressionConfig()

	tests := []struct {
		mediaType string
		want      int
	}{
		{"application/json", config.TextLevel},
		{"text/css", config.TextLevel},
		{"text/javascript", config.TextLevel},
		{"text/html", config.MarkupLevel},
		{"application/xml", config.MarkupLevel},
		{"text/plain", config.DefaultLevel},
		{"application/octet-stream", config.DefaultLevel},
	}
	for _, tt := range tests {
		if got := config.levelFor(tt.mediaType); got != tt.want {
			t.Errorf("levelFor(%q) = %d, want %d", tt.mediaType, got, tt.want)
		}
	}
}
