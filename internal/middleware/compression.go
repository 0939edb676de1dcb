package middleware

import (
	"compress/gzip"
	"net/http"
	"strconv"
	"strings"
)

// CompressionConfig holds configuration for the compression middleware
type CompressionConfig struct {
	// MinSize is the declared body size in bytes below which compression
	// is skipped
	MinSize int
	// TextLevel is the gzip level for structured text (scripts, styles,
	// JSON and other data interchange)
	TextLevel int
	// MarkupLevel is the gzip level for HTML and XML markup
	MarkupLevel int
	// DefaultLevel is the gzip level for everything else
	DefaultLevel int
}

// DefaultCompressionConfig returns sensible defaults for compression
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize:      1024, // 1KB minimum
		TextLevel:    6,
		MarkupLevel:  4,
		DefaultLevel: gzip.BestSpeed,
	}
}

// levelFor picks the gzip level for a media type. Structured text compresses
// well and is worth more CPU; markup slightly less; anything else gets the
// cheapest pass.
func (c CompressionConfig) levelFor(mediaType string) int {
	switch mediaType {
	case "application/json", "text/javascript", "application/javascript", "text/css":
		return c.TextLevel
	case "text/html", "text/xml", "application/xml", "application/xhtml+xml":
		return c.MarkupLevel
	}
	return c.DefaultLevel
}

// compressionWriter wraps http.ResponseWriter and decides once, before the
// first body byte, whether the response is gzip-compressed in flight.
type compressionWriter struct {
	http.ResponseWriter
	req        *http.Request
	config     CompressionConfig
	gzipWriter *gzip.Writer
	decided    bool
	compress   bool
}

func newCompressionWriter(w http.ResponseWriter, r *http.Request, config CompressionConfig) *compressionWriter {
	return &compressionWriter{
		ResponseWriter: w,
		req:            r,
		config:         config,
	}
}

// WriteHeader triggers the compression decision; headers are final by then.
func (cw *compressionWriter) WriteHeader(statusCode int) {
	if cw.decided {
		return
	}
	cw.decide(statusCode)
}

// Write passes each chunk through the gzip stream as it flows; nothing
// buffers the whole body.
func (cw *compressionWriter) Write(data []byte) (int, error) {
	if !cw.decided {
		cw.decide(http.StatusOK)
	}
	if cw.compress {
		return cw.gzipWriter.Write(data)
	}
	return cw.ResponseWriter.Write(data)
}

// decide applies the short-circuit rules: small declared bodies, image
// payloads, and clients without gzip support are passed through untouched.
// Every outcome marks the response no-transform so intermediaries leave the
// body alone.
func (cw *compressionWriter) decide(statusCode int) {
	cw.decided = true
	header := cw.Header()

	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(header.Get("Content-Type"), ";")[0]))

	declaredSize := -1
	if cl := header.Get("Content-Length"); cl != "" {
		if n, err := strconv.Atoi(cl); err == nil {
			declaredSize = n
		}
	}

	switch {
	case declaredSize >= 0 && declaredSize < cw.config.MinSize:
		// Too small to be worth the frame overhead.
	case strings.HasPrefix(mediaType, "image/"):
		// Already-compressed binary formats gain nothing.
	case !acceptsGzip(cw.req):
	default:
		header.Del("Content-Length")
		header.Set("Content-Encoding", "gzip")
		header.Add("Cache-Control", "no-transform")

		gz, err := gzip.NewWriterLevel(cw.ResponseWriter, cw.config.levelFor(mediaType))
		if err != nil {
			// Only invalid levels fail; fall back to the default.
			gz = gzip.NewWriter(cw.ResponseWriter)
		}
		cw.gzipWriter = gz
		cw.compress = true
		cw.ResponseWriter.WriteHeader(statusCode)
		return
	}

	header.Add("Cache-Control", "no-transform")
	cw.ResponseWriter.WriteHeader(statusCode)
}

// Close finalizes the gzip stream for compressed responses.
func (cw *compressionWriter) Close() error {
	if !cw.decided {
		cw.decide(http.StatusOK)
	}
	if cw.gzipWriter != nil {
		err := cw.gzipWriter.Close()
		cw.gzipWriter = nil
		return err
	}
	return nil
}

// Flush implements http.Flusher
func (cw *compressionWriter) Flush() {
	if !cw.decided {
		cw.decide(http.StatusOK)
	}
	if cw.gzipWriter != nil {
		cw.gzipWriter.Flush()
	}
	if flusher, ok := cw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Push implements http.Pusher for HTTP/2 support
func (cw *compressionWriter) Push(target string, opts *http.PushOptions) error {
	if pusher, ok := cw.ResponseWriter.(http.Pusher); ok {
		return pusher.Push(target, opts)
	}
	return http.ErrNotSupported
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

// Compression returns a middleware that conditionally gzip-compresses
// responses as they stream out.
func Compression(config CompressionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := newCompressionWriter(w, r, config)
			defer cw.Close()

			next.ServeHTTP(cw, r)
		})
	}
}
