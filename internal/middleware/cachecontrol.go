package middleware

import (
	"net/http"
	"strings"
)

// CacheControlConfig holds the directive values emitted per resource class
type CacheControlConfig struct {
	// Immutable is used for images, scripts, styles and asset paths
	Immutable string
	// Revalidate is used for structured data and markup
	Revalidate string
	// NoStore is used for everything else
	NoStore string
	// AssetPathMarkers force the immutable class by request path
	AssetPathMarkers []string
}

// DefaultCacheControlConfig returns the default resource classification
func DefaultCacheControlConfig() CacheControlConfig {
	return CacheControlConfig{
		Immutable:        "public, max-age=31536000, immutable",
		Revalidate:       "private, max-age=0, must-revalidate",
		NoStore:          "private, no-store",
		AssetPathMarkers: []string{"/images/", "/assets/"},
	}
}

// cacheControlWriter defers the Cache-Control decision until the response
// headers are final.
type cacheControlWriter struct {
	http.ResponseWriter
	path        string
	config      CacheControlConfig
	wroteHeader bool
}

func (ccw *cacheControlWriter) WriteHeader(statusCode int) {
	if ccw.wroteHeader {
		return
	}
	ccw.wroteHeader = true
	ccw.setDirective()
	ccw.ResponseWriter.WriteHeader(statusCode)
}

func (ccw *cacheControlWriter) Write(data []byte) (int, error) {
	if !ccw.wroteHeader {
		ccw.WriteHeader(http.StatusOK)
	}
	return ccw.ResponseWriter.Write(data)
}

// Flush implements http.Flusher
func (ccw *cacheControlWriter) Flush() {
	if !ccw.wroteHeader {
		ccw.WriteHeader(http.StatusOK)
	}
	if flusher, ok := ccw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// setDirective collapses any accumulated Cache-Control values into the
// single classification for this response, folding in a no-transform marker
// left by the compression stage.
func (ccw *cacheControlWriter) setDirective() {
	header := ccw.Header()

	noTransform := false
	for _, v := range header.Values("Cache-Control") {
		if strings.Contains(v, "no-transform") {
			noTransform = true
			break
		}
	}

	value := ccw.classify(header.Get("Content-Type"))
	if noTransform {
		value += ", no-transform"
	}
	header.Set("Cache-Control", value)
}

// classify picks the directive for a response by media type and path.
func (ccw *cacheControlWriter) classify(contentType string) string {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))

	if strings.HasPrefix(mediaType, "image/") {
		return ccw.config.Immutable
	}
	for _, marker := range ccw.config.AssetPathMarkers {
		if strings.Contains(ccw.path, marker) {
			return ccw.config.Immutable
		}
	}

	switch mediaType {
	case "text/css", "text/javascript", "application/javascript":
		return ccw.config.Immutable
	case "application/json", "text/html", "text/xml", "application/xml", "application/xhtml+xml":
		return ccw.config.Revalidate
	}
	return ccw.config.NoStore
}

// CacheControl returns a middleware that sets HTTP caching directives by
// resource class. Mount it outside Compression so it observes the final
// Content-Type and the no-transform marker.
func CacheControl(config CacheControlConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ccw := &cacheControlWriter{
				ResponseWriter: w,
				path:           r.URL.Path,
				config:         config,
			}
			next.ServeHTTP(ccw, r)
		})
	}
}
