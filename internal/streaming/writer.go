package streaming

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrClientGone indicates that the client disconnected before the stream
// completed. This is detected via the request context being canceled.
var ErrClientGone = errors.New("client disconnected")

// Config configures chunked copying.
type Config struct {
	// ChunkSize is the size of chunks to read and write.
	ChunkSize int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{ChunkSize: 64 * 1024}
}

// Copy streams r to w with the default configuration.
func Copy(ctx context.Context, w http.ResponseWriter, r io.Reader) (int64, error) {
	return CopyChunked(ctx, w, r, DefaultConfig())
}

// CopyChunked streams r to w in cfg.ChunkSize chunks. The context is checked
// before every chunk; cancellation returns ErrClientGone wrapped around the
// context error. When w implements http.Flusher each chunk is flushed as it
// is written.
func CopyChunked(ctx context.Context, w http.ResponseWriter, r io.Reader, cfg Config) (int64, error) {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultConfig().ChunkSize
	}
	flusher, _ := w.(http.Flusher)

	buf := make([]byte, cfg.ChunkSize)
	var written int64
	for {
		select {
		case <-ctx.Done():
			return written, fmt.Errorf("%w: %v", ErrClientGone, ctx.Err())
		default:
		}

		n, rerr := r.Read(buf)
		if n > 0 {
			wn, werr := w.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, fmt.Errorf("write: %w", werr)
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, fmt.Errorf("read: %w", rerr)
		}
	}
}
