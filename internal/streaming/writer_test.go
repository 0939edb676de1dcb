package streaming

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCopyCompleteBody(t *testing.T) {
	body := strings.Repeat("abcdefgh", 10_000)
	w := httptest.NewRecorder()

	n, err := Copy(context.Background(), w, strings.NewReader(body))
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if n != int64(len(body)) {
		t.Errorf("wrote %d bytes, want %d", n, len(body))
	}
	if w.Body.String() != body {
		t.Error("body corrupted in transit")
	}
	if !w.Flushed {
		t.Error("expected at least one flush")
	}
}

func TestCopyChunkedSmallChunks(t *testing.T) {
	body := bytes.Repeat([]byte{0xAB}, 1000)
	w := httptest.NewRecorder()

	n, err := CopyChunked(context.Background(), w, bytes.NewReader(body), Config{ChunkSize: 7})
	if err != nil {
		t.Fatalf("CopyChunked: %v", err)
	}
	if n != 1000 {
		t.Errorf("wrote %d bytes, want 1000", n)
	}
	if !bytes.Equal(w.Body.Bytes(), body) {
		t.Error("body corrupted in transit")
	}
}

func TestCopyCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	_, err := Copy(ctx, w, strings.NewReader("never delivered"))
	if !errors.Is(err, ErrClientGone) {
		t.Errorf("expected ErrClientGone, got %v", err)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected no bytes written after cancellation, got %d", w.Body.Len())
	}
}

// errReader fails after its content is exhausted.
type errReader struct {
	data []byte
	err  error
	pos  int
}

func (r *errReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, r.err
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func TestCopyReadError(t *testing.T) {
	boom := errors.New("boom")
	w := httptest.NewRecorder()

	n, err := CopyChunked(context.Background(), w, &errReader{data: []byte("partial"), err: boom}, Config{ChunkSize: 4})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped read error, got %v", err)
	}
	if n != int64(len("partial")) {
		t.Errorf("expected partial bytes delivered before failure, got %d", n)
	}
}
