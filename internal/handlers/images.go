package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"image-gateway/internal/assets"
	"image-gateway/internal/cache"
	"image-gateway/internal/imageconv"
	"image-gateway/internal/logging"
	"image-gateway/internal/mediatypes"
	"image-gateway/internal/metrics"
	"image-gateway/internal/streaming"
)

// Cache disposition values reported in the X-Cache header.
const (
	cacheBypass = "BYPASS"
	cacheHit    = "HIT"
	cacheMiss   = "MISS"
)

// GetImage serves one image variant. The request names an origin image by
// identifier; the target format comes from the format parameter, Accept
// negotiation, or the path extension, and optional width/height trigger a
// cover-scaling resize. Responses carry X-Cache: BYPASS, HIT, or MISS.
func (h *Handlers) GetImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	imageID := vars["imageId"]
	pathExt := vars["ext"]

	width := parseDimension(r.URL.Query().Get("width"))
	height := parseDimension(r.URL.Query().Get("height"))

	asset, err := h.store.Locate(imageID)
	if err != nil {
		writeImageError(w, imageID, err)
		return
	}

	neg, err := h.store.Negotiate(imageID, r.URL.Query().Get("format"), r.Header.Get("Accept"), pathExt, asset.Format)
	if err != nil {
		writeImageError(w, imageID, err)
		return
	}

	// Target matches the file on disk and no resize was asked for: stream the
	// origin bytes without decoding and without populating the cache.
	if neg.Format == asset.Format && width == 0 && height == 0 {
		h.serveBypass(w, r, asset, neg)
		return
	}

	key := cache.NewKey(imageID, neg.Format, width, height)
	if entry, ok := h.responses.Get(key); ok {
		metrics.CacheHits.Inc()
		logging.Debug("GetImage: cache hit for %s as %s", imageID, neg.Format)
		setImageHeaders(w, entry.MimeType, cacheHit, neg.ByAccept, len(entry.Bytes))
		if _, err := w.Write(entry.Bytes); err != nil {
			logging.Debug("GetImage: write failed for %s: %v", imageID, err)
		}
		return
	}
	metrics.CacheMisses.Inc()

	payload, err := h.transcode(r.Context(), asset, neg.Format, width, height)
	if err != nil {
		writeImageError(w, imageID, err)
		return
	}

	h.responses.Set(key, payload, neg.Format.MimeType())
	setImageHeaders(w, neg.Format.MimeType(), cacheMiss, neg.ByAccept, len(payload))
	if _, err := w.Write(payload); err != nil {
		logging.Debug("GetImage: write failed for %s: %v", imageID, err)
	}
}

// serveBypass streams the origin file verbatim. The file handle is released
// on every exit path, including client disconnect mid-stream.
func (h *Handlers) serveBypass(w http.ResponseWriter, r *http.Request, asset *assets.Asset, neg assets.Negotiation) {
	f, err := os.Open(asset.Path)
	if err != nil {
		logging.Error("serveBypass: open %s: %v", asset.Path, err)
		writeImageError(w, asset.Path, assets.ErrBadOrigin)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		logging.Error("serveBypass: stat %s: %v", asset.Path, err)
		writeImageError(w, asset.Path, assets.ErrBadOrigin)
		return
	}

	metrics.CacheBypass.Inc()
	setImageHeaders(w, neg.Format.MimeType(), cacheBypass, neg.ByAccept, int(info.Size()))

	if _, err := streaming.Copy(r.Context(), w, f); err != nil {
		if errors.Is(err, streaming.ErrClientGone) {
			logging.Debug("serveBypass: client gone during %s", asset.Path)
		} else {
			logging.Error("serveBypass: stream %s: %v", asset.Path, err)
		}
	}
}

// transcode runs the full read-decode-resize-encode chain for one request.
// Codec work is bounded by the worker semaphore; waiting for a slot respects
// request cancellation.
func (h *Handlers) transcode(ctx context.Context, asset *assets.Asset, target mediatypes.Format, width, height int) ([]byte, error) {
	data, err := os.ReadFile(asset.Path)
	if err != nil {
		metrics.TranscodeErrors.WithLabelValues("read").Inc()
		return nil, fmt.Errorf("%w: read %s: %v", assets.ErrBadOrigin, asset.Path, err)
	}

	select {
	case h.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-h.sem }()

	start := time.Now()

	src, err := imageconv.For(asset.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrBadOrigin, err)
	}
	img, err := src.Decode(data)
	if err != nil {
		metrics.TranscodeErrors.WithLabelValues("decode").Inc()
		return nil, err
	}

	img = imageconv.Resize(img, width, height)

	dst, err := imageconv.For(target)
	if err != nil {
		return nil, err
	}
	payload, err := dst.Encode(img)
	if err != nil {
		metrics.TranscodeErrors.WithLabelValues("encode").Inc()
		return nil, err
	}

	duration := time.Since(start)
	metrics.TranscodeDuration.WithLabelValues(string(asset.Format), string(target)).Observe(duration.Seconds())
	logging.Debug("transcode: %s -> %s (%dx%d) in %v, %d bytes",
		asset.Format, target, width, height, duration, len(payload))
	return payload, nil
}

// setImageHeaders writes the response headers common to all three branches.
// Vary: Accept is set only when Accept-header negotiation picked the format,
// so shared caches split variants exactly when the response depends on the
// request's Accept value.
func setImageHeaders(w http.ResponseWriter, mimeType, disposition string, byAccept bool, size int) {
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.Itoa(size))
	w.Header().Set("X-Cache", disposition)
	if byAccept {
		w.Header().Set("Vary", "Accept")
	}
}

// parseDimension reads a width/height query value. Absent, malformed, or
// non-positive values all mean "no constraint on that axis".
func parseDimension(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// writeImageError maps the pipeline error taxonomy onto HTTP statuses:
// missing origin is 404, an unsupported target format is 501, and origin or
// codec failures are 500.
func writeImageError(w http.ResponseWriter, imageID string, err error) {
	var unsupported *mediatypes.UnsupportedFormatError
	var decodeErr *imageconv.DecodeError
	var encodeErr *imageconv.EncodeError

	switch {
	case errors.Is(err, assets.ErrNotFound):
		logging.Debug("GetImage: not found: %s", imageID)
		http.Error(w, "Image not found", http.StatusNotFound)
	case errors.As(err, &unsupported):
		logging.Warn("GetImage: unsupported format %q for %s", unsupported.Tag, imageID)
		http.Error(w, err.Error(), http.StatusNotImplemented)
	case errors.Is(err, assets.ErrBadOrigin):
		logging.Error("GetImage: %s: %v", imageID, err)
		http.Error(w, "Failed to load image", http.StatusInternalServerError)
	case errors.As(err, &decodeErr), errors.As(err, &encodeErr):
		logging.Error("GetImage: conversion failed for %s: %v", imageID, err)
		http.Error(w, "Image conversion failed", http.StatusInternalServerError)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// Client already went away; 499-style close without a body.
		logging.Debug("GetImage: request canceled for %s", imageID)
	default:
		logging.Error("GetImage: %s: %v", imageID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
