// Package assets locates origin image files and resolves the format a
// request is served in.
//
// The asset store is a flat directory of files named <imageId> or
// <imageId>.<ext>, with optional precomputed sibling variants sharing the
// same stem under a different extension. The store only reads; ingestion is
// somebody else's problem.
//
// Negotiation resolves the target format from, in order: an explicit format
// parameter, Accept-header WebP signaling combined with an on-disk .webp
// sibling, and the format implied by the request path (falling back to the
// origin file's own extension).
package assets
