// Package mediatypes provides the image format vocabulary shared across the
// image-gateway application.
//
// This package exists as a dependency-free foundation that can be imported by
// other packages without creating import cycles. It contains the Format enum,
// tag/extension parsing, and MIME type mapping, with no dependencies beyond
// the standard library.
//
// # Formats
//
// The gateway serves a closed set of five codecs:
//
//	mediatypes.FormatJXL  // JPEG XL
//	mediatypes.FormatAVIF // AVIF
//	mediatypes.FormatWebP // WebP
//	mediatypes.FormatPNG  // PNG
//	mediatypes.FormatJPEG // JPEG ("jpeg" and "jpg" are tags for the same codec)
//
// # Parsing
//
// Use ParseFormat to resolve a request tag or file extension:
//
//	f, err := mediatypes.ParseFormat("jpg") // FormatJPEG
//	f, err := mediatypes.ParseFormat(".webp")
//
// A tag outside the supported set yields an *UnsupportedFormatError, which
// handlers translate to 501 Not Implemented.
//
// # MIME Types
//
// Use Format.MimeType for HTTP responses:
//
//	w.Header().Set("Content-Type", f.MimeType()) // e.g. "image/avif"
package mediatypes
