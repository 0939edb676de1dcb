package mediatypes

import "strings"

// Format identifies one of the image codecs the gateway can serve.
type Format string

const (
	// FormatJXL is JPEG XL.
	FormatJXL Format = "jxl"
	// FormatAVIF is AVIF.
	FormatAVIF Format = "avif"
	// FormatWebP is WebP.
	FormatWebP Format = "webp"
	// FormatPNG is PNG.
	FormatPNG Format = "png"
	// FormatJPEG is JPEG. The "jpg" tag parses to this format as well.
	FormatJPEG Format = "jpeg"
)

// Formats lists every supported format in a stable order.
func Formats() []Format {
	return []Format{FormatJXL, FormatAVIF, FormatWebP, FormatPNG, FormatJPEG}
}

// UnsupportedFormatError is returned when a request names a format tag
// outside the supported set.
type UnsupportedFormatError struct {
	Tag string
}

func (e *UnsupportedFormatError) Error() string {
	return "unsupported image format: " + e.Tag
}

// ParseFormat resolves a format tag or file extension (with or without the
// leading dot) to a Format. Matching is case-insensitive.
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(tag, ".")) {
	case "jxl":
		return FormatJXL, nil
	case "avif":
		return FormatAVIF, nil
	case "webp":
		return FormatWebP, nil
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	}
	return "", &UnsupportedFormatError{Tag: tag}
}

// MimeType returns the MIME type served for the format.
func (f Format) MimeType() string {
	return "image/" + string(f)
}

// Ext returns the canonical file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}
