package imageconv

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"image-gateway/internal/mediatypes"

	"github.com/chai2010/webp"
	"github.com/gen2brain/avif"
	"github.com/gen2brain/jpegxl"
	xwebp "golang.org/x/image/webp"
)

// Encoder quality settings. Lossy targets use web-oriented defaults in line
// with the precomputed asset variants.
const (
	jpegQuality = 85
	webpQuality = 85
	avifQuality = 60
	avifSpeed   = 8
	jxlQuality  = 75
	jxlEffort   = 5
)

// DecodeError wraps a codec failure on malformed or truncated input.
type DecodeError struct {
	Format mediatypes.Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError wraps a codec failure or an invalid pixel buffer.
type EncodeError struct {
	Format mediatypes.Format
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Converter decodes and encodes a single image format. Implementations are
// stateless and safe for concurrent use.
type Converter interface {
	Decode(data []byte) (image.Image, error)
	Encode(img image.Image) ([]byte, error)
}

// For returns the converter for f. The format set is closed; tags outside it
// are rejected by mediatypes.ParseFormat before reaching this point, so the
// fallthrough only fires on a Format value constructed by hand.
func For(f mediatypes.Format) (Converter, error) {
	switch f {
	case mediatypes.FormatJXL:
		return jxlConverter{}, nil
	case mediatypes.FormatAVIF:
		return avifConverter{}, nil
	case mediatypes.FormatWebP:
		return webpConverter{}, nil
	case mediatypes.FormatPNG:
		return pngConverter{}, nil
	case mediatypes.FormatJPEG:
		return jpegConverter{}, nil
	}
	return nil, &mediatypes.UnsupportedFormatError{Tag: string(f)}
}

// checkEncodable rejects pixel buffers no encoder can accept.
func checkEncodable(f mediatypes.Format, img image.Image) error {
	if img == nil {
		return &EncodeError{Format: f, Err: fmt.Errorf("nil image")}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return &EncodeError{Format: f, Err: fmt.Errorf("invalid dimensions %dx%d", b.Dx(), b.Dy())}
	}
	return nil
}

type pngConverter struct{}

func (pngConverter) Decode(data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: mediatypes.FormatPNG, Err: err}
	}
	return img, nil
}

func (pngConverter) Encode(img image.Image) ([]byte, error) {
	if err := checkEncodable(mediatypes.FormatPNG, img); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &EncodeError{Format: mediatypes.FormatPNG, Err: err}
	}
	return buf.Bytes(), nil
}

type jpegConverter struct{}

func (jpegConverter) Decode(data []byte) (image.Image, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: mediatypes.FormatJPEG, Err: err}
	}
	return img, nil
}

func (jpegConverter) Encode(img image.Image) ([]byte, error) {
	if err := checkEncodable(mediatypes.FormatJPEG, img); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, &EncodeError{Format: mediatypes.FormatJPEG, Err: err}
	}
	return buf.Bytes(), nil
}

// webpConverter decodes through x/image (decode-only) and encodes through
// chai2010/webp.
type webpConverter struct{}

func (webpConverter) Decode(data []byte) (image.Image, error) {
	img, err := xwebp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: mediatypes.FormatWebP, Err: err}
	}
	return img, nil
}

func (webpConverter) Encode(img image.Image) ([]byte, error) {
	if err := checkEncodable(mediatypes.FormatWebP, img); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, &EncodeError{Format: mediatypes.FormatWebP, Err: err}
	}
	return buf.Bytes(), nil
}

type avifConverter struct{}

func (avifConverter) Decode(data []byte) (image.Image, error) {
	img, err := avif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: mediatypes.FormatAVIF, Err: err}
	}
	return img, nil
}

func (avifConverter) Encode(img image.Image) ([]byte, error) {
	if err := checkEncodable(mediatypes.FormatAVIF, img); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := avif.Encode(&buf, img, avif.Options{Quality: avifQuality, Speed: avifSpeed}); err != nil {
		return nil, &EncodeError{Format: mediatypes.FormatAVIF, Err: err}
	}
	return buf.Bytes(), nil
}

type jxlConverter struct{}

func (jxlConverter) Decode(data []byte) (image.Image, error) {
	img, err := jpegxl.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: mediatypes.FormatJXL, Err: err}
	}
	return img, nil
}

func (jxlConverter) Encode(img image.Image) ([]byte, error) {
	if err := checkEncodable(mediatypes.FormatJXL, img); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := jpegxl.Encode(&buf, img, jpegxl.Options{Quality: jxlQuality, Effort: jxlEffort}); err != nil {
		return nil, &EncodeError{Format: mediatypes.FormatJXL, Err: err}
	}
	return buf.Bytes(), nil
}
