// Package imageconv implements the codec layer of the gateway: a static
// registry of per-format decoders/encoders and the cover-style resize
// operation applied between decode and encode.
//
// # Converters
//
// Each supported mediatypes.Format maps to exactly one Converter. Selection
// happens through a switch over the closed format enum, so adding a format
// without a converter is a compile-visible gap rather than a runtime lookup
// failure:
//
//	dec, err := imageconv.For(mediatypes.FormatPNG)
//	img, err := dec.Decode(data)
//	out, err := enc.Encode(img)
//
// PNG and JPEG use the standard library codecs. WebP decodes through
// golang.org/x/image/webp and encodes through github.com/chai2010/webp.
// AVIF and JPEG XL use the github.com/gen2brain codecs.
//
// Converters never resize; that is exclusively Resize's job.
//
// # Resize
//
// Resize performs uniform "cover" scaling: the output is the smallest image
// whose dimensions each meet or exceed the requested dimensions while
// preserving the origin's aspect ratio. It never crops. Consumers that want
// an exact box are expected to crop client-side.
package imageconv
