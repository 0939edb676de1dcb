package imageconv

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Resize cover-scales img so that each output dimension is at least the
// corresponding requested dimension while preserving the aspect ratio.
//
// The scale factor is max(width/originWidth, height/originHeight); a zero
// target dimension contributes nothing, and with both zero the factor is 1.
// Both axes are scaled by the same factor and independently rounded up, so
// the result can exceed the requested box on one axis. It is never cropped.
//
// The buffer is re-resampled even at scale 1 so format conversion always
// flows through the same path.
func Resize(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	ow, oh := b.Dx(), b.Dy()

	var scale float64
	if width > 0 && ow > 0 {
		scale = float64(width) / float64(ow)
	}
	if height > 0 && oh > 0 {
		if s := float64(height) / float64(oh); s > scale {
			scale = s
		}
	}
	if scale == 0 {
		scale = 1
	}

	outW := int(math.Ceil(float64(ow) * scale))
	outH := int(math.Ceil(float64(oh) * scale))

	return imaging.Resize(img, outW, outH, imaging.Lanczos)
}
