package imageconv

import (
	"image"
	"testing"
)

func testImage(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestResizeCoverScaling(t *testing.T) {
	tests := []struct {
		name           string
		origW, origH   int
		width, height  int
		wantW, wantH   int
	}{
		// scale = max(100/200, 50/200) = 0.5, both axes scaled uniformly
		{"wider box wins", 200, 200, 100, 50, 100, 100},
		{"taller box wins", 200, 200, 50, 100, 100, 100},
		{"width only", 200, 100, 100, 0, 100, 50},
		{"height only", 200, 100, 0, 50, 100, 50},
		{"no constraint keeps size", 200, 100, 0, 0, 200, 100},
		{"upscale", 100, 100, 150, 0, 150, 150},
		// scale = 2/3: 5*2/3 = 3.33 rounds up to 4
		{"independent ceil", 3, 5, 2, 0, 2, 4},
		{"exact fit", 400, 300, 200, 150, 200, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Resize(testImage(tt.origW, tt.origH), tt.width, tt.height)
			b := out.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Resize(%dx%d, %d, %d) = %dx%d, want %dx%d",
					tt.origW, tt.origH, tt.width, tt.height, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResizeNeverUndershootsRequestedBox(t *testing.T) {
	out := Resize(testImage(640, 480), 100, 100)
	b := out.Bounds()
	if b.Dx() < 100 || b.Dy() < 100 {
		t.Errorf("output %dx%d smaller than requested box on some axis", b.Dx(), b.Dy())
	}
}

func TestResizeIdentityReprocesses(t *testing.T) {
	src := testImage(32, 32)
	out := Resize(src, 0, 0)
	if out == src {
		t.Error("expected a fresh buffer even at scale 1")
	}
	b := out.Bounds()
	if b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("identity resize changed dimensions to %dx%d", b.Dx(), b.Dy())
	}
}
