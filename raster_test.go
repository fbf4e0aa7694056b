package backdrop

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
	green = color.NRGBA{0, 255, 0, 255}
)

// splitImage returns a w x h image, red on the left half and blue on the right.
func splitImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.SetNRGBA(x, y, red)
			} else {
				img.SetNRGBA(x, y, blue)
			}
		}
	}
	return img
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestRasterRendererNoFrame(t *testing.T) {
	r := NewRasterRenderer(Size{4, 4}, nil)
	if _, err := r.Image(); !errors.Is(err, ErrNoFrame) {
		t.Errorf("err = %v, want ErrNoFrame", err)
	}
}

func TestRasterRendererFit(t *testing.T) {
	r := NewRasterRenderer(Size{4, 4}, nil)
	e := NewEngine(Size{4, 4}, r)
	e.Load(splitImage(8, 8))

	img, err := r.Image()
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v, want 4x4", got)
	}
	if got := img.NRGBAAt(0, 0); got != red {
		t.Errorf("(0,0) = %v, want red", got)
	}
	if got := img.NRGBAAt(3, 3); got != blue {
		t.Errorf("(3,3) = %v, want blue", got)
	}
}

func TestRasterRendererZoomedPan(t *testing.T) {
	r := NewRasterRenderer(Size{4, 4}, nil)
	e := NewEngine(Size{4, 4}, r)
	e.Load(splitImage(8, 8))
	e.SetZoom(2) // 1:1 with the source, centered at (-2, -2)

	img, err := r.Image()
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(1, 0); got != red {
		t.Errorf("(1,0) = %v, want red", got)
	}
	if got := img.NRGBAAt(2, 0); got != blue {
		t.Errorf("(2,0) = %v, want blue", got)
	}

	e.Nudge(Point{10, 0}) // clamps to the left edge
	img, _ = r.Image()
	for x := 0; x < 4; x++ {
		if got := img.NRGBAAt(x, 1); got != red {
			t.Errorf("after nudge (%d,1) = %v, want red", x, got)
		}
	}
}

func TestRasterRendererOverlay(t *testing.T) {
	overlay := &Overlay{Image: solidImage(2, 2, green), Rect: Rect{X: 1, Y: 1}}
	r := NewRasterRenderer(Size{4, 4}, overlay)
	e := NewEngine(Size{4, 4}, r)
	e.Load(solidImage(8, 8, red))

	img, _ := r.Image()
	if got := img.NRGBAAt(0, 0); got != red {
		t.Errorf("(0,0) = %v, want red", got)
	}
	for _, p := range []image.Point{{1, 1}, {2, 2}} {
		if got := img.NRGBAAt(p.X, p.Y); got != green {
			t.Errorf("%v = %v, want green", p, got)
		}
	}
}

func TestRasterRendererImageIsCopy(t *testing.T) {
	r := NewRasterRenderer(Size{2, 2}, nil)
	NewEngine(Size{2, 2}, r).Load(solidImage(2, 2, red))

	a, _ := r.Image()
	a.SetNRGBA(0, 0, blue)
	b, _ := r.Image()
	if got := b.NRGBAAt(0, 0); got != red {
		t.Errorf("surface modified through returned image: %v", got)
	}
}
