package backdrop

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// ErrNoFrame is returned when reading a sink that has not rendered yet.
var ErrNoFrame = errors.New("backdrop: nothing rendered yet")

// Overlay is a fixed decorative image drawn over the background at Rect.
// A zero Width or Height in Rect uses the image's own size.
type Overlay struct {
	Image image.Image
	Rect  Rect
}

// dstRect returns the overlay's destination rectangle in pixels.
func (o *Overlay) dstRect() image.Rectangle {
	r := o.Rect
	if r.Width <= 0 || r.Height <= 0 {
		b := o.Image.Bounds()
		r.Width, r.Height = float64(b.Dx()), float64(b.Dy())
	}
	return pixelRect(Point{r.X, r.Y}, r.Size())
}

// pixelRect rounds an offset and size to a pixel rectangle.
func pixelRect(at Point, s Size) image.Rectangle {
	x0 := int(math.Round(at.X))
	y0 := int(math.Round(at.Y))
	x1 := int(math.Round(at.X + s.Width))
	y1 := int(math.Round(at.Y + s.Height))
	return image.Rect(x0, y0, x1, y1)
}

// RasterRenderer is a RenderSink that composes frames in memory. It needs no
// graphics context, which makes it suitable for headless export.
type RasterRenderer struct {
	// Overlay, if set, is drawn over every frame.
	Overlay *Overlay
	// ClearColor fills the surface before the background is drawn.
	ClearColor color.Color

	img      *image.NRGBA
	rendered bool
}

// NewRasterRenderer creates a raster sink with a surface of the given size.
func NewRasterRenderer(viewport Size, overlay *Overlay) *RasterRenderer {
	w := int(math.Round(viewport.Width))
	h := int(math.Round(viewport.Height))
	return &RasterRenderer{
		Overlay:    overlay,
		ClearColor: color.Transparent,
		img:        image.NewNRGBA(image.Rect(0, 0, w, h)),
	}
}

// Render clears the surface and draws f followed by the overlay.
func (r *RasterRenderer) Render(f Frame) {
	dst := r.img
	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.ClearColor), image.Point{}, draw.Src)

	if f.Image != nil && !f.Size.Empty() {
		xdraw.BiLinear.Scale(dst, pixelRect(f.Offset, f.Size), f.Image, f.Image.Bounds(), draw.Over, nil)
	}
	if r.Overlay != nil && r.Overlay.Image != nil {
		xdraw.BiLinear.Scale(dst, r.Overlay.dstRect(), r.Overlay.Image, r.Overlay.Image.Bounds(), draw.Over, nil)
	}
	r.rendered = true
}

// Image returns a copy of the last rendered surface.
func (r *RasterRenderer) Image() (*image.NRGBA, error) {
	if !r.rendered {
		return nil, ErrNoFrame
	}
	return imaging.Clone(r.img), nil
}
