package backdrop

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScreenRenderer is a RenderSink that draws into an offscreen ebiten canvas
// the size of the viewport. Draw blits the canvas onto the screen and writes
// any queued exports.
//
// Render, Draw and QueueExport must be called from the ebiten game loop.
type ScreenRenderer struct {
	// Overlay, if set, is drawn over every frame.
	Overlay *Overlay
	// ClearColor fills the canvas before the background is drawn.
	ClearColor Color
	// ExportDir is where queued exports are written.
	ExportDir string

	size   Size
	canvas *ebiten.Image

	background upload
	overlay    upload
	retired    []*ebiten.Image // replaced uploads, freed after the next Draw
	uploadFn   func(image.Image) (*ebiten.Image, bool)

	op          ebiten.DrawImageOptions
	exportQueue []string
	lastExport  string
}

// upload is the GPU copy of a source image.
type upload struct {
	src   image.Image
	img   *ebiten.Image
	owned bool // img was created here and must be deallocated
}

// NewScreenRenderer creates a screen sink for the given viewport size.
func NewScreenRenderer(viewport Size, overlay *Overlay) *ScreenRenderer {
	return &ScreenRenderer{
		Overlay:   overlay,
		ExportDir: DefaultExportDir,
		size:      viewport,
		uploadFn:  toEbitenImage,
	}
}

// refresh uploads src into u when it differs from the current source. An
// owned previous upload is retired until the next Draw.
func (r *ScreenRenderer) refresh(u *upload, src image.Image) *ebiten.Image {
	if src != u.src {
		if u.owned {
			r.retired = append(r.retired, u.img)
		}
		u.src = src
		u.img, u.owned = r.uploadFn(src)
	}
	return u.img
}

// Render repaints the canvas from f.
func (r *ScreenRenderer) Render(f Frame) {
	if r.canvas == nil {
		w := max(int(math.Round(r.size.Width)), 1)
		h := max(int(math.Round(r.size.Height)), 1)
		r.canvas = ebiten.NewImage(w, h)
	}
	r.canvas.Fill(r.ClearColor)

	if f.Image != nil && !f.Size.Empty() {
		img := r.refresh(&r.background, f.Image)
		r.op.GeoM = fitGeoM(f.Image.Bounds(), f.Offset, f.Size)
		r.op.Filter = ebiten.FilterLinear
		r.canvas.DrawImage(img, &r.op)
	}

	if o := r.Overlay; o != nil && o.Image != nil {
		img := r.refresh(&r.overlay, o.Image)
		dr := o.dstRect()
		r.op.GeoM = fitGeoM(o.Image.Bounds(), Point{float64(dr.Min.X), float64(dr.Min.Y)},
			Size{float64(dr.Dx()), float64(dr.Dy())})
		r.op.Filter = ebiten.FilterLinear
		r.canvas.DrawImage(img, &r.op)
	}
}

// Draw blits the canvas onto screen at the given position, then flushes
// queued exports. Nothing is drawn before the first Render.
func (r *ScreenRenderer) Draw(screen *ebiten.Image, at Point) {
	if r.canvas == nil {
		return
	}
	r.op.GeoM.Reset()
	r.op.GeoM.Translate(at.X, at.Y)
	r.op.Filter = ebiten.FilterNearest
	screen.DrawImage(r.canvas, &r.op)

	r.flushExports()

	for i, img := range r.retired {
		img.Deallocate()
		r.retired[i] = nil
	}
	r.retired = r.retired[:0]
}

// QueueExport queues a PNG export of the canvas, written at the end of the
// next Draw. The file is named <ExportDir>/<timestamp>_<label>.png.
func (r *ScreenRenderer) QueueExport(label string) {
	r.exportQueue = append(r.exportQueue, label)
}

// LastExport returns the path of the most recently written export.
func (r *ScreenRenderer) LastExport() string {
	return r.lastExport
}

// flushExports reads the canvas back once and writes it for every queued
// label.
func (r *ScreenRenderer) flushExports() {
	if len(r.exportQueue) == 0 {
		return
	}
	b := r.canvas.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, 4*w*h)
	r.canvas.ReadPixels(pixels)
	img := straightAlpha(pixels, w, h)

	dir := r.ExportDir
	if dir == "" {
		dir = DefaultExportDir
	}
	for _, label := range r.exportQueue {
		path, err := ExportFile(dir, label, img)
		if err != nil {
			Logger().Warn("backdrop: export failed", "label", label, "err", err)
			continue
		}
		r.lastExport = path
	}
	r.exportQueue = r.exportQueue[:0]
}

// fitGeoM maps the source bounds onto a destination of size s at offset at.
func fitGeoM(src image.Rectangle, at Point, s Size) ebiten.GeoM {
	var m ebiten.GeoM
	if src.Dx() > 0 && src.Dy() > 0 {
		m.Scale(s.Width/float64(src.Dx()), s.Height/float64(src.Dy()))
	}
	m.Translate(at.X, at.Y)
	return m
}

// toEbitenImage uploads img, reporting whether the result is a new image
// owned by the caller.
func toEbitenImage(img image.Image) (*ebiten.Image, bool) {
	if ei, ok := img.(*ebiten.Image); ok {
		return ei, false
	}
	return ebiten.NewImageFromImage(img), true
}
