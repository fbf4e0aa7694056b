package backdrop

import (
	"image"
	"math"
)

// MinZoomFactor is the smallest zoom factor accepted by SetZoom. At 1 the
// image exactly covers the viewport on its tighter axis.
const MinZoomFactor = 1.0

// ViewportProvider exposes the size of the fixed drawing surface.
type ViewportProvider interface {
	ViewportSize() Size
}

// Frame is what a RenderSink needs to repaint: the background handle, its
// top-left offset in viewport space, and its scaled size.
type Frame struct {
	Image  image.Image
	Offset Point
	Size   Size
}

// RenderSink redraws its surface from a Frame. The engine calls Render after
// every committed change.
type RenderSink interface {
	Render(f Frame)
}

// ImageState is the transform the engine maintains for the loaded background.
type ImageState struct {
	NaturalSize       Size
	MinimumScaledSize Size // fit-to-viewport size at zoom 1
	CurrentScaledSize Size
	LastScaledSize    Size // scaled size before the most recent zoom step

	Offset     Point
	LastOffset Point // baseline the next drag is relative to
	MinOffset  Point
	MaxOffset  Point // always (0,0)
}

// Engine keeps a panned and zoomed background image aligned inside a fixed
// viewport without ever exposing space outside the image.
//
// Engine is not safe for concurrent use. All methods are expected to run on
// the goroutine that processes input events, in arrival order. Before the
// first Load every input method is a no-op.
type Engine struct {
	viewport Size
	sink     RenderSink

	img      image.Image
	state    ImageState
	cursor   CursorTracker
	dragging bool
	zoom     float64
}

// NewEngine creates an engine for the viewport's current size. The viewport
// is sampled once; resizing is not tracked. sink may be nil.
func NewEngine(viewport ViewportProvider, sink RenderSink) *Engine {
	return &Engine{
		viewport: viewport.ViewportSize(),
		sink:     sink,
		zoom:     MinZoomFactor,
	}
}

// SetSink replaces the render sink and immediately renders into it if an
// image is loaded.
func (e *Engine) SetSink(sink RenderSink) {
	e.sink = sink
	e.render()
}

// Load replaces the image state wholesale with the fit-to-viewport default
// for img: zoom 1, offset zeroed, any drag in progress dropped.
// A nil or empty image is ignored.
func (e *Engine) Load(img image.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	natural := Size{float64(b.Dx()), float64(b.Dy())}
	if natural.Empty() {
		Logger().Warn("backdrop: ignoring empty image", "bounds", b)
		return
	}
	e.img = img
	e.reset()
	Logger().Info("backdrop: image loaded",
		"width", natural.Width, "height", natural.Height,
		"scaledWidth", e.state.MinimumScaledSize.Width,
		"scaledHeight", e.state.MinimumScaledSize.Height)
	e.render()
}

// Reset restores the fit-to-viewport default for the current image without
// reloading it.
func (e *Engine) Reset() {
	if !e.Loaded() {
		return
	}
	e.reset()
	e.render()
}

func (e *Engine) reset() {
	b := e.img.Bounds()
	natural := Size{float64(b.Dx()), float64(b.Dy())}

	fit := 1.0
	if !e.viewport.Empty() {
		fit = math.Max(e.viewport.Width/natural.Width, e.viewport.Height/natural.Height)
	}
	minimum := natural.Scale(fit)

	e.state = ImageState{
		NaturalSize:       natural,
		MinimumScaledSize: minimum,
		CurrentScaledSize: minimum,
		LastScaledSize:    minimum,
		MinOffset:         MinOffset(e.viewport, minimum),
		MaxOffset:         MaxOffset(),
	}
	e.state.Offset = Clamp(Point{}, e.state.MinOffset, e.state.MaxOffset)
	e.state.LastOffset = e.state.Offset
	e.zoom = MinZoomFactor
	e.dragging = false
	e.cursor.EndTrack()
}

// BeginDrag starts a drag anchored at p. The pointer is at p until the next
// Drag reports otherwise.
func (e *Engine) BeginDrag(p Point) {
	if !e.Loaded() {
		return
	}
	e.dragging = true
	e.cursor.BeginTrack(p)
	e.cursor.Update(p)
}

// Drag moves the image by the pointer's travel since BeginDrag, relative to
// where the previous drag ended, clamped to the current bounds. While idle it
// only records the pointer position.
func (e *Engine) Drag(p Point) {
	if !e.Loaded() {
		return
	}
	e.cursor.Update(p)
	if !e.dragging {
		return
	}
	d, ok := e.cursor.Delta()
	if !ok {
		return
	}
	s := &e.state
	s.Offset = Clamp(s.LastOffset.Add(d), s.MinOffset, s.MaxOffset)
	e.render()
}

// EndDrag finishes a drag, making the current offset the baseline for the
// next one. Without a matching BeginDrag it does nothing.
func (e *Engine) EndDrag() {
	if !e.dragging {
		return
	}
	e.dragging = false
	e.cursor.EndTrack()
	e.state.LastOffset = e.state.Offset
	Logger().Debug("backdrop: drag committed", "x", e.state.Offset.X, "y", e.state.Offset.Y)
}

// SetZoom scales the image to factor times its fit-to-viewport size, keeping
// the content under the viewport center in place as far as the bounds allow.
// Factors below MinZoomFactor and NaN are raised to MinZoomFactor; +Inf is
// ignored.
func (e *Engine) SetZoom(factor float64) {
	if !e.Loaded() || math.IsInf(factor, 1) {
		return
	}
	if math.IsNaN(factor) || factor < MinZoomFactor {
		factor = MinZoomFactor
	}
	s := &e.state

	s.LastScaledSize = s.CurrentScaledSize
	s.CurrentScaledSize = s.MinimumScaledSize.Scale(factor)
	s.MinOffset = MinOffset(e.viewport, s.CurrentScaledSize)

	// Share of the old image lying between its top-left and the viewport
	// center; the same share of the growth is taken off the offset.
	anchor := e.viewport.Center().Sub(s.Offset).Div(s.LastScaledSize.Point())
	growth := s.CurrentScaledSize.Point().Sub(s.LastScaledSize.Point())
	shifted := s.Offset.Sub(growth.Mul(anchor))

	s.Offset = Clamp(shifted, s.MinOffset, s.MaxOffset)
	s.LastOffset = s.Offset
	e.zoom = factor

	// A drag in progress continues from here instead of jumping back.
	if e.dragging {
		if p, ok := e.cursor.Position(); ok {
			e.cursor.BeginTrack(p)
		}
	}

	Logger().Debug("backdrop: zoom committed", "factor", factor,
		"x", s.Offset.X, "y", s.Offset.Y,
		"width", s.CurrentScaledSize.Width, "height", s.CurrentScaledSize.Height)
	e.render()
}

// Nudge pans the image by delta outside of a drag, e.g. from arrow keys.
// Ignored while dragging.
func (e *Engine) Nudge(delta Point) {
	if !e.Loaded() || e.dragging {
		return
	}
	s := &e.state
	s.Offset = Clamp(s.Offset.Add(delta), s.MinOffset, s.MaxOffset)
	s.LastOffset = s.Offset
	e.render()
}

// Loaded reports whether a background image has been loaded.
func (e *Engine) Loaded() bool {
	return e.img != nil
}

// Dragging reports whether a drag is in progress.
func (e *Engine) Dragging() bool {
	return e.dragging
}

// Zoom returns the current zoom factor.
func (e *Engine) Zoom() float64 {
	return e.zoom
}

// Viewport returns the viewport size sampled at construction.
func (e *Engine) Viewport() Size {
	return e.viewport
}

// State returns a copy of the image state.
func (e *Engine) State() ImageState {
	return e.state
}

// Cursor returns a copy of the cursor bookkeeping.
func (e *Engine) Cursor() CursorTracker {
	return e.cursor
}

// Frame returns what a render sink would receive right now. Image is nil
// before the first Load.
func (e *Engine) Frame() Frame {
	return Frame{
		Image:  e.img,
		Offset: e.state.Offset,
		Size:   e.state.CurrentScaledSize,
	}
}

func (e *Engine) render() {
	if e.sink == nil || !e.Loaded() {
		return
	}
	e.sink.Render(e.Frame())
}
