package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerEventKind identifies a kind of pointer event.
type PointerEventKind uint8

const (
	PointerDown  PointerEventKind = iota // button pressed inside the viewport
	PointerMove                          // pointer moved inside the viewport
	PointerUp                            // button released inside the viewport
	PointerLeave                         // pointer left the viewport
	pointerKindCount
)

// String returns the event name.
func (k PointerEventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event with a viewport-relative position.
type PointerEvent struct {
	Kind PointerEventKind
	Pos  Point
}

// PointerSample is one frame of raw pointer state in screen coordinates.
type PointerSample struct {
	X, Y    float64
	Pressed bool
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type handlerRegistry struct {
	byKind [pointerKindCount][]pointerHandler
	nextID uint32
}

// CallbackHandle allows removing a registered pointer callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind PointerEventKind
}

// Remove unregisters the callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.kind >= pointerKindCount {
		return
	}
	s := h.reg.byKind[h.kind]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			h.reg.byKind[h.kind] = s[:len(s)-1]
			return
		}
	}
}

// --- Pointer input ---

// PointerInput turns per-frame mouse state into down/move/up/leave events
// relative to Viewport. Handlers run synchronously, in registration order,
// on the goroutine calling Update.
type PointerInput struct {
	// Viewport is the screen-space rectangle events are reported in.
	Viewport Rect

	handlers handlerRegistry

	pressed bool // raw button state last frame
	down    bool // a press that started inside the viewport is held
	inside  bool
	last    Point
	hasLast bool

	injectQueue []PointerSample
}

// NewPointerInput creates an input source for the given screen rectangle.
func NewPointerInput(viewport Rect) *PointerInput {
	return &PointerInput{Viewport: viewport}
}

// OnPointer registers fn for events of the given kind.
func (in *PointerInput) OnPointer(kind PointerEventKind, fn func(PointerEvent)) CallbackHandle {
	in.handlers.nextID++
	id := in.handlers.nextID
	in.handlers.byKind[kind] = append(in.handlers.byKind[kind], pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &in.handlers, kind: kind}
}

// Down reports whether a press that started inside the viewport is held.
func (in *PointerInput) Down() bool {
	return in.down
}

// Update samples the pointer and dispatches the resulting events.
func (in *PointerInput) Update() {
	in.Process(in.Sample())
}

// Sample returns this frame's pointer state. A queued synthetic sample takes
// precedence over the real mouse.
func (in *PointerInput) Sample() PointerSample {
	if len(in.injectQueue) > 0 {
		s := in.injectQueue[0]
		copy(in.injectQueue, in.injectQueue[1:])
		in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]
		return s
	}
	mx, my := ebiten.CursorPosition()
	return PointerSample{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// Process runs the pointer state machine for one sample.
func (in *PointerInput) Process(s PointerSample) {
	p := Point{s.X - in.Viewport.X, s.Y - in.Viewport.Y}
	inside := in.Viewport.Contains(s.X, s.Y)
	moved := !in.hasLast || p != in.last
	justPressed := s.Pressed && !in.pressed
	justReleased := !s.Pressed && in.pressed
	wasInside := in.inside

	in.pressed = s.Pressed
	in.inside = inside
	in.last = p
	in.hasLast = true

	switch {
	case wasInside && !inside:
		in.down = false
		in.fire(PointerLeave, p)
	case !inside:
		// Outside the viewport nothing is reported.
	case justPressed:
		in.down = true
		in.fire(PointerDown, p)
	case justReleased && in.down:
		if moved {
			in.fire(PointerMove, p)
		}
		in.down = false
		in.fire(PointerUp, p)
	case moved:
		in.fire(PointerMove, p)
	}
}

func (in *PointerInput) fire(kind PointerEventKind, p Point) {
	ev := PointerEvent{Kind: kind, Pos: p}
	for _, h := range in.handlers.byKind[kind] {
		h.fn(ev)
	}
}

// --- Synthetic input ---

// InjectPress queues a left-button press at screen coordinates (x, y).
// Queued samples are consumed one per Update.
func (in *PointerInput) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, PointerSample{X: x, Y: y, Pressed: true})
}

// InjectMove queues a move with the button held.
func (in *PointerInput) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, PointerSample{X: x, Y: y, Pressed: true})
}

// InjectHover queues a move with the button up.
func (in *PointerInput) InjectHover(x, y float64) {
	in.injectQueue = append(in.injectQueue, PointerSample{X: x, Y: y})
}

// InjectRelease queues a release at (x, y).
func (in *PointerInput) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, PointerSample{X: x, Y: y})
}

// InjectDrag queues a press at from, frames-2 interpolated moves, and a
// release at to. Minimum frames is 2.
func (in *PointerInput) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(toX, toY)
}

// Injected returns the number of queued synthetic samples.
func (in *PointerInput) Injected() int {
	return len(in.injectQueue)
}

// BindEngine routes pointer events to e: down begins a drag, move drags,
// up and leave end it.
func BindEngine(in *PointerInput, e *Engine) []CallbackHandle {
	return []CallbackHandle{
		in.OnPointer(PointerDown, func(ev PointerEvent) { e.BeginDrag(ev.Pos) }),
		in.OnPointer(PointerMove, func(ev PointerEvent) { e.Drag(ev.Pos) }),
		in.OnPointer(PointerUp, func(PointerEvent) { e.EndDrag() }),
		in.OnPointer(PointerLeave, func(PointerEvent) { e.EndDrag() }),
	}
}
