package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal zoom track. A press on the track claims the pointer
// until release; while claimed, the pointer position sets the value of
// Control.
type Slider struct {
	Rect    Rect
	Control *ZoomControl

	TrackColor Color
	FillColor  Color
	KnobColor  Color

	pressed bool
	grabbed bool
}

// NewSlider creates a slider with default colors.
func NewSlider(r Rect, c *ZoomControl) *Slider {
	return &Slider{
		Rect:       r,
		Control:    c,
		TrackColor: Color{R: 0.3, G: 0.3, B: 0.35, A: 1},
		FillColor:  Color{R: 0.31, G: 0.71, B: 1, A: 1},
		KnobColor:  Color{R: 1, G: 1, B: 1, A: 1},
	}
}

// Handle feeds one pointer sample to the slider and reports whether the
// slider consumed it.
func (s *Slider) Handle(p PointerSample) bool {
	justPressed := p.Pressed && !s.pressed
	s.pressed = p.Pressed
	if justPressed && s.Rect.Contains(p.X, p.Y) {
		s.grabbed = true
	}
	if !s.grabbed {
		return false
	}
	if s.Control != nil {
		s.Control.SetValue(s.ValueAt(p.X))
	}
	if !p.Pressed {
		s.grabbed = false
	}
	return true
}

// Grabbed reports whether the slider currently holds the pointer.
func (s *Slider) Grabbed() bool {
	return s.grabbed
}

// ValueAt maps a screen x coordinate to a value in [0, 1].
func (s *Slider) ValueAt(x float64) float64 {
	if s.Rect.Width <= 0 {
		return 0
	}
	return clamp01((x - s.Rect.X) / s.Rect.Width)
}

// KnobX returns the screen x of the knob center.
func (s *Slider) KnobX() float64 {
	v := 0.0
	if s.Control != nil {
		v = s.Control.Value()
	}
	return s.Rect.X + v*s.Rect.Width
}

// Draw renders the track, the filled portion and the knob.
func (s *Slider) Draw(screen *ebiten.Image) {
	r := s.Rect
	cy := float32(r.Y + r.Height/2)
	track := float32(r.Height / 4)
	knob := float32(r.Height / 2)
	kx := float32(s.KnobX())

	vector.DrawFilledRect(screen, float32(r.X), cy-track/2, float32(r.Width), track, s.TrackColor, true)
	vector.DrawFilledRect(screen, float32(r.X), cy-track/2, kx-float32(r.X), track, s.FillColor, true)
	vector.DrawFilledCircle(screen, kx, cy, knob, s.KnobColor, true)
}
