package backdrop

import "testing"

func newTestSlider(t *testing.T) (*Slider, *Engine) {
	t.Helper()
	e := NewEngine(Size{400, 300}, nil)
	e.Load(newTestImage(800, 600))
	z := NewZoomControl(e, 1, 3)
	return NewSlider(Rect{X: 100, Y: 10, Width: 200, Height: 20}, z), e
}

func TestSliderValueAt(t *testing.T) {
	s, _ := newTestSlider(t)
	tests := []struct {
		x, want float64
	}{
		{100, 0},
		{200, 0.5},
		{300, 1},
		{0, 0},
		{1000, 1},
	}
	for _, tt := range tests {
		if got := s.ValueAt(tt.x); !approxEqual(got, tt.want, 1e-6) {
			t.Errorf("ValueAt(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got := (&Slider{}).ValueAt(50); got != 0 {
		t.Errorf("zero-width ValueAt = %v, want 0", got)
	}
}

func TestSliderGrabAndRelease(t *testing.T) {
	s, e := newTestSlider(t)

	if !s.Handle(PointerSample{X: 200, Y: 20, Pressed: true}) {
		t.Fatal("press on track not claimed")
	}
	if !s.Grabbed() {
		t.Error("Grabbed = false while held")
	}
	if got := e.Zoom(); !approxEqual(got, 2, 1e-6) {
		t.Errorf("Zoom = %v, want 2", got)
	}

	// Dragging off the track keeps control.
	if !s.Handle(PointerSample{X: 400, Y: 200, Pressed: true}) {
		t.Error("move while grabbed not claimed")
	}
	if got := e.Zoom(); !approxEqual(got, 3, 1e-6) {
		t.Errorf("Zoom = %v, want 3", got)
	}

	if !s.Handle(PointerSample{X: 100, Y: 200}) {
		t.Error("release while grabbed not claimed")
	}
	if s.Grabbed() {
		t.Error("Grabbed = true after release")
	}
	if got := e.Zoom(); !approxEqual(got, 1, 1e-6) {
		t.Errorf("Zoom = %v, want 1", got)
	}
	if s.Handle(PointerSample{X: 200, Y: 20}) {
		t.Error("hover claimed")
	}
}

func TestSliderIgnoresPressElsewhere(t *testing.T) {
	s, e := newTestSlider(t)
	if s.Handle(PointerSample{X: 10, Y: 200, Pressed: true}) {
		t.Error("press off the track claimed")
	}
	// Moving onto the track with the button already down does not grab.
	if s.Handle(PointerSample{X: 200, Y: 20, Pressed: true}) {
		t.Error("held button entering the track claimed")
	}
	if e.Zoom() != 1 {
		t.Errorf("Zoom = %v, want 1", e.Zoom())
	}
}

func TestSliderKnobX(t *testing.T) {
	s, _ := newTestSlider(t)
	if got := s.KnobX(); got != 100 {
		t.Errorf("KnobX = %v, want 100", got)
	}
	s.Control.SetValue(0.25)
	if got := s.KnobX(); !approxEqual(got, 150, 1e-6) {
		t.Errorf("KnobX = %v, want 150", got)
	}
}
