package backdrop

import "testing"

func TestCursorTrackerZeroValueUnset(t *testing.T) {
	var c CursorTracker
	if _, ok := c.LastPosition(); ok {
		t.Error("LastPosition set on zero value")
	}
	if _, ok := c.Position(); ok {
		t.Error("Position set on zero value")
	}
	if _, ok := c.Delta(); ok {
		t.Error("Delta ok on zero value")
	}
}

func TestCursorTrackerOriginIsNotUnset(t *testing.T) {
	var c CursorTracker
	c.BeginTrack(Point{})
	c.Update(Point{})
	d, ok := c.Delta()
	if !ok {
		t.Fatal("Delta not ok after tracking (0,0)")
	}
	if d != (Point{}) {
		t.Errorf("Delta = %v, want {0 0}", d)
	}
}

func TestCursorTrackerDelta(t *testing.T) {
	var c CursorTracker
	c.BeginTrack(Point{10, 10})
	if _, ok := c.Delta(); ok {
		t.Error("Delta ok before Update")
	}
	c.Update(Point{50, 35})
	d, ok := c.Delta()
	if !ok || d != (Point{40, 25}) {
		t.Errorf("Delta = %v, %v, want {40 25}, true", d, ok)
	}

	// Re-begin overwrites the reference.
	c.BeginTrack(Point{50, 35})
	d, _ = c.Delta()
	if d != (Point{}) {
		t.Errorf("Delta after re-begin = %v, want {0 0}", d)
	}
}

func TestCursorTrackerEndTrack(t *testing.T) {
	var c CursorTracker
	c.BeginTrack(Point{1, 2})
	c.Update(Point{3, 4})
	c.EndTrack()
	if _, ok := c.LastPosition(); ok {
		t.Error("LastPosition still set after EndTrack")
	}
	if _, ok := c.Position(); ok {
		t.Error("Position still set after EndTrack")
	}
	if _, ok := c.Delta(); ok {
		t.Error("Delta ok after EndTrack")
	}
}
