package backdrop

// CursorTracker records where a drag started and where the pointer is now.
// An unset position is distinct from (0,0); the zero value has both unset.
type CursorTracker struct {
	last, pos       Point
	hasLast, hasPos bool
}

// BeginTrack marks p as the reference point for subsequent deltas.
// Calling it again simply moves the reference.
func (c *CursorTracker) BeginTrack(p Point) {
	c.last = p
	c.hasLast = true
}

// Update records the current pointer position.
func (c *CursorTracker) Update(p Point) {
	c.pos = p
	c.hasPos = true
}

// Delta returns position minus the tracked reference. ok is false when
// either end is unset, in which case the delta must not be used.
func (c *CursorTracker) Delta() (d Point, ok bool) {
	if !c.hasLast || !c.hasPos {
		return Point{}, false
	}
	return c.pos.Sub(c.last), true
}

// EndTrack unsets both positions.
func (c *CursorTracker) EndTrack() {
	*c = CursorTracker{}
}

// LastPosition returns the reference point, if set.
func (c CursorTracker) LastPosition() (Point, bool) {
	return c.last, c.hasLast
}

// Position returns the current pointer position, if set.
func (c CursorTracker) Position() (Point, bool) {
	return c.pos, c.hasPos
}
