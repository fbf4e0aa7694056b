package backdrop

// Point is a coordinate in viewport pixel space.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled component-wise by q.
func (p Point) Mul(q Point) Point {
	return Point{p.X * q.X, p.Y * q.Y}
}

// Div returns p divided component-wise by q. The caller guarantees q has no
// zero component.
func (p Point) Div(q Point) Point {
	return Point{p.X / q.X, p.Y / q.Y}
}

// Size holds pixel dimensions.
type Size struct {
	Width, Height float64
}

// Scale returns s with both dimensions multiplied by f.
func (s Size) Scale(f float64) Size {
	return Size{s.Width * f, s.Height * f}
}

// Center returns the midpoint of a rectangle of size s anchored at the origin.
func (s Size) Center() Point {
	return Point{s.Width / 2, s.Height / 2}
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Point returns the size as a Point, for component-wise arithmetic.
func (s Size) Point() Point {
	return Point{s.Width, s.Height}
}

// ViewportSize makes a constant Size usable as a ViewportProvider.
func (s Size) ViewportSize() Size {
	return s
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{r.X, r.Y}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGBA implements color.Color, returning premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	a8 := uint32(clamp01(c.A) * 255)
	r = uint32(clamp01(c.R*c.A)*255) * 0x101
	g = uint32(clamp01(c.G*c.A)*255) * 0x101
	b = uint32(clamp01(c.B*c.A)*255) * 0x101
	a = a8 * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
