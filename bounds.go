package backdrop

import "math"

// MaxOffset returns the largest allowed top-left offset on both axes, always
// the origin. The image can never be pulled right of or below it.
func MaxOffset() Point {
	return Point{}
}

// MinOffset returns the smallest allowed top-left offset for an image of the
// given scaled size inside viewport. A negative component is the normal case
// (image larger than the viewport). A positive component means the image is
// smaller than the viewport on that axis and the clamp range is empty.
func MinOffset(viewport, scaled Size) Point {
	return Point{
		X: viewport.Width - scaled.Width,
		Y: viewport.Height - scaled.Height,
	}
}

// Clamp restricts candidate to [lo, hi] on each axis independently.
// The lower bound is applied first and the upper bound last, so on a
// degenerate axis (lo > hi) the result is hi.
func Clamp(candidate, lo, hi Point) Point {
	return Point{
		X: math.Min(math.Max(candidate.X, lo.X), hi.X),
		Y: math.Min(math.Max(candidate.Y, lo.Y), hi.Y),
	}
}
