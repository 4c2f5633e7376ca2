package geometry

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// directionEpsilon absorbs float noise when a hit lies exactly on an axis-aligned edge or ray.
const directionEpsilon = 1e-6

// Approx reports whether a and b are within tol of each other on both axes.
func Approx(a, b Point, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) && scalar.EqualWithinAbs(a.Y, b.Y, tol)
}

// WithinBounds reports whether p lies in the rectangle spanned by a and b, edges included.
func WithinBounds(p, a, b Point) bool {
	return withinBounds(p, a, b, directionEpsilon)
}

func withinBounds(p, a, b Point, eps float64) bool {
	minX, maxX := minMax(a.X, b.X)
	minY, maxY := minMax(a.Y, b.Y)
	return p.X >= minX-eps && p.X <= maxX+eps && p.Y >= minY-eps && p.Y <= maxY+eps
}

// SameDirection reports whether p-origin points into the same quadrant as end-origin.
func SameDirection(origin, end, p Point) bool {
	return sign(end.X-origin.X) == sign(p.X-origin.X) && sign(end.Y-origin.Y) == sign(p.Y-origin.Y)
}

// SameQuadrant is SameDirection restricted to the rectangle spanned by origin and end.
// The tracer uses it to accept only hits between a segment's start and its current end.
func SameQuadrant(origin, end, p Point) bool {
	if !withinBounds(p, origin, end, directionEpsilon) {
		return false
	}
	return SameDirection(origin, end, p)
}

func sign(d float64) int {
	if d >= -directionEpsilon {
		return 1
	}
	return -1
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
