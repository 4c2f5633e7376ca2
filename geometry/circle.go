package geometry

import (
	"math"
)

// CircleVertical intersects the vertical line at x with a circle: y = k ± sqrt(r² - (x-h)²).
// Both results are NaN when the line misses the circle.
func CircleVertical(x, radius float64, center Point) (float64, float64) {
	root := math.Sqrt(radius*radius - (x-center.X)*(x-center.X))
	return center.Y + root, center.Y - root
}

// CircleLine intersects a line with a circle. It returns false when the discriminant
// of the substituted quadratic is negative.
func CircleLine(line LineEq, radius float64, center Point) (Point, Point, bool) {
	if line.IsVertical() {
		y1, y2 := CircleVertical(line.X, radius, center)
		if math.IsNaN(y1) {
			return Point{}, Point{}, false
		}
		return Point{line.X, y1}, Point{line.X, y2}, true
	}

	m := line.Slope.m
	b0 := line.Intercept
	h, k := center.X, center.Y

	a := m*m + 1
	b := 2*m*b0 - 2*h - 2*m*k
	c := h*h - 2*b0*k + b0*b0 + k*k - radius*radius

	d := b*b - 4*a*c
	if d < 0 {
		return Point{}, Point{}, false
	}

	x1 := (-b + math.Sqrt(d)) / (2 * a)
	x2 := (-b - math.Sqrt(d)) / (2 * a)

	return Point{x1, line.YAt(x1)}, Point{x2, line.YAt(x2)}, true
}

// CloseFar orders two candidate points by their distance to origin.
func CloseFar(origin, a, b Point) (Point, Point) {
	if origin.Distance(a) > origin.Distance(b) {
		return b, a
	}
	return a, b
}

// ArcPoints samples an arc into a polyline of steps+1 points, start and end included.
func ArcPoints(center Point, radius, startDeg, lengthDeg float64, steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		points = append(points, PointOnCircle(center, radius, startDeg+lengthDeg*float64(i)/float64(steps)))
	}
	return points
}
