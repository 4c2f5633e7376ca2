package geometry

import (
	"math"
)

// Box is an axis-aligned rectangle. Min is the top-left corner on screen.
type Box struct {
	Min Point
	Max Point
}

// NewBox spans the rectangle between two opposite corners given in any order.
func NewBox(a, b Point) Box {
	minX, maxX := minMax(a.X, b.X)
	minY, maxY := minMax(a.Y, b.Y)
	return Box{Min: Point{minX, minY}, Max: Point{maxX, maxY}}
}

// BoxAt builds a box from its top-left corner and size.
func BoxAt(topLeft Point, width, height float64) Box {
	return NewBox(topLeft, Point{topLeft.X + width, topLeft.Y + height})
}

func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

func (b Box) Center() Point {
	return Midpoint(b.Min, b.Max)
}

// Clamp grows a degenerate box so that neither side is shorter than min.
func (b Box) Clamp(min float64) Box {
	if b.Width() < min {
		b.Max.X = b.Min.X + min
	}
	if b.Height() < min {
		b.Max.Y = b.Min.Y + min
	}
	return b
}

func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b Box) ContainsBox(other Box) bool {
	return b.Contains(other.Min) && b.Contains(other.Max)
}

func (b Box) Intersects(other Box) bool {
	return b.Min.X <= other.Max.X && other.Min.X <= b.Max.X &&
		b.Min.Y <= other.Max.Y && other.Min.Y <= b.Max.Y
}

func (b Box) Union(other Box) Box {
	return Box{
		Min: Point{math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y)},
		Max: Point{math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y)},
	}
}

func (b Box) Translate(d Point) Box {
	return Box{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// BoxOf is the tightest box around a set of points.
func BoxOf(points ...Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	box := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Union(Box{Min: p, Max: p})
	}
	return box
}

// ArcBox bounds the arc of the circle starting at startDeg and sweeping lengthDeg
// counter-clockwise: both end points plus every axis extreme the arc passes through.
func ArcBox(center Point, radius, startDeg, lengthDeg float64) Box {
	start := NormalizeDegrees(startDeg)
	box := BoxOf(
		PointOnCircle(center, radius, start),
		PointOnCircle(center, radius, start+lengthDeg),
	)

	for extreme := 0.0; extreme < 360; extreme += 90 {
		if ArcContains(start, lengthDeg, extreme, 0) {
			box = box.Union(BoxOf(PointOnCircle(center, radius, extreme)))
		}
	}

	return box
}

// ArcContains reports whether angleDeg lies on the arc [startDeg, startDeg+lengthDeg],
// widened by tol degrees on both ends.
func ArcContains(startDeg, lengthDeg, angleDeg, tol float64) bool {
	start := NormalizeDegrees(startDeg)
	end := NormalizeDegrees(start + lengthDeg)
	angle := NormalizeDegrees(angleDeg)

	if end > start {
		return angle <= end+tol && angle >= start-tol
	}
	return angle <= end+tol || angle >= start-tol
}
