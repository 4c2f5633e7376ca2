package geometry

import (
	"fmt"
	"math"
)

// verticalCos is the |cos| under which a line angle is treated as vertical.
const verticalCos = 1e-12

// Slope is either a finite gradient or Vertical. The zero value is a horizontal slope.
type Slope struct {
	m        float64
	vertical bool
}

var Vertical = Slope{vertical: true}

func Finite(m float64) Slope {
	if math.IsInf(m, 0) {
		return Vertical
	}
	return Slope{m: m}
}

// SlopeBetween is the slope of the line through p1 and p2. Coincident points give Vertical.
func SlopeBetween(p1, p2 Point) Slope {
	dx := p2.X - p1.X
	if dx == 0 {
		return Vertical
	}
	return Finite((p2.Y - p1.Y) / dx)
}

// SlopeFromAngle converts a line angle in radians into a slope.
func SlopeFromAngle(angle float64) Slope {
	if math.Abs(math.Cos(angle)) < verticalCos {
		return Vertical
	}
	return Finite(math.Tan(angle))
}

func (s Slope) IsVertical() bool {
	return s.vertical
}

// Value returns the finite gradient. It must not be called on a vertical slope.
func (s Slope) Value() float64 {
	if s.vertical {
		panic("geometry: Value called on a vertical slope")
	}
	return s.m
}

// Angle is the direction of the line in radians, in (-π/2, π/2].
func (s Slope) Angle() float64 {
	if s.vertical {
		return math.Pi / 2
	}
	return math.Atan(s.m)
}

func (s Slope) Perpendicular() Slope {
	switch {
	case s.vertical:
		return Slope{}
	case s.m == 0:
		return Vertical
	default:
		return Slope{m: -1 / s.m}
	}
}

func (s Slope) Equal(other Slope) bool {
	if s.vertical || other.vertical {
		return s.vertical == other.vertical
	}
	return s.m == other.m
}

func (s Slope) String() string {
	if s.vertical {
		return "vertical"
	}
	return fmt.Sprintf("%g", s.m)
}

// LineEq is y = Slope*x + Intercept, or x = X when the slope is vertical.
type LineEq struct {
	Slope     Slope
	Intercept float64
	X         float64
}

func NewLine(p1, p2 Point) LineEq {
	return NewLineThrough(SlopeBetween(p1, p2), p1)
}

func NewLineThrough(slope Slope, p Point) LineEq {
	if slope.vertical {
		return LineEq{Slope: slope, X: p.X}
	}
	return LineEq{Slope: slope, Intercept: p.Y - slope.m*p.X}
}

func NewLineFromIntercept(m, intercept float64) LineEq {
	return LineEq{Slope: Finite(m), Intercept: intercept}
}

func (l LineEq) IsVertical() bool {
	return l.Slope.vertical
}

// YAt evaluates the line at x. Vertical lines have no single y and yield NaN.
func (l LineEq) YAt(x float64) float64 {
	if l.Slope.vertical {
		return math.NaN()
	}
	return l.Slope.m*x + l.Intercept
}

// XAt solves the line for y. Horizontal lines yield NaN.
func (l LineEq) XAt(y float64) float64 {
	if l.Slope.vertical {
		return l.X
	}
	if l.Slope.m == 0 {
		return math.NaN()
	}
	return (y - l.Intercept) / l.Slope.m
}

// Intersect returns the crossing point of two lines, false when they are parallel.
func (l LineEq) Intersect(other LineEq) (Point, bool) {
	switch {
	case l.Slope.vertical && other.Slope.vertical:
		return Point{}, false
	case l.Slope.vertical:
		return Point{l.X, other.YAt(l.X)}, true
	case other.Slope.vertical:
		return Point{other.X, l.YAt(other.X)}, true
	case l.Slope.m == other.Slope.m:
		return Point{}, false
	}

	x := (other.Intercept - l.Intercept) / (l.Slope.m - other.Slope.m)
	return Point{x, l.YAt(x)}, true
}

// Perpendicular returns the line through at that is perpendicular to l.
func (l LineEq) Perpendicular(at Point) LineEq {
	return NewLineThrough(l.Slope.Perpendicular(), at)
}

// Side reports which side of the line p is on: -1, 0 or 1.
// For non-vertical lines the sign follows y, for vertical lines it follows x.
func (l LineEq) Side(p Point) int {
	var d float64
	if l.Slope.vertical {
		d = p.X - l.X
	} else {
		d = p.Y - l.YAt(p.X)
	}
	switch {
	case d > sideEpsilon:
		return 1
	case d < -sideEpsilon:
		return -1
	}
	return 0
}

const sideEpsilon = 1e-9
