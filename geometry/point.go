package geometry

import (
	"math"
)

const (
	// Big is the far sentinel used to express "the ray keeps going this way".
	Big = 100000.0
	// Tolerance is the default coordinate distance under which two points are the same point.
	Tolerance = 3.0
)

type Point struct {
	X float64
	Y float64
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(factor float64) Point {
	return Point{p.X * factor, p.Y * factor}
}

// DotProduct treats both points as vectors from the origin
func (p Point) DotProduct(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Magnitude calculates the length of the vector from the origin to p
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// PointOnCircle returns the point at angleDeg on the circle, with angles growing
// counter-clockwise on a screen whose y axis points down.
func PointOnCircle(center Point, radius, angleDeg float64) Point {
	rad := Radians(angleDeg)
	return Point{
		X: Snap(center.X + radius*math.Cos(rad)),
		Y: Snap(center.Y - radius*math.Sin(rad)),
	}
}

// AngleDegrees is the inverse of PointOnCircle: the polar angle of p around center in [0, 360).
func AngleDegrees(center, p Point) float64 {
	az := Degrees(math.Atan2(center.Y-p.Y, p.X-center.X))
	if az < 0 {
		az += 360
	}
	return az
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Snap rounds away trigonometric noise so that axis-aligned geometry stays exactly axis-aligned.
func Snap(v float64) float64 {
	const scale = 1e9
	return math.Round(v*scale) / scale
}
