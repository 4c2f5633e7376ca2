package component

import (
	"math"

	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/optics"
)

const (
	mirrorMaxLength = 400.0
	mirrorMinBox    = 5.0
	// mirrorGrabDistance is how close a point must be to the mirror to count as on it.
	mirrorGrabDistance = 5.0
)

// Orientation is the direction the reflective face of a plane mirror points to.
type Orientation int

const (
	North Orientation = iota + 1
	East
	South
	West
	Q1
	Q2
	Q3
	Q4
)

func (o Orientation) String() string {
	switch o {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case Q1:
		return "q1"
	case Q2:
		return "q2"
	case Q3:
		return "q3"
	case Q4:
		return "q4"
	}
	return "none"
}

// orientationOf classifies a mirror by the order of its bound points.
func orientationOf(a, b geometry.Point) Orientation {
	switch {
	case a.Y == b.Y && a.X < b.X:
		return North
	case a.Y == b.Y && a.X > b.X:
		return South
	case a.X == b.X && a.Y < b.Y:
		return East
	case a.X == b.X && a.Y > b.Y:
		return West
	case a.X < b.X && a.Y < b.Y:
		return Q1
	case a.X < b.X && a.Y > b.Y:
		return Q2
	case a.X > b.X && a.Y > b.Y:
		return Q3
	case a.X > b.X && a.Y < b.Y:
		return Q4
	}
	return 0
}

// PlaneMirror is a one-sided flat mirror between two bound points.
// The reflective face is on the left when walking from the first bound to the second.
type PlaneMirror struct {
	base
	a, b        geometry.Point
	inclination geometry.Slope
	length      float64
	// angle of the first bound point seen from the midpoint, in degrees
	angle       float64
	orientation Orientation
}

func NewPlaneMirror(a, b geometry.Point) *PlaneMirror {
	mid := geometry.Midpoint(a, b)
	m := &PlaneMirror{
		base:   newBase(mid, colorCyan),
		a:      a,
		b:      b,
		length: a.Distance(b),
		angle:  geometry.AngleDegrees(mid, a),
	}
	m.refresh()
	return m
}

func (m *PlaneMirror) Kind() Kind {
	return KindPlaneMirror
}

func (m *PlaneMirror) Bounds() (geometry.Point, geometry.Point) {
	return m.a, m.b
}

func (m *PlaneMirror) Inclination() geometry.Slope {
	return m.inclination
}

func (m *PlaneMirror) Orientation() Orientation {
	return m.orientation
}

func (m *PlaneMirror) Length() float64 {
	return m.length
}

func (m *PlaneMirror) Angle() float64 {
	return m.angle
}

func (m *PlaneMirror) refresh() {
	m.inclination = geometry.SlopeBetween(m.a, m.b)
	m.orientation = orientationOf(m.a, m.b)
	m.box = geometry.NewBox(m.a, m.b).Clamp(mirrorMinBox)
}

// placeBounds lays the bound points out around the midpoint from angle and length.
func (m *PlaneMirror) placeBounds() {
	m.a = geometry.PointOnCircle(m.position, m.length/2, m.angle)
	m.b = geometry.PointOnCircle(m.position, m.length/2, m.angle+180)
	m.refresh()
}

func (m *PlaneMirror) SetPosition(p geometry.Point) {
	diff := p.Sub(m.position)
	m.a = m.a.Add(diff)
	m.b = m.b.Add(diff)
	m.position = p
	m.box = m.box.Translate(diff)
}

func (m *PlaneMirror) Rotate(deltaDegrees float64) {
	m.angle = geometry.NormalizeDegrees(m.angle + deltaDegrees)
	m.placeBounds()
}

// Resize lengthens or shortens the mirror. Small steps are amplified so a mouse wheel
// tick makes a visible change.
func (m *PlaneMirror) Resize(delta float64) {
	if math.Abs(delta) < 5 {
		delta *= 10
	} else {
		delta *= 2
	}
	if m.length > 0 && m.length <= mirrorMaxLength {
		m.length += delta
	}
	if m.length <= 0 {
		m.length = 1
	}
	if m.length > mirrorMaxLength {
		m.length = mirrorMaxLength
	}
	m.placeBounds()
}

func (m *PlaneMirror) Contains(p geometry.Point) bool {
	return geometry.DistanceFromPointToSegment(p, m.a, m.b) <= mirrorGrabDistance
}

func (m *PlaneMirror) Intersect(p1, p2 geometry.Point, segment geometry.LineEq) (geometry.Point, bool) {
	inter, ok := segment.Intersect(geometry.NewLine(m.a, m.b))
	if !ok {
		return geometry.Point{}, false
	}

	if !geometry.WithinBounds(inter, m.a, m.b) || geometry.Approx(p1, inter, geometry.Tolerance) {
		return geometry.Point{}, false
	}
	if !geometry.SameDirection(p1, p2, inter) {
		return geometry.Point{}, false
	}

	return inter, true
}

func (m *PlaneMirror) CheckOrientation(source, _ geometry.Point, _ geometry.LineEq) bool {
	switch m.orientation {
	case North:
		return source.Y < m.position.Y
	case South:
		return source.Y > m.position.Y
	case East:
		return source.X > m.position.X
	case West:
		return source.X < m.position.X
	case Q1, Q2:
		return geometry.NewLineThrough(m.Inclination(), m.a).Side(source) < 0
	case Q3, Q4:
		return geometry.NewLineThrough(m.Inclination(), m.a).Side(source) > 0
	}
	return false
}

func (m *PlaneMirror) NormalLine(intersection, _ geometry.Point) geometry.LineEq {
	return geometry.NewLineThrough(m.inclination.Perpendicular(), intersection)
}

func (m *PlaneMirror) Bend(source, intersection geometry.Point, incident geometry.LineEq) (geometry.Point, optics.Interaction) {
	return reflectiveBend(m, source, intersection, incident)
}

func (m *PlaneMirror) CheckSide(normal, incident, result geometry.LineEq, source, intersection geometry.Point) bool {
	return checkSide(normal, incident, result, source, intersection, true)
}
