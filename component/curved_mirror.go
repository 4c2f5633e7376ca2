package component

import (
	"math"

	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/optics"
)

const (
	curvedMirrorRadius    = 50.0
	curvedMirrorMinRadius = 5.0
	curvedMirrorMaxRadius = 300.0
	curvedMirrorArcStart  = 270.0
	curvedMirrorArcLength = 180.0
	// arcToleranceDegrees widens the arc when deciding whether a point is on it.
	arcToleranceDegrees = 1.0
	// insideMargin is the slack on the radius when deciding whether a ray starts inside.
	insideMargin = 2.0
)

// CurvedMirror is an arc of a circle, reflective on the inside when convergent
// and on the outside when divergent.
type CurvedMirror struct {
	base
	radius     float64
	arcStart   float64
	arcLength  float64
	convergent bool
}

func NewCurvedMirror(center geometry.Point) *CurvedMirror {
	m := &CurvedMirror{
		base:       newBase(center, colorCyan),
		radius:     curvedMirrorRadius,
		arcStart:   curvedMirrorArcStart,
		arcLength:  curvedMirrorArcLength,
		convergent: true,
	}
	m.refresh()
	return m
}

func (m *CurvedMirror) Kind() Kind {
	return KindCurvedMirror
}

func (m *CurvedMirror) Radius() float64 {
	return m.radius
}

func (m *CurvedMirror) Arc() (start, length float64) {
	return m.arcStart, m.arcLength
}

func (m *CurvedMirror) Convergent() bool {
	return m.convergent
}

func (m *CurvedMirror) SetConvergent(convergent bool) {
	m.convergent = convergent
}

// Bounds returns the two end points of the arc.
func (m *CurvedMirror) Bounds() (geometry.Point, geometry.Point) {
	return geometry.PointOnCircle(m.position, m.radius, m.arcStart),
		geometry.PointOnCircle(m.position, m.radius, m.arcStart+m.arcLength)
}

func (m *CurvedMirror) refresh() {
	m.box = geometry.ArcBox(m.position, m.radius, m.arcStart, m.arcLength).Clamp(1)
}

// SetRadius sets the radius directly, clamped to the allowed range.
func (m *CurvedMirror) SetRadius(radius float64) {
	m.radius = math.Max(curvedMirrorMinRadius, math.Min(curvedMirrorMaxRadius, radius))
	m.refresh()
}

// StepRadius grows or shrinks the radius by one unit in the direction of step.
func (m *CurvedMirror) StepRadius(step float64) {
	if step > 0 && m.radius < curvedMirrorMaxRadius {
		m.radius++
	} else if step < 0 && m.radius > curvedMirrorMinRadius {
		m.radius--
	}
	m.refresh()
}

// SetArc replaces the arc start and length, both in degrees.
func (m *CurvedMirror) SetArc(start, length float64) {
	m.arcStart = geometry.NormalizeDegrees(start)
	m.arcLength = math.Max(2, math.Min(359, length))
	m.refresh()
}

func (m *CurvedMirror) SetPosition(p geometry.Point) {
	m.position = p
	m.refresh()
}

func (m *CurvedMirror) Rotate(deltaDegrees float64) {
	m.arcStart = geometry.NormalizeDegrees(m.arcStart + deltaDegrees)
	m.refresh()
}

// Resize changes the arc length.
func (m *CurvedMirror) Resize(delta float64) {
	if m.arcLength < 360 && m.arcLength > 1 {
		m.arcLength += delta
	}
	if m.arcLength >= 360 {
		m.arcLength = 359
	}
	if m.arcLength <= 1 {
		m.arcLength = 2
	}
	m.refresh()
}

func (m *CurvedMirror) Contains(p geometry.Point) bool {
	return m.box.Contains(p)
}

func (m *CurvedMirror) onSurface(p geometry.Point) bool {
	return geometry.ArcContains(m.arcStart, m.arcLength, geometry.AngleDegrees(m.position, p), arcToleranceDegrees)
}

func (m *CurvedMirror) Intersect(p1, p2 geometry.Point, segment geometry.LineEq) (geometry.Point, bool) {
	var inter geometry.Point

	if segment.IsVertical() {
		y1, y2 := geometry.CircleVertical(p1.X, m.radius, m.position)
		if math.IsNaN(y1) {
			return geometry.Point{}, false
		}
		closeSol, farSol := geometry.CloseFar(p1, geometry.Point{X: p1.X, Y: y1}, geometry.Point{X: p1.X, Y: y2})

		if m.onSurface(closeSol) && geometry.SameDirection(p1, p2, closeSol) {
			inter = closeSol
		} else {
			inter = farSol
		}
	} else {
		a, b, ok := geometry.CircleLine(segment, m.radius, m.position)
		if !ok {
			return geometry.Point{}, false
		}
		closeSol, farSol := geometry.CloseFar(p1, a, b)

		if m.onSurface(closeSol) && !geometry.Approx(closeSol, p1, geometry.Tolerance) && geometry.SameDirection(p1, p2, closeSol) {
			inter = closeSol
		} else {
			inter = farSol
		}
	}

	if !m.onSurface(inter) || geometry.Approx(p1, inter, geometry.Tolerance) || !geometry.SameDirection(p1, p2, inter) {
		return geometry.Point{}, false
	}
	return inter, true
}

// CheckOrientation: from outside the circle a convergent mirror only reflects on the far
// (inner) face and a divergent one only on the near (outer) face. From inside, only a
// convergent mirror reflects.
func (m *CurvedMirror) CheckOrientation(source, intersection geometry.Point, segment geometry.LineEq) bool {
	if source.Distance(m.position) > m.radius+insideMargin {
		closest := m.closestSolution(source, intersection, segment)
		if m.convergent {
			return !closest
		}
		return closest
	}
	return m.convergent
}

// closestSolution reports whether intersection is the nearer of the two points where the
// incident line crosses the full circle.
func (m *CurvedMirror) closestSolution(source, intersection geometry.Point, segment geometry.LineEq) bool {
	var s0, s1 geometry.Point

	if geometry.SlopeBetween(source, intersection).IsVertical() {
		y1, y2 := geometry.CircleVertical(source.X, m.radius, m.position)
		if math.IsNaN(y1) {
			return true
		}
		s0, s1 = geometry.Point{X: source.X, Y: y1}, geometry.Point{X: source.X, Y: y2}
	} else {
		var ok bool
		if s0, s1, ok = geometry.CircleLine(segment, m.radius, m.position); !ok {
			return true
		}
	}

	if intersection.Distance(s0) < intersection.Distance(s1) {
		return source.Distance(intersection) <= source.Distance(s1)
	}
	return source.Distance(intersection) <= source.Distance(s0)
}

func (m *CurvedMirror) NormalLine(intersection, _ geometry.Point) geometry.LineEq {
	return geometry.NewLine(m.position, intersection)
}

func (m *CurvedMirror) Bend(source, intersection geometry.Point, incident geometry.LineEq) (geometry.Point, optics.Interaction) {
	return reflectiveBend(m, source, intersection, incident)
}

func (m *CurvedMirror) CheckSide(normal, incident, result geometry.LineEq, source, intersection geometry.Point) bool {
	return checkSide(normal, incident, result, source, intersection, true)
}
