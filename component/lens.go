package component

import (
	"math"

	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/optics"
)

const (
	lensRadius     = 100.0
	lensMinRadius  = 15.0
	lensMaxRadius  = 150.0
	lensArcStart   = 180.0
	lensArcLength  = 80.0
	lensMaxArc     = 180.0
	lensIndex      = 1.3
	surfaceEpsilon = 1e-6
)

// lensSurface is one of the two circular faces of a lens.
type lensSurface struct {
	center geometry.Point
	start  float64
	length float64
}

func (s lensSurface) contains(p geometry.Point) bool {
	return geometry.ArcContains(s.start, s.length, geometry.AngleDegrees(s.center, p), surfaceEpsilon)
}

// Lens is two arcs of equal radius glued at their end points. Its position is the
// top-left corner of the first surface's circle.
type Lens struct {
	base
	crossing
	radius    float64
	arcStart  float64
	arcLength float64
	index     float64
	outer     float64

	center1 geometry.Point
	center2 geometry.Point
}

func NewLens(topLeft geometry.Point) *Lens {
	l := &Lens{
		base:      newBase(topLeft, colorCyan),
		radius:    lensRadius,
		arcStart:  lensArcStart,
		arcLength: lensArcLength,
		index:     lensIndex,
		outer:     1,
	}
	l.refresh()
	return l
}

func (l *Lens) Kind() Kind {
	return KindLens
}

// refresh recomputes both circle centers from the position and rebuilds the box.
// The second center is offset so that the second arc starts where the first one ends.
func (l *Lens) refresh() {
	l.center1 = l.position.Add(geometry.Point{X: l.radius, Y: l.radius})

	arcEnd := geometry.PointOnCircle(l.center1, l.radius, l.arcStart+l.arcLength)
	opposite := geometry.PointOnCircle(l.center1, l.radius, l.arcStart+180)
	l.center2 = l.center1.Add(arcEnd.Sub(opposite))

	s1, s2 := l.surfaces()
	l.box = geometry.ArcBox(s1.center, l.radius, s1.start, s1.length).
		Union(geometry.ArcBox(s2.center, l.radius, s2.start, s2.length)).
		Clamp(1)
}

func (l *Lens) surfaces() (lensSurface, lensSurface) {
	return lensSurface{center: l.center1, start: l.arcStart, length: l.arcLength},
		lensSurface{center: l.center2, start: geometry.NormalizeDegrees(l.arcStart + 180), length: l.arcLength}
}

// Bounds returns the two points where the surfaces meet.
func (l *Lens) Bounds() (geometry.Point, geometry.Point) {
	return geometry.PointOnCircle(l.center1, l.radius, l.arcStart),
		geometry.PointOnCircle(l.center1, l.radius, l.arcStart+l.arcLength)
}

// Centers returns the centers of the first and second surface circles.
func (l *Lens) Centers() (geometry.Point, geometry.Point) {
	return l.center1, l.center2
}

func (l *Lens) Radius() float64 {
	return l.radius
}

func (l *Lens) Arc() (start, length float64) {
	return l.arcStart, l.arcLength
}

func (l *Lens) SetArc(start, length float64) {
	l.arcStart = geometry.NormalizeDegrees(start)
	l.arcLength = math.Max(1, math.Min(lensMaxArc, length))
	l.refresh()
}

func (l *Lens) SetRadius(radius float64) {
	l.radius = math.Max(lensMinRadius, math.Min(lensMaxRadius, radius))
	l.refresh()
}

// StepRadius grows or shrinks both surface radii by one unit.
func (l *Lens) StepRadius(step float64) {
	if step > 0 && l.radius < lensMaxRadius {
		l.radius++
	} else if step < 0 && l.radius > lensMinRadius {
		l.radius--
	}
	l.refresh()
}

func (l *Lens) RefractionIndex() float64 {
	return l.index
}

func (l *Lens) SetRefractionIndex(index float64) {
	l.index = math.Max(1, index)
}

func (l *Lens) OuterIndex() float64 {
	return l.outer
}

func (l *Lens) SetOuterIndex(index float64) {
	l.outer = index
}

func (l *Lens) SetPosition(p geometry.Point) {
	l.position = p
	l.refresh()
}

func (l *Lens) Rotate(deltaDegrees float64) {
	l.arcStart = geometry.NormalizeDegrees(l.arcStart + deltaDegrees)
	l.refresh()
}

// Resize widens or narrows both arcs by one degree.
func (l *Lens) Resize(delta float64) {
	if delta > 0 && l.arcLength < lensMaxArc {
		l.arcLength++
	} else if delta < 0 && l.arcLength > 1 {
		l.arcLength--
	}
	l.refresh()
}

func (l *Lens) Contains(p geometry.Point) bool {
	return l.box.Contains(p)
}

// which picks the surface a segment starting at p1 is about to meet. A ray between the
// perpendiculars through the two bound points faces both surfaces: entering it meets the
// surface whose center is farther, leaving it meets the one whose center is closer.
// Otherwise the ray meets the surface on its own side unless it crosses the chord first.
// A total internal reflection leaves the crossing state set, so the reflected ray is
// matched against the surface it just left and escapes the lens.
func (l *Lens) which(p1 geometry.Point, segment geometry.LineEq) lensSurface {
	s1, s2 := l.surfaces()
	b1, b2 := l.Bounds()

	nearFirst := p1.Distance(l.center1) < p1.Distance(l.center2)

	axis := b2.Sub(b1)
	if t := p1.Sub(b1).DotProduct(axis) / axis.DotProduct(axis); t >= 0 && t <= 1 {
		if l.leaving == nearFirst {
			return s1
		}
		return s2
	}

	closestBound := math.Min(p1.Distance(b1), p1.Distance(b2))
	crossesChord := false
	if onChord, ok := segment.Intersect(geometry.NewLine(b1, b2)); ok {
		crossesChord = p1.Distance(onChord) <= closestBound
	}

	if nearFirst == crossesChord {
		return s1
	}
	return s2
}

func (l *Lens) Intersect(p1, p2 geometry.Point, segment geometry.LineEq) (geometry.Point, bool) {
	surface := l.which(p1, segment)

	a, b, ok := geometry.CircleLine(segment, l.radius, surface.center)
	if !ok {
		l.ResetCrossing()
		return geometry.Point{}, false
	}
	closeSol, farSol := geometry.CloseFar(p1, a, b)

	inter := farSol
	if surface.contains(closeSol) && !geometry.Approx(p1, closeSol, geometry.Tolerance) && geometry.SameDirection(p1, p2, closeSol) {
		inter = closeSol
	}

	if !surface.contains(inter) || geometry.Approx(p1, inter, geometry.Tolerance) || !geometry.SameDirection(p1, p2, inter) {
		l.ResetCrossing()
		return geometry.Point{}, false
	}
	return inter, true
}

func (l *Lens) CheckOrientation(geometry.Point, geometry.Point, geometry.LineEq) bool {
	return true
}

// NormalLine runs through the center of the surface circle the intersection lies on.
func (l *Lens) NormalLine(intersection, _ geometry.Point) geometry.LineEq {
	center := l.center1
	if math.Abs(intersection.Distance(l.center2)-l.radius) < math.Abs(intersection.Distance(l.center1)-l.radius) {
		center = l.center2
	}
	return geometry.NewLine(center, intersection)
}

func (l *Lens) Bend(source, intersection geometry.Point, incident geometry.LineEq) (geometry.Point, optics.Interaction) {
	far, interaction := refractiveBend(l, l.leaving, source, intersection, incident)
	l.after(interaction)
	return far, interaction
}

func (l *Lens) CheckSide(normal, incident, result geometry.LineEq, source, intersection geometry.Point) bool {
	return checkSide(normal, incident, result, source, intersection, false)
}
