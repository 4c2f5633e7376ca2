package component

import (
	"math"

	"github.com/google/uuid"
	"github.com/meghashyamc/optics2d/geometry"
)

const (
	sourceRadius = 5.0
	sourceAngle  = 180.0
)

// Source emits a single ray. Angle 0 points up the screen and grows clockwise.
// The ray's path and the component that produced each path point live here too:
// the first entry is the source itself and the free end of the path is uuid.Nil.
type Source struct {
	base
	radius float64
	angle  float64
	on     bool

	path []geometry.Point
	hits []uuid.UUID
}

func NewSource(position geometry.Point) *Source {
	s := &Source{
		base:   newBase(position, colorWhite),
		radius: sourceRadius,
		angle:  sourceAngle,
	}
	s.refresh()
	s.resetPath()
	return s
}

func (s *Source) Kind() Kind {
	return KindSource
}

func (s *Source) refresh() {
	r := geometry.Point{X: s.radius, Y: s.radius}
	s.box = geometry.NewBox(s.position.Sub(r), s.position.Add(r))
}

func (s *Source) resetPath() {
	s.path = []geometry.Point{s.position, s.position}
	s.hits = []uuid.UUID{s.id, uuid.Nil}
}

func (s *Source) SetID(id uuid.UUID) {
	s.id = id
	if len(s.hits) > 0 {
		s.hits[0] = id
	}
}

func (s *Source) Radius() float64 {
	return s.radius
}

func (s *Source) Angle() float64 {
	return s.angle
}

// SetAngle points the source without the on check Rotate applies.
func (s *Source) SetAngle(angle float64) {
	s.angle = wrapAngle(angle)
}

func (s *Source) On() bool {
	return s.on
}

func (s *Source) SetOn(on bool) {
	s.on = on
	if !on {
		s.resetPath()
	}
}

// SetSelected also switches the source on.
func (s *Source) SetSelected(selected bool) {
	s.base.SetSelected(selected)
	if selected && s.flags.Selectable {
		s.on = true
	}
}

func (s *Source) SetPosition(p geometry.Point) {
	s.position = p
	s.refresh()
	s.resetPath()
}

// Rotate turns the ray. An unlit source keeps its angle.
func (s *Source) Rotate(deltaDegrees float64) {
	if !s.on {
		return
	}
	s.angle = wrapAngle(s.angle + deltaDegrees)
}

func (s *Source) Resize(float64) {}

func wrapAngle(angle float64) float64 {
	switch {
	case angle > 360:
		angle -= 360
	case angle < 0:
		angle += 360
	case angle == 360:
		angle = 0
	}
	return angle
}

// FarPoint is where the unobstructed ray would end, truncated to whole units.
func (s *Source) FarPoint() geometry.Point {
	rad := geometry.Radians(s.angle)
	return geometry.Point{
		X: math.Trunc(geometry.Snap(s.position.X + geometry.Big*math.Sin(rad))),
		Y: math.Trunc(geometry.Snap(s.position.Y - geometry.Big*math.Cos(rad))),
	}
}

func (s *Source) Contains(p geometry.Point) bool {
	return p.Distance(s.position) <= s.radius
}

// Intersect lets a source absorb rays from other sources.
func (s *Source) Intersect(p1, p2 geometry.Point, segment geometry.LineEq) (geometry.Point, bool) {
	if p1.Distance(s.position) < s.radius {
		return geometry.Point{}, false
	}
	return circleHit(s.position, s.radius, p1, p2, segment)
}

// Path returns a copy of the traced path.
func (s *Source) Path() []geometry.Point {
	return append([]geometry.Point(nil), s.path...)
}

// Hits returns, per path point, the component that produced it.
func (s *Source) Hits() []uuid.UUID {
	return append([]uuid.UUID(nil), s.hits...)
}

// StartPath discards the previous trace and starts again from the source.
func (s *Source) StartPath() {
	s.path = []geometry.Point{s.position, s.FarPoint()}
	s.hits = []uuid.UUID{s.id, uuid.Nil}
}

// Segment returns the trailing segment of the path.
func (s *Source) Segment() (geometry.Point, geometry.Point) {
	n := len(s.path)
	return s.path[n-2], s.path[n-1]
}

// Stop ends the path at p, produced by the component hit.
func (s *Source) Stop(p geometry.Point, hit uuid.UUID) {
	n := len(s.path)
	s.path[n-1] = p
	s.hits[n-1] = hit
}

// Extend appends a new free end point.
func (s *Source) Extend(p geometry.Point) {
	s.path = append(s.path, p)
	s.hits = append(s.hits, uuid.Nil)
}

// Truncate drops the free end point.
func (s *Source) Truncate() {
	if len(s.path) > 2 {
		s.path = s.path[:len(s.path)-1]
		s.hits = s.hits[:len(s.hits)-1]
	}
}
