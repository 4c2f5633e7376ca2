package component

import (
	"image/color"

	"github.com/meghashyamc/optics2d/geometry"
)

const targetRadius = 10.0

// Target is a small disc that counts as hit once a ray of its own color reaches it.
type Target struct {
	base
	radius float64
	hit    bool
}

func NewTarget(center geometry.Point) *Target {
	t := &Target{
		base:   newBase(center, colorRed),
		radius: targetRadius,
	}
	t.refresh()
	return t
}

func (t *Target) Kind() Kind {
	return KindTarget
}

func (t *Target) refresh() {
	r := geometry.Point{X: t.radius, Y: t.radius}
	t.box = geometry.NewBox(t.position.Sub(r), t.position.Add(r))
}

func (t *Target) Radius() float64 {
	return t.radius
}

func (t *Target) SetPosition(p geometry.Point) {
	t.position = p
	t.refresh()
}

func (t *Target) Rotate(float64) {}

func (t *Target) Resize(float64) {}

func (t *Target) Contains(p geometry.Point) bool {
	return p.Distance(t.position) <= t.radius
}

func (t *Target) Intersect(p1, p2 geometry.Point, segment geometry.LineEq) (geometry.Point, bool) {
	return circleHit(t.position, t.radius, p1, p2, segment)
}

// React marks the target hit when the incoming ray has the target's color and reports
// whether it did. A hit stays until Reset.
func (t *Target) React(incident color.RGBA) bool {
	if incident != t.color {
		return false
	}
	t.hit = true
	return true
}

func (t *Target) Hit() bool {
	return t.hit
}

func (t *Target) Reset() {
	t.hit = false
}
