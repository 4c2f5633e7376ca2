package component

import (
	"math"

	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/optics"
)

const (
	zoneWidth    = 100.0
	zoneHeight   = 100.0
	zoneIndex    = 1.0
	zoneMaxIndex = 4.9
	indexStep    = 0.1
	// minScaledSide is the smallest side a rectangle can be dragged down to.
	minScaledSide = 25.0
)

// RefractiveZone is an axis-aligned rectangle of uniform refraction index.
// Its position is the top-left corner.
type RefractiveZone struct {
	base
	width, height float64
	index         float64
	outer         float64
}

func NewRefractiveZone(topLeft geometry.Point, width, height float64) *RefractiveZone {
	z := &RefractiveZone{
		base:   newBase(topLeft, colorCyan),
		width:  width,
		height: height,
		index:  zoneIndex,
		outer:  1,
	}
	z.refresh()
	return z
}

// NewDefaultRefractiveZone creates a 100x100 zone.
func NewDefaultRefractiveZone(topLeft geometry.Point) *RefractiveZone {
	return NewRefractiveZone(topLeft, zoneWidth, zoneHeight)
}

func (z *RefractiveZone) Kind() Kind {
	return KindRefractiveZone
}

func (z *RefractiveZone) refresh() {
	z.box = geometry.BoxAt(z.position, z.width, z.height).Clamp(1)
}

func (z *RefractiveZone) Size() (float64, float64) {
	return z.box.Width(), z.box.Height()
}

func (z *RefractiveZone) RefractionIndex() float64 {
	return z.index
}

func (z *RefractiveZone) SetRefractionIndex(index float64) {
	z.index = math.Max(1, index)
}

func (z *RefractiveZone) OuterIndex() float64 {
	return z.outer
}

func (z *RefractiveZone) SetOuterIndex(index float64) {
	z.outer = index
}

func (z *RefractiveZone) SetPosition(p geometry.Point) {
	z.position = p
	z.refresh()
}

func (z *RefractiveZone) Rotate(float64) {}

// Resize steps the refraction index by 0.1.
func (z *RefractiveZone) Resize(delta float64) {
	if delta > 0 && z.index < zoneMaxIndex {
		z.index += indexStep
	} else if delta < 0 && z.index > 1 {
		z.index = math.Max(1, z.index-indexStep)
	}
}

// Scale drags the bottom-right corner to corner.
func (z *RefractiveZone) Scale(corner geometry.Point) {
	if !z.flags.Resizable {
		return
	}
	z.width, z.height = scaleRect(z.position, z.width, z.height, corner, minScaledSide)
	z.refresh()
}

func (z *RefractiveZone) Contains(p geometry.Point) bool {
	return z.box.Contains(p)
}

func (z *RefractiveZone) Intersect(p1, p2 geometry.Point, segment geometry.LineEq) (geometry.Point, bool) {
	return rectIntersect(z.box, p1, p2, segment)
}

func (z *RefractiveZone) CheckOrientation(geometry.Point, geometry.Point, geometry.LineEq) bool {
	return true
}

// NormalLine is horizontal on the left and right edges and vertical on the top and bottom
// edges, corners included.
func (z *RefractiveZone) NormalLine(intersection, _ geometry.Point) geometry.LineEq {
	onSide := intersection.X == z.box.Min.X || intersection.X == z.box.Max.X
	onCorner := intersection.Y == z.box.Min.Y || intersection.Y == z.box.Max.Y
	if onSide && !onCorner {
		return geometry.NewLineThrough(geometry.Finite(0), intersection)
	}
	return geometry.NewLineThrough(geometry.Vertical, intersection)
}

// exiting reports whether the ray reached intersection by travelling through the zone.
func (z *RefractiveZone) exiting(source, intersection geometry.Point) bool {
	return z.box.Contains(geometry.Midpoint(source, intersection))
}

func (z *RefractiveZone) Bend(source, intersection geometry.Point, incident geometry.LineEq) (geometry.Point, optics.Interaction) {
	return refractiveBend(z, z.exiting(source, intersection), source, intersection, incident)
}

func (z *RefractiveZone) CheckSide(normal, incident, result geometry.LineEq, source, intersection geometry.Point) bool {
	return checkSide(normal, incident, result, source, intersection, false)
}
