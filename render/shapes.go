package render

import (
	"image/color"

	"github.com/meghashyamc/optics2d/component"
	"github.com/meghashyamc/optics2d/geometry"
)

// arcSteps is how many segments one full circle is sampled into.
const arcSteps = 72

// Shape is one drawable piece of an object: a polyline, or a disc when Radius is set.
type Shape struct {
	Points []geometry.Point
	Closed bool

	Center geometry.Point
	Radius float64
	Filled bool

	Color color.RGBA
}

func (s Shape) IsDisc() bool {
	return s.Radius > 0
}

// Outline describes how obj is drawn. Unknown object types have no shapes.
func Outline(obj component.Object) []Shape {
	c := obj.Color()

	switch o := obj.(type) {
	case *component.PlaneMirror:
		a, b := o.Bounds()
		return []Shape{{Points: []geometry.Point{a, b}, Color: c}}

	case *component.CurvedMirror:
		start, length := o.Arc()
		return []Shape{{Points: arc(o.Position(), o.Radius(), start, length), Color: c}}

	case *component.RefractiveZone, *component.Obstacle:
		box := obj.Box()
		return []Shape{{Points: corners(box), Closed: true, Color: c}}

	case *component.Lens:
		c1, c2 := o.Centers()
		start, length := o.Arc()
		return []Shape{
			{Points: arc(c1, o.Radius(), start, length), Color: c},
			{Points: arc(c2, o.Radius(), start+180, length), Color: c},
		}

	case *component.Prism:
		v := o.Vertices()
		return []Shape{{Points: v[:], Closed: true, Color: c}}

	case *component.Target:
		return []Shape{{Center: o.Position(), Radius: o.Radius(), Filled: o.Hit(), Color: c}}

	case *component.Source:
		return []Shape{{Center: o.Position(), Radius: o.Radius(), Filled: o.On(), Color: c}}
	}

	return nil
}

// Ray returns the traced path of src as a polyline, or false when the source is off.
func Ray(src *component.Source) (Shape, bool) {
	if !src.On() {
		return Shape{}, false
	}
	return Shape{Points: src.Path(), Color: src.Color()}, true
}

func arc(center geometry.Point, radius, start, length float64) []geometry.Point {
	steps := int(length/360*arcSteps) + 1
	return geometry.ArcPoints(center, radius, start, length, steps)
}

func corners(b geometry.Box) []geometry.Point {
	return []geometry.Point{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	}
}
