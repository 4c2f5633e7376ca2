package component

import (
	"github.com/meghashyamc/optics2d/geometry"
)

// nearDuplicate is the distance under which a rectangle edge hit is treated as the
// point the ray is leaving from.
const nearDuplicate = 2.0

// rectIntersect finds where the segment p1->p2 meets the edges of box.
func rectIntersect(box geometry.Box, p1, p2 geometry.Point, segment geometry.LineEq) (geometry.Point, bool) {
	left, top := box.Min.X, box.Min.Y
	right, bottom := box.Max.X, box.Max.Y

	var inter geometry.Point

	switch {
	case segment.IsVertical():
		inter.X = p1.X
		if p1.Y < p2.Y {
			inter.Y = bottom
			if p1.Y < top {
				inter.Y = top
			}
		} else {
			inter.Y = top
			if p1.Y > bottom {
				inter.Y = bottom
			}
		}

	case segment.Slope.Value() == 0:
		inter.Y = p1.Y
		if p1.X < p2.X {
			inter.X = right
			if p1.X < left {
				inter.X = left
			}
		} else {
			inter.X = left
			if p1.X > right {
				inter.X = right
			}
		}

	default:
		candidates := []geometry.Point{
			{X: segment.XAt(top), Y: top},
			{X: segment.XAt(bottom), Y: bottom},
			{X: left, Y: segment.YAt(left)},
			{X: right, Y: segment.YAt(right)},
		}

		valid := candidates[:0]
		for _, c := range candidates {
			if box.Contains(c) && geometry.SameDirection(p1, p2, c) {
				valid = append(valid, c)
			}
		}
		if len(valid) == 0 {
			return geometry.Point{}, false
		}

		inter = valid[0]
		if p1.Distance(inter) < nearDuplicate && len(valid) > 1 {
			inter = valid[1]
		}
		for _, c := range valid[1:] {
			d := p1.Distance(c)
			if p1.Distance(inter) > d && d >= nearDuplicate {
				inter = c
			}
		}
	}

	if !box.Contains(inter) || geometry.Approx(p1, inter, geometry.Tolerance) || !geometry.SameDirection(p1, p2, inter) {
		return geometry.Point{}, false
	}
	return inter, true
}

// scaleRect moves the bottom-right corner of a rectangle anchored at topLeft, keeping
// each side longer than minSide.
func scaleRect(topLeft geometry.Point, width, height float64, corner geometry.Point, minSide float64) (float64, float64) {
	if corner.X-topLeft.X > minSide {
		width = corner.X - topLeft.X
	}
	if corner.Y-topLeft.Y > minSide {
		height = corner.Y - topLeft.Y
	}
	return width, height
}
