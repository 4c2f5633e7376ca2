package component

import (
	"github.com/meghashyamc/optics2d/geometry"
)

// circleHit returns the root of segment and the circle that is closest to p1 among
// those ahead of it.
func circleHit(center geometry.Point, radius float64, p1, p2 geometry.Point, segment geometry.LineEq) (geometry.Point, bool) {
	a, b, ok := geometry.CircleLine(segment, radius, center)
	if !ok {
		return geometry.Point{}, false
	}
	closeSol, farSol := geometry.CloseFar(p1, a, b)

	for _, candidate := range []geometry.Point{closeSol, farSol} {
		if !geometry.Approx(p1, candidate, geometry.Tolerance) && geometry.SameDirection(p1, p2, candidate) {
			return candidate, true
		}
	}
	return geometry.Point{}, false
}
