package component

import (
	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/optics"
)

// alignedDegrees is the angle under which incident and outgoing lines count as the same line.
const alignedDegrees = 1.0

// checkSide decides whether the far point goes to -Big. The outgoing ray must land on the
// other side of the normal from the source. When the ray leaves along its own line the
// normal cannot tell the sides apart, so reverseAligned picks between bouncing straight
// back (mirrors) and carrying on (refracting bodies).
func checkSide(normal, incident, result geometry.LineEq, source, intersection geometry.Point, reverseAligned bool) bool {
	if normal.IsVertical() {
		return source.X > intersection.X
	}

	if !incident.IsVertical() && !result.IsVertical() &&
		geometry.Degrees(optics.AngleBetween(incident.Slope, result.Slope)) < alignedDegrees {
		if reverseAligned {
			return source.X < intersection.X
		}
		return source.X > intersection.X
	}

	sourceOnNormal := normal.YAt(source.X)
	farOnResult := result.YAt(geometry.Big)
	farOnNormal := normal.YAt(geometry.Big)

	return (source.Y < sourceOnNormal && farOnResult < farOnNormal) ||
		(source.Y > sourceOnNormal && farOnResult > farOnNormal)
}

// farPoint turns an outgoing slope into a point Big away from the intersection.
func farPoint(s Surface, normal, incident geometry.LineEq, result geometry.Slope, source, intersection geometry.Point, interaction optics.Interaction) geometry.Point {
	if result.IsVertical() {
		return verticalFarPoint(normal, source, intersection, interaction)
	}

	resultLine := geometry.NewLineThrough(result, intersection)

	farX := geometry.Big
	if s.CheckSide(normal, incident, resultLine, source, intersection) {
		farX = -geometry.Big
	}

	return geometry.Point{X: farX, Y: resultLine.YAt(farX)}
}

// verticalFarPoint picks +Big or -Big on the y axis for a vertical outgoing ray. A reflected
// ray stays on the source's side of the surface tangent, a refracted ray crosses it.
func verticalFarPoint(normal geometry.LineEq, source, intersection geometry.Point, interaction optics.Interaction) geometry.Point {
	up := geometry.Point{X: intersection.X, Y: -geometry.Big}
	down := geometry.Point{X: intersection.X, Y: geometry.Big}

	tangent := normal.Perpendicular(intersection)
	sourceSide := tangent.Side(source)
	downSide := tangent.Side(down)

	if sourceSide != 0 && downSide != 0 {
		if (sourceSide == downSide) == interaction.Reflects() {
			return down
		}
		return up
	}

	// Tangent is vertical too: keep or reverse the vertical direction of travel.
	goingDown := intersection.Y > source.Y
	if interaction.Reflects() {
		goingDown = !goingDown
	}
	if goingDown {
		return down
	}
	return up
}

// refractiveBend is the bend shared by zones, lenses and prisms.
func refractiveBend(r Refractive, exiting bool, source, intersection geometry.Point, incident geometry.LineEq) (geometry.Point, optics.Interaction) {
	normal := r.NormalLine(intersection, source)

	n1, n2 := r.OuterIndex(), r.RefractionIndex()
	if exiting {
		n1, n2 = n2, n1
	}

	result, interaction := optics.Refract(n1, n2, incident.Slope, normal.Slope)
	return farPoint(r, normal, incident, result, source, intersection, interaction), interaction
}

// reflectiveBend is the bend shared by plane and curved mirrors.
func reflectiveBend(s Surface, source, intersection geometry.Point, incident geometry.LineEq) (geometry.Point, optics.Interaction) {
	normal := s.NormalLine(intersection, source)
	result := optics.Reflect(incident.Slope, normal.Slope)
	return farPoint(s, normal, incident, result, source, intersection, optics.Reflected), optics.Reflected
}

// crossing is the entering/leaving state of a lens or prism. It flips on every refraction
// through one of the body's surfaces and is cleared whenever the body is missed.
type crossing struct {
	leaving bool
}

func (c *crossing) after(interaction optics.Interaction) {
	if interaction == optics.Refracted {
		c.leaving = !c.leaving
	}
}

func (c *crossing) ResetCrossing() {
	c.leaving = false
}
