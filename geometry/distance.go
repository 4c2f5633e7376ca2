package geometry

import (
	"math"
)

// DistanceFromPointToSegment is the distance from point to the nearest point of the segment
func DistanceFromPointToSegment(point, lineStart, lineEnd Point) float64 {
	lineVec := lineEnd.Sub(lineStart)
	lengthSquared := lineVec.DotProduct(lineVec)
	if lengthSquared == 0 {
		return point.Distance(lineStart)
	}

	// Project point onto the segment, clamped to [0, 1]
	t := point.Sub(lineStart).DotProduct(lineVec) / lengthSquared
	t = math.Max(0, math.Min(1, t))

	return point.Distance(lineStart.Add(lineVec.Scale(t)))
}
