// Package optics holds the reflection and refraction laws, expressed on line slopes
// so that they work directly with the line equations produced by the tracer.
package optics

import (
	"math"

	"github.com/meghashyamc/optics2d/geometry"
)

// criticalEpsilon lets an incidence computed at exactly the critical angle land on the
// reflection branch despite rounding in atan/asin.
const criticalEpsilon = 1e-9

type Interaction int

const (
	Reflected Interaction = iota
	Refracted
	TotalInternalReflection
)

func (i Interaction) String() string {
	switch i {
	case Reflected:
		return "reflected"
	case Refracted:
		return "refracted"
	case TotalInternalReflection:
		return "total internal reflection"
	}
	return "unknown"
}

// Reflects reports whether the outgoing ray stays on the incoming side of the surface.
func (i Interaction) Reflects() bool {
	return i != Refracted
}

// signedAngle is the rotation from the normal line to the incident line, wrapped to (-π/2, π/2].
func signedAngle(incident, normal geometry.Slope) float64 {
	delta := incident.Angle() - normal.Angle()
	for delta > math.Pi/2 {
		delta -= math.Pi
	}
	for delta <= -math.Pi/2 {
		delta += math.Pi
	}
	return delta
}

// AngleBetween is the acute angle between two lines, in radians.
func AngleBetween(a, b geometry.Slope) float64 {
	return math.Abs(signedAngle(a, b))
}

// Reflect mirrors the incident line about the normal line.
func Reflect(incident, normal geometry.Slope) geometry.Slope {
	if incident.Equal(normal) {
		return normal
	}
	return geometry.SlopeFromAngle(normal.Angle() - signedAngle(incident, normal))
}

// CriticalAngle is asin(n2/n1). It reports false when n2 >= n1, where no incidence
// angle can produce total internal reflection.
func CriticalAngle(n1, n2 float64) (float64, bool) {
	if n2 >= n1 {
		return 0, false
	}
	return math.Asin(n2 / n1), true
}

// Refract applies Snell's law going from index n1 into n2. Incidence at or past the
// critical angle falls back to Reflect.
func Refract(n1, n2 float64, incident, normal geometry.Slope) (geometry.Slope, Interaction) {
	delta := signedAngle(incident, normal)
	incidence := math.Abs(delta)

	if critical, ok := CriticalAngle(n1, n2); ok && incidence >= critical-criticalEpsilon {
		return Reflect(incident, normal), TotalInternalReflection
	}

	refracted := math.Asin(n1 * math.Sin(incidence) / n2)
	if delta < 0 {
		refracted = -refracted
	}

	return geometry.SlopeFromAngle(normal.Angle() + refracted), Refracted
}
