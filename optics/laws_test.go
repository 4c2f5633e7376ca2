package optics

import (
	"math"
	"testing"

	"github.com/meghashyamc/optics2d/geometry"
	"gonum.org/v1/gonum/floats/scalar"
)

const tolerance = 1e-9

func slopeEqual(t *testing.T, got, want geometry.Slope) {
	t.Helper()
	if got.IsVertical() || want.IsVertical() {
		if got.IsVertical() != want.IsVertical() {
			t.Fatalf("slope = %v, want %v", got, want)
		}
		return
	}
	if !scalar.EqualWithinAbs(got.Value(), want.Value(), tolerance) {
		t.Fatalf("slope = %v, want %v", got, want)
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b geometry.Slope
		want float64
	}{
		{"same line", geometry.Finite(1), geometry.Finite(1), 0},
		{"perpendicular", geometry.Finite(0), geometry.Vertical, math.Pi / 2},
		{"45 degrees", geometry.Finite(1), geometry.Finite(0), math.Pi / 4},
		{"obtuse pair measured acute", geometry.Finite(-1), geometry.Finite(0.0), math.Pi / 4},
		{"vertical and 60 degrees", geometry.Vertical, geometry.Finite(math.Sqrt(3)), math.Pi / 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngleBetween(tt.a, tt.b); !scalar.EqualWithinAbs(got, tt.want, tolerance) {
				t.Errorf("AngleBetween() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name             string
		incident, normal geometry.Slope
		want             geometry.Slope
	}{
		{"along the normal", geometry.Finite(0.5), geometry.Finite(0.5), geometry.Finite(0.5)},
		{"both vertical", geometry.Vertical, geometry.Vertical, geometry.Vertical},
		{"horizontal on a vertical mirror", geometry.Finite(0), geometry.Finite(0), geometry.Finite(0)},
		{"45 degrees off a horizontal normal", geometry.Finite(1), geometry.Finite(0), geometry.Finite(-1)},
		{"vertical normal flips the sign", geometry.Finite(2), geometry.Vertical, geometry.Finite(-2)},
		{"vertical incident", geometry.Vertical, geometry.Finite(1), geometry.Finite(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slopeEqual(t, Reflect(tt.incident, tt.normal), tt.want)
		})
	}
}

func TestRefractPerpendicularIncidence(t *testing.T) {
	got, interaction := Refract(1, 1.5, geometry.Finite(0), geometry.Finite(0))
	if interaction != Refracted {
		t.Fatalf("interaction = %v, want %v", interaction, Refracted)
	}
	slopeEqual(t, got, geometry.Finite(0))
}

func TestRefractReversible(t *testing.T) {
	normals := []geometry.Slope{geometry.Finite(0), geometry.Vertical, geometry.Finite(2), geometry.Finite(-0.3)}
	incidents := []geometry.Slope{geometry.Finite(0.3), geometry.Finite(-4), geometry.Finite(1.2)}

	for _, normal := range normals {
		for _, incident := range incidents {
			there, interaction := Refract(1.0, 1.5, incident, normal)
			if interaction != Refracted {
				t.Fatalf("entering a denser medium must refract, got %v", interaction)
			}
			back, interaction := Refract(1.5, 1.0, there, normal)
			if interaction != Refracted {
				t.Fatalf("return trip must refract, got %v", interaction)
			}
			slopeEqual(t, back, incident)
		}
	}
}

func TestRefractBendsTowardNormal(t *testing.T) {
	normal := geometry.Finite(0)
	incident := geometry.Finite(1)

	got, _ := Refract(1.0, 1.5, incident, normal)
	if AngleBetween(got, normal) >= AngleBetween(incident, normal) {
		t.Errorf("refracted angle %v should be smaller than incidence %v",
			AngleBetween(got, normal), AngleBetween(incident, normal))
	}

	wantSin := math.Sin(math.Pi/4) / 1.5
	if gotSin := math.Sin(AngleBetween(got, normal)); !scalar.EqualWithinAbs(gotSin, wantSin, tolerance) {
		t.Errorf("sin(refracted) = %v, want %v", gotSin, wantSin)
	}
}

func TestRefractCriticalAngle(t *testing.T) {
	critical, ok := CriticalAngle(1.5, 1.0)
	if !ok {
		t.Fatal("glass to air must have a critical angle")
	}

	normal := geometry.Finite(0)
	incident := geometry.SlopeFromAngle(critical)

	got, interaction := Refract(1.5, 1.0, incident, normal)
	if interaction != TotalInternalReflection {
		t.Fatalf("interaction at the critical angle = %v, want %v", interaction, TotalInternalReflection)
	}
	slopeEqual(t, got, Reflect(incident, normal))

	below := geometry.SlopeFromAngle(critical - 0.01)
	if _, interaction := Refract(1.5, 1.0, below, normal); interaction != Refracted {
		t.Errorf("interaction below the critical angle = %v, want %v", interaction, Refracted)
	}
}

func TestCriticalAngleDenserTarget(t *testing.T) {
	if _, ok := CriticalAngle(1.0, 1.5); ok {
		t.Error("air to glass must not have a critical angle")
	}
	if _, interaction := Refract(1.0, 1.5, geometry.Finite(100), geometry.Finite(0)); interaction != Refracted {
		t.Errorf("grazing entry into a denser medium = %v, want %v", interaction, Refracted)
	}
}
