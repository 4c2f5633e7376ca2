package game

import (
	"cmp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/meghashyamc/optics2d/geometry"
)

func getCurrentMousePosition() geometry.Point {
	mouseX, mouseY := ebiten.CursorPosition()
	return geometry.Point{X: float64(mouseX), Y: float64(mouseY)}
}

func isShiftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift)
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}
