package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/optics2d/component"
	"github.com/meghashyamc/optics2d/geometry"
)

const (
	// rotateStep is the rotation per wheel notch, in degrees.
	rotateStep = 2.0
	// maxWheelStep caps one frame of wheel input; touchpads report large bursts.
	maxWheelStep = 3.0
)

// scaler is implemented by objects whose bottom-right corner can be dragged.
type scaler interface {
	Scale(corner geometry.Point)
}

func (g *Game) handleInput() {
	mouse := getCurrentMousePosition()

	g.handleMouse(mouse)
	g.handleWheel()
	g.handleKeys()
}

func (g *Game) handleMouse(mouse geometry.Point) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.selectAt(mouse)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	if g.selected == nil {
		return
	}
	flags := g.selected.Flags()

	if g.dragging && flags.Movable && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.selected.SetPosition(mouse.Sub(g.dragOffset))
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if s, ok := g.selected.(scaler); ok {
			s.Scale(mouse)
		}
	}
}

func (g *Game) selectAt(mouse geometry.Point) {
	obj, ok := g.scene.At(mouse)
	if !ok || !obj.Flags().Selectable {
		g.deselect()
		return
	}

	if g.selected != nil && g.selected.ID() != obj.ID() {
		g.selected.SetSelected(false)
	}
	obj.SetSelected(true)
	g.selected = obj
	g.dragOffset = mouse.Sub(obj.Position())
	g.dragging = true

	g.logger.Debug("object selected", "id", obj.ID().String(), "kind", obj.Kind().String())
}

func (g *Game) deselect() {
	if g.selected != nil {
		g.selected.SetSelected(false)
	}
	g.selected = nil
	g.dragging = false
}

// handleWheel rotates the selection, or resizes it while Shift is held.
func (g *Game) handleWheel() {
	if g.selected == nil {
		return
	}
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	dy = clampValue(dy, -maxWheelStep, maxWheelStep)

	flags := g.selected.Flags()
	if isShiftPressed() {
		if flags.Resizable {
			g.selected.Resize(dy)
		}
		return
	}
	if flags.Rotatable {
		g.selected.Rotate(dy * rotateStep)
	}
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset()
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.saveSnapshot()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.deselect()
	}

	if g.selected == nil {
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.removeSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if src, ok := g.selected.(*component.Source); ok {
			src.SetOn(!src.On())
			g.logger.Debug("source toggled", "id", src.ID().String(), "on", src.On())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if m, ok := g.selected.(*component.CurvedMirror); ok && g.selected.Flags().Resizable {
			m.SetConvergent(!m.Convergent())
		}
	}
}

func (g *Game) removeSelected() {
	id := g.selected.ID()
	g.deselect()
	g.scene.Remove(id)
}
