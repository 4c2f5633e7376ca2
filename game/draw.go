package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/optics2d/assets"
	"github.com/meghashyamc/optics2d/component"
	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/render"
)

const (
	outlineWidth = 2
	rayWidth     = 1.5
	glowRadius   = 4
	selectMargin = 3
)

var (
	colorSelection = color.RGBA{255, 255, 0, 255}
	colorGlow      = color.RGBA{255, 200, 0, 255}
	colorSolved    = color.RGBA{50, 255, 50, 255}
)

const instructionText = "Click select/drag  Wheel rotate  Shift+Wheel resize  Right drag scale  Space source  C curve  Del remove  S snapshot  R reload"

func (g *Game) drawScene(screen *ebiten.Image) {
	for _, obj := range g.scene.Objects() {
		for _, shape := range render.Outline(obj) {
			drawShape(screen, shape, outlineWidth)
		}
	}

	for _, p := range g.glow {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), glowRadius, colorGlow, true)
	}

	for _, src := range g.scene.Sources() {
		if ray, ok := render.Ray(src); ok {
			drawShape(screen, ray, rayWidth)
		}
	}

	if g.selected != nil {
		box := g.selected.Box()
		margin := geometry.Point{X: selectMargin, Y: selectMargin}
		g.drawRectangleOutline(screen, geometry.NewBox(box.Min.Sub(margin), box.Max.Add(margin)), colorSelection)
	}
}

func drawShape(screen *ebiten.Image, shape render.Shape, width float32) {
	if shape.IsDisc() {
		cx, cy, r := float32(shape.Center.X), float32(shape.Center.Y), float32(shape.Radius)
		if shape.Filled {
			vector.DrawFilledCircle(screen, cx, cy, r, shape.Color, true)
		} else {
			vector.StrokeCircle(screen, cx, cy, r, width, shape.Color, true)
		}
		return
	}

	points := shape.Points
	for i := 1; i < len(points); i++ {
		strokeSegment(screen, points[i-1], points[i], width, shape.Color)
	}
	if shape.Closed && len(points) > 2 {
		strokeSegment(screen, points[len(points)-1], points[0], width, shape.Color)
	}
}

func strokeSegment(screen *ebiten.Image, a, b geometry.Point, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("Scene: %s (%d objects)", g.sceneName, g.scene.Len()),
		g.selectionText(),
	}
	if g.userMessage != "" {
		lines = append(lines, g.userMessage)
	}

	for i, line := range lines {
		if line == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(20, 20+float64(i)*24)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, assets.HUDFont, op)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(20, float64(g.height)-30)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, instructionText, assets.HUDFont, op)
}

func (g *Game) selectionText() string {
	if g.selected == nil {
		return ""
	}
	p := g.selected.Position()
	desc := fmt.Sprintf("Selected: %s at (%.0f, %.0f)", g.selected.Kind(), p.X, p.Y)

	switch o := g.selected.(type) {
	case *component.Source:
		desc += fmt.Sprintf(" angle %.0f", o.Angle())
	case *component.CurvedMirror:
		start, length := o.Arc()
		desc += fmt.Sprintf(" radius %.0f arc %.0f+%.0f convergent %t", o.Radius(), start, length, o.Convergent())
	case *component.Lens:
		start, length := o.Arc()
		desc += fmt.Sprintf(" radius %.0f arc %.0f+%.0f", o.Radius(), start, length)
	case *component.Prism:
		desc += fmt.Sprintf(" side %.0f angle %.0f", o.Side(), o.Angle())
	case *component.PlaneMirror:
		desc += fmt.Sprintf(" length %.0f %s", o.Length(), o.Orientation())
	}

	if r, ok := g.selected.(component.Refractive); ok {
		desc += fmt.Sprintf(" n=%.2f outside n=%.2f", r.RefractionIndex(), r.OuterIndex())
	}
	return desc
}

func (g *Game) drawSolved(screen *ebiten.Image) {
	screenWidth, screenHeight := float64(g.width), float64(g.height)

	outOp := &text.DrawOptions{}
	outOp.GeoM.Scale(2.0, 2.0)
	outOp.GeoM.Translate(screenWidth/2-120, screenHeight/2-100)
	outOp.ColorScale.ScaleWithColor(colorSolved)
	text.Draw(screen, g.userMessage, assets.HUDFont, outOp)

	statsOp := &text.DrawOptions{}
	statsOp.GeoM.Translate(screenWidth/2-120, screenHeight/2-40)
	statsOp.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, fmt.Sprintf("Scene: %s", g.sceneName), assets.HUDFont, statsOp)

	restartOp := &text.DrawOptions{}
	restartOp.GeoM.Translate(screenWidth/2-120, screenHeight/2-10)
	restartOp.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, "Press R to reload, S to save a snapshot", assets.HUDFont, restartOp)
}

func (g *Game) drawRectangleOutline(screen *ebiten.Image, box geometry.Box, col color.Color) {
	// Create a 1-pixel image to draw lines with
	lineImg := ebiten.NewImage(1, 1)
	lineImg.Fill(col)

	x, y := box.Min.X, box.Min.Y
	width, height := box.Width(), box.Height()

	// Draw top line
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, 1)
	op.GeoM.Translate(x, y)
	screen.DrawImage(lineImg, op)

	// Draw bottom line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, 1)
	op.GeoM.Translate(x, y+height-1)
	screen.DrawImage(lineImg, op)

	// Draw left line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, height)
	op.GeoM.Translate(x, y)
	screen.DrawImage(lineImg, op)

	// Draw right line
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, height)
	op.GeoM.Translate(x+width-1, y)
	screen.DrawImage(lineImg, op)
}
