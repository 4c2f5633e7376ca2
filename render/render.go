// Package render draws a traced scene into an image, for snapshots and headless runs.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/meghashyamc/optics2d/component"
	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/scene"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	labelSize   = 12
	outlineSize = 2
	raySize     = 1.5
	glowRadius  = 4
)

var (
	Background = color.RGBA{0, 0, 0, 255}
	labelColor = color.RGBA{200, 200, 200, 255}
	glowColor  = color.RGBA{255, 200, 0, 255}
)

type Renderer struct {
	width, height int
	face          font.Face
	labels        bool
}

type Option func(*Renderer)

// WithoutLabels skips the object names and the stats line.
func WithoutLabels() Option {
	return func(r *Renderer) {
		r.labels = false
	}
}

func New(width, height int, opts ...Option) (*Renderer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    labelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create label face: %w", err)
	}

	r := &Renderer{
		width:  width,
		height: height,
		face:   face,
		labels: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Draw paints the objects and the current ray paths of s. It does not trace.
func (r *Renderer) Draw(s *scene.Scene) image.Image {
	return r.context(s).Image()
}

func (r *Renderer) SavePNG(s *scene.Scene, path string) error {
	if err := r.context(s).SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) context(s *scene.Scene) *gg.Context {
	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(Background)
	dc.Clear()

	for _, obj := range s.Objects() {
		if !r.visible(obj) {
			continue
		}
		for _, shape := range Outline(obj) {
			drawShape(dc, shape, outlineSize)
		}
		if o, ok := obj.(*component.Obstacle); ok {
			for _, p := range o.Collisions() {
				dc.DrawCircle(p.X, p.Y, glowRadius)
				dc.SetColor(glowColor)
				dc.Fill()
			}
		}
	}

	for _, src := range s.Sources() {
		if ray, ok := Ray(src); ok {
			drawShape(dc, ray, raySize)
		}
	}

	if r.labels {
		r.drawLabels(dc, s)
	}
	return dc
}

func drawShape(dc *gg.Context, shape Shape, width float64) {
	dc.SetColor(shape.Color)
	dc.SetLineWidth(width)

	if shape.IsDisc() {
		dc.DrawCircle(shape.Center.X, shape.Center.Y, shape.Radius)
		if shape.Filled {
			dc.Fill()
		} else {
			dc.Stroke()
		}
		return
	}

	if len(shape.Points) < 2 {
		return
	}
	dc.NewSubPath()
	dc.MoveTo(shape.Points[0].X, shape.Points[0].Y)
	for _, p := range shape.Points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	if shape.Closed {
		dc.ClosePath()
	}
	dc.Stroke()
}

func (r *Renderer) drawLabels(dc *gg.Context, s *scene.Scene) {
	dc.SetFontFace(r.face)
	dc.SetColor(labelColor)

	for _, obj := range s.Objects() {
		if !r.visible(obj) {
			continue
		}
		box := obj.Box()
		dc.DrawStringAnchored(label(obj), box.Center().X, box.Min.Y-4, 0.5, 0)
	}
	dc.DrawString(s.Stats().String(), 10, float64(r.height)-10)
}

// visible reports whether any part of obj's box lies on the canvas.
func (r *Renderer) visible(obj component.Object) bool {
	canvas := geometry.BoxAt(geometry.Point{}, float64(r.width), float64(r.height))
	return canvas.Intersects(obj.Box())
}

func label(obj component.Object) string {
	if refr, ok := obj.(component.Refractive); ok {
		return fmt.Sprintf("%s n=%.2f", obj.Kind(), refr.RefractionIndex())
	}
	return obj.Kind().String()
}

// PointColor reads the pixel at p, for callers that check what was drawn where.
func PointColor(img image.Image, p geometry.Point) color.RGBA {
	return color.RGBAModel.Convert(img.At(int(p.X), int(p.Y))).(color.RGBA)
}
