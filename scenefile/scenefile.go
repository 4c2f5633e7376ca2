// Package scenefile reads scene descriptions written in YAML and turns them into
// components.
package scenefile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/meghashyamc/optics2d/component"
	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/scene"
	"github.com/spf13/viper"
)

//go:embed default.yaml
var defaultScene []byte

var (
	ErrUnknownKind = errors.New("unknown object kind")
	ErrBadColor    = errors.New("bad color")
	ErrEmptyScene  = errors.New("scene has no objects")
)

type Document struct {
	Name    string       `mapstructure:"name"`
	Objects []ObjectSpec `mapstructure:"objects"`
}

// ObjectSpec describes one object. Which fields matter depends on Kind; zero values
// keep the component defaults.
type ObjectSpec struct {
	Kind string  `mapstructure:"kind"`
	X    float64 `mapstructure:"x"`
	Y    float64 `mapstructure:"y"`
	// X2 and Y2 are the second bound of a plane mirror.
	X2 float64 `mapstructure:"x2"`
	Y2 float64 `mapstructure:"y2"`

	Width     float64 `mapstructure:"width"`
	Height    float64 `mapstructure:"height"`
	Radius    float64 `mapstructure:"radius"`
	Side      float64 `mapstructure:"side"`
	Angle     float64 `mapstructure:"angle"`
	ArcStart  float64 `mapstructure:"arc_start"`
	ArcLength float64 `mapstructure:"arc_length"`
	Index     float64 `mapstructure:"index"`

	Divergent bool   `mapstructure:"divergent"`
	On        bool   `mapstructure:"on"`
	Locked    bool   `mapstructure:"locked"`
	Color     string `mapstructure:"color"`
}

// Default returns the built-in demo scene.
func Default() (*Document, error) {
	return Parse(defaultScene)
}

func Parse(data []byte) (*Document, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return decode(v)
}

func Load(path string) (*Document, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}
	return decode(v)
}

// Open loads the scene at path, or the built-in scene when path is empty.
func Open(path string) (*Document, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

func decode(v *viper.Viper) (*Document, error) {
	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if len(doc.Objects) == 0 {
		return nil, ErrEmptyScene
	}
	return &doc, nil
}

// Build creates the components in document order.
func (d *Document) Build() ([]component.Object, error) {
	objects := make([]component.Object, 0, len(d.Objects))
	for i, spec := range d.Objects {
		obj, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// Populate builds the document and adds every object to s. Nothing is added on error.
func (d *Document) Populate(s *scene.Scene) error {
	objects, err := d.Build()
	if err != nil {
		return err
	}
	for _, obj := range objects {
		s.Add(obj)
	}
	return nil
}

func (s ObjectSpec) Build() (component.Object, error) {
	kind, ok := component.ParseKind(s.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}

	at := geometry.Point{X: s.X, Y: s.Y}

	var obj component.Object
	switch kind {
	case component.KindPlaneMirror:
		obj = component.NewPlaneMirror(at, geometry.Point{X: s.X2, Y: s.Y2})

	case component.KindCurvedMirror:
		m := component.NewCurvedMirror(at)
		if s.Radius > 0 {
			m.SetRadius(s.Radius)
		}
		if s.ArcLength > 0 {
			m.SetArc(s.ArcStart, s.ArcLength)
		}
		m.SetConvergent(!s.Divergent)
		obj = m

	case component.KindRefractiveZone:
		z := component.NewDefaultRefractiveZone(at)
		if s.Width > 0 && s.Height > 0 {
			z = component.NewRefractiveZone(at, s.Width, s.Height)
		}
		if s.Index > 0 {
			z.SetRefractionIndex(s.Index)
		}
		obj = z

	case component.KindLens:
		l := component.NewLens(at)
		if s.Radius > 0 {
			l.SetRadius(s.Radius)
		}
		if s.ArcLength > 0 {
			l.SetArc(s.ArcStart, s.ArcLength)
		}
		if s.Index > 0 {
			l.SetRefractionIndex(s.Index)
		}
		obj = l

	case component.KindPrism:
		p := component.NewPrism(at)
		if s.Side > 0 || s.Angle != 0 {
			side, angle := p.Side(), p.Angle()
			if s.Side > 0 {
				side = s.Side
			}
			if s.Angle != 0 {
				angle = s.Angle
			}
			p.SetGeometry(side, angle)
		}
		if s.Index > 0 {
			p.SetRefractionIndex(s.Index)
		}
		obj = p

	case component.KindObstacle:
		o := component.NewObstacle(at)
		if s.Width > 0 && s.Height > 0 {
			o.SetSize(s.Width, s.Height)
		}
		obj = o

	case component.KindTarget:
		obj = component.NewTarget(at)

	case component.KindSource:
		src := component.NewSource(at)
		if s.Angle != 0 {
			src.SetAngle(s.Angle)
		}
		src.SetOn(s.On)
		obj = src
	}

	if s.Color != "" {
		c, err := parseColor(s.Color)
		if err != nil {
			return nil, err
		}
		obj.SetColor(c)
	}
	if s.Locked {
		obj.Flags().Locked()
	}

	return obj, nil
}

// parseColor reads #rrggbb or #rrggbbaa.
func parseColor(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	c := color.RGBA{A: 255}
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = errors.New("want 6 or 8 hex digits")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q: %v", ErrBadColor, hex, err)
	}
	return c, nil
}
