package scenefile

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/meghashyamc/optics2d/component"
	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/scene"
)

func TestDefaultSceneBuilds(t *testing.T) {
	doc, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if doc.Name != "bench" {
		t.Errorf("Name = %q, want %q", doc.Name, "bench")
	}

	objects, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(objects) != len(doc.Objects) {
		t.Fatalf("Build() returned %d objects, want %d", len(objects), len(doc.Objects))
	}

	kinds := map[component.Kind]int{}
	for _, obj := range objects {
		kinds[obj.Kind()]++
	}
	for _, kind := range []component.Kind{
		component.KindSource,
		component.KindPlaneMirror,
		component.KindCurvedMirror,
		component.KindRefractiveZone,
		component.KindLens,
		component.KindPrism,
		component.KindObstacle,
		component.KindTarget,
	} {
		if kinds[kind] == 0 {
			t.Errorf("default scene has no %s", kind)
		}
	}
}

func TestParseBuildsConfiguredObjects(t *testing.T) {
	data := []byte(`
name: custom
objects:
  - kind: source
    x: 10
    y: 20
    angle: 45
    on: true
    color: "#00ff00"
  - kind: zone
    x: 100
    y: 100
    width: 50
    height: 60
    index: 1.7
    locked: true
  - kind: prism
    x: 300
    y: 300
    side: 60
  - kind: obstacle
    x: 500
    y: 500
    width: 10
    height: 40
  - kind: curved_mirror
    x: 0
    y: 0
    radius: 50
    arc_start: 0
    arc_length: 90
    divergent: true
  - kind: mirror
    x: 0
    y: 0
    x2: 0
    y2: 100
`)
	doc, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	objects, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	src, ok := objects[0].(*component.Source)
	if !ok {
		t.Fatalf("object 0 is %T, want *component.Source", objects[0])
	}
	if src.Angle() != 45 || !src.On() {
		t.Errorf("source angle = %v on = %v, want 45 true", src.Angle(), src.On())
	}
	if got, want := src.Color(), (color.RGBA{0, 255, 0, 255}); got != want {
		t.Errorf("source color = %v, want %v", got, want)
	}

	zone := objects[1].(*component.RefractiveZone)
	if w, h := zone.Size(); w != 50 || h != 60 {
		t.Errorf("zone size = %vx%v, want 50x60", w, h)
	}
	if zone.RefractionIndex() != 1.7 {
		t.Errorf("zone index = %v, want 1.7", zone.RefractionIndex())
	}
	if zone.Flags().Movable || zone.Flags().Selectable {
		t.Errorf("locked zone flags = %+v", *zone.Flags())
	}

	prism := objects[2].(*component.Prism)
	if got := prism.Side(); got < 59.999 || got > 60.001 {
		t.Errorf("prism side = %v, want 60", got)
	}
	if prism.Angle() != 90 {
		t.Errorf("prism angle = %v, want the default 90", prism.Angle())
	}

	obstacle := objects[3].(*component.Obstacle)
	if w, h := obstacle.Size(); w != 10 || h != 40 {
		t.Errorf("obstacle size = %vx%v, want 10x40", w, h)
	}

	mirror := objects[4].(*component.CurvedMirror)
	if mirror.Convergent() {
		t.Error("curved mirror should be divergent")
	}
	if mirror.Radius() != 50 {
		t.Errorf("curved mirror radius = %v, want 50", mirror.Radius())
	}

	plane := objects[5].(*component.PlaneMirror)
	a, b := plane.Bounds()
	if a != (geometry.Point{X: 0, Y: 0}) || b != (geometry.Point{X: 0, Y: 100}) {
		t.Errorf("plane mirror bounds = %v %v", a, b)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "unknown kind",
			data: "objects:\n  - kind: laser\n    x: 1\n",
			want: ErrUnknownKind,
		},
		{
			name: "bad color",
			data: "objects:\n  - kind: target\n    color: \"#12\"\n",
			want: ErrBadColor,
		},
		{
			name: "no objects",
			data: "name: empty\n",
			want: ErrEmptyScene,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.data))
			if err == nil {
				_, err = doc.Build()
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := "name: file\nobjects:\n  - kind: target\n    x: 5\n    y: 6\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	objects, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(objects) != 1 || objects[0].Position() != (geometry.Point{X: 5, Y: 6}) {
		t.Errorf("objects = %v", objects)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff8000", color.RGBA{255, 128, 0, 255}, true},
		{"00ff0080", color.RGBA{0, 255, 0, 128}, true},
		{"#zzzzzz", color.RGBA{}, false},
		{"#fff", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("parseColor(%q) error = %v, want ok %v", tt.in, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Debug(string, ...interface{}) {}

func TestOpenAndPopulate(t *testing.T) {
	doc, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") error = %v", err)
	}

	s := scene.New(scene.WithLogger(nopLogger{}))
	if err := doc.Populate(s); err != nil {
		t.Fatalf("Populate() error = %v", err)
	}
	if s.Len() != len(doc.Objects) {
		t.Errorf("scene has %d objects, want %d", s.Len(), len(doc.Objects))
	}
	if len(s.Sources()) != 1 {
		t.Errorf("scene has %d sources, want 1", len(s.Sources()))
	}

	bad := &Document{Objects: []ObjectSpec{{Kind: "target"}, {Kind: "laser"}}}
	empty := scene.New(scene.WithLogger(nopLogger{}))
	if err := bad.Populate(empty); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Populate() error = %v, want %v", err, ErrUnknownKind)
	}
	if empty.Len() != 0 {
		t.Errorf("failed Populate() added %d objects", empty.Len())
	}
}
