// Package component holds the optical and non-optical objects a scene is built from.
//
// Every object implements Object. Mirrors, refractive zones, lenses and prisms also
// implement Surface, which the tracer uses to bend a ray at the point it struck.
package component

import (
	"image/color"
	"strings"

	"github.com/google/uuid"
	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/optics"
)

type Kind int

const (
	KindPlaneMirror Kind = iota
	KindCurvedMirror
	KindRefractiveZone
	KindLens
	KindPrism
	KindObstacle
	KindTarget
	KindSource
)

var kindNames = map[Kind]string{
	KindPlaneMirror:    "mirror",
	KindCurvedMirror:   "curved_mirror",
	KindRefractiveZone: "zone",
	KindLens:           "lens",
	KindPrism:          "prism",
	KindObstacle:       "obstacle",
	KindTarget:         "target",
	KindSource:         "source",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, true
		}
	}
	return 0, false
}

// Object is the capability set shared by everything that can sit in a scene.
type Object interface {
	ID() uuid.UUID
	SetID(id uuid.UUID)
	Kind() Kind

	Position() geometry.Point
	SetPosition(p geometry.Point)
	Box() geometry.Box
	Contains(p geometry.Point) bool

	// Intersect returns the first valid point where the segment p1->p2 meets the object.
	// A valid point is on the object, not approximately p1 and ahead of p1.
	Intersect(p1, p2 geometry.Point, segment geometry.LineEq) (geometry.Point, bool)

	Rotate(deltaDegrees float64)
	Resize(delta float64)

	Flags() *Flags
	SetSelected(selected bool)
	Color() color.RGBA
	SetColor(c color.RGBA)
}

// Surface is an object that bends rays instead of stopping them.
type Surface interface {
	Object

	NormalLine(intersection, source geometry.Point) geometry.LineEq

	// Bend returns a far point in the direction the ray leaves the surface.
	Bend(source, intersection geometry.Point, incident geometry.LineEq) (geometry.Point, optics.Interaction)

	// CheckSide reports whether the outgoing ray runs toward -Big on the x axis.
	CheckSide(normal, incident, result geometry.LineEq, source, intersection geometry.Point) bool

	// CheckOrientation reports whether the face the ray struck is the active one.
	CheckOrientation(source, intersection geometry.Point, segment geometry.LineEq) bool
}

// Refractive is a Surface with a refraction index and a surrounding medium.
type Refractive interface {
	Surface
	RefractionIndex() float64
	OuterIndex() float64
	SetOuterIndex(index float64)
}

// Flags is the selection and lock state an editor uses to decide what a user may change.
type Flags struct {
	Movable    bool
	Resizable  bool
	Rotatable  bool
	Selectable bool
	Selected   bool
}

func DefaultFlags() Flags {
	return Flags{
		Movable:    true,
		Resizable:  true,
		Rotatable:  true,
		Selectable: true,
	}
}

// Locked makes the object fixed in place but still visible to rays.
func (f *Flags) Locked() {
	f.Movable = false
	f.Resizable = false
	f.Rotatable = false
	f.Selectable = false
	f.Selected = false
}

var (
	colorCyan  = color.RGBA{0, 255, 255, 255}
	colorRed   = color.RGBA{255, 0, 0, 255}
	colorWhite = color.RGBA{255, 255, 255, 255}
	colorGray  = color.RGBA{90, 90, 90, 255}
)

type base struct {
	id       uuid.UUID
	position geometry.Point
	box      geometry.Box
	flags    Flags
	color    color.RGBA
}

func newBase(position geometry.Point, c color.RGBA) base {
	return base{
		position: position,
		flags:    DefaultFlags(),
		color:    c,
	}
}

func (b *base) ID() uuid.UUID {
	return b.id
}

func (b *base) SetID(id uuid.UUID) {
	b.id = id
}

func (b *base) Position() geometry.Point {
	return b.position
}

func (b *base) Box() geometry.Box {
	return b.box
}

func (b *base) Flags() *Flags {
	return &b.flags
}

func (b *base) SetSelected(selected bool) {
	if selected && !b.flags.Selectable {
		return
	}
	b.flags.Selected = selected
}

func (b *base) Color() color.RGBA {
	return b.color
}

func (b *base) SetColor(c color.RGBA) {
	b.color = c
}
