package component

import (
	"github.com/google/uuid"
	"github.com/meghashyamc/optics2d/geometry"
)

const (
	obstacleWidth  = 25.0
	obstacleHeight = 100.0
)

// Obstacle is an opaque rectangle that stops every ray reaching it. Its position is the
// top-left corner.
type Obstacle struct {
	base
	width, height float64

	// collisions keeps the last point each ray struck, in the order rays first arrived.
	collisions map[uuid.UUID]geometry.Point
	order      []uuid.UUID
}

func NewObstacle(topLeft geometry.Point) *Obstacle {
	o := &Obstacle{
		base:       newBase(topLeft, colorGray),
		width:      obstacleWidth,
		height:     obstacleHeight,
		collisions: make(map[uuid.UUID]geometry.Point),
	}
	o.refresh()
	return o
}

func (o *Obstacle) Kind() Kind {
	return KindObstacle
}

func (o *Obstacle) refresh() {
	o.box = geometry.BoxAt(o.position, o.width, o.height).Clamp(1)
}

func (o *Obstacle) Size() (float64, float64) {
	return o.box.Width(), o.box.Height()
}

func (o *Obstacle) SetSize(width, height float64) {
	o.width, o.height = width, height
	o.refresh()
}

func (o *Obstacle) SetPosition(p geometry.Point) {
	o.position = p
	o.refresh()
}

func (o *Obstacle) Rotate(float64) {}

func (o *Obstacle) Resize(float64) {}

// Scale drags the bottom-right corner to corner.
func (o *Obstacle) Scale(corner geometry.Point) {
	if !o.flags.Resizable {
		return
	}
	o.width, o.height = scaleRect(o.position, o.width, o.height, corner, minScaledSide)
	o.refresh()
}

func (o *Obstacle) Contains(p geometry.Point) bool {
	return o.box.Contains(p)
}

func (o *Obstacle) Intersect(p1, p2 geometry.Point, segment geometry.LineEq) (geometry.Point, bool) {
	return rectIntersect(o.box, p1, p2, segment)
}

// RecordCollision stores where ray stopped on the obstacle, replacing the previous point
// for the same ray.
func (o *Obstacle) RecordCollision(ray uuid.UUID, p geometry.Point) {
	if _, ok := o.collisions[ray]; !ok {
		o.order = append(o.order, ray)
	}
	o.collisions[ray] = p
}

// Collisions returns the stored points, one per ray.
func (o *Obstacle) Collisions() []geometry.Point {
	points := make([]geometry.Point, 0, len(o.order))
	for _, id := range o.order {
		points = append(points, o.collisions[id])
	}
	return points
}

// ConsumeCollisions returns the stored points and forgets them.
func (o *Obstacle) ConsumeCollisions() []geometry.Point {
	points := o.Collisions()
	o.collisions = make(map[uuid.UUID]geometry.Point)
	o.order = nil
	return points
}
