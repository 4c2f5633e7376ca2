package component

import (
	"math"

	"github.com/meghashyamc/optics2d/geometry"
	"github.com/meghashyamc/optics2d/optics"
)

const (
	prismSide    = 100.0
	prismAngle   = 90.0
	prismMaxSide = 200.0
	prismMinSide = 15.0
	prismIndex   = 1.3
	// edgeSlack widens each edge's bounding rectangle when accepting a hit.
	edgeSlack = 1.0
)

// Prism is an equilateral triangle of refracting material centered on its position.
type Prism struct {
	base
	crossing
	side     float64
	angle    float64
	index    float64
	outer    float64
	vertices [3]geometry.Point
}

func NewPrism(center geometry.Point) *Prism {
	p := &Prism{
		base:  newBase(center, colorCyan),
		side:  prismSide,
		angle: prismAngle,
		index: prismIndex,
		outer: 1,
	}
	p.placeVertices()
	return p
}

func (p *Prism) Kind() Kind {
	return KindPrism
}

// placeVertices puts the vertices on the circumscribed circle, the first one at angle.
func (p *Prism) placeVertices() {
	dis := p.side / math.Sqrt(3)
	p.vertices = [3]geometry.Point{
		geometry.PointOnCircle(p.position, dis, p.angle),
		geometry.PointOnCircle(p.position, dis, p.angle+240),
		geometry.PointOnCircle(p.position, dis, p.angle+120),
	}
	p.refresh()
}

func (p *Prism) refresh() {
	p.side = p.vertices[0].Distance(p.vertices[1])
	p.box = geometry.BoxOf(p.vertices[:]...).Clamp(1)
}

func (p *Prism) Vertices() [3]geometry.Point {
	return p.vertices
}

func (p *Prism) Side() float64 {
	return p.side
}

func (p *Prism) Angle() float64 {
	return p.angle
}

// SetGeometry replaces side length and rotation and rebuilds the triangle.
func (p *Prism) SetGeometry(side, angle float64) {
	p.side = math.Max(prismMinSide, math.Min(prismMaxSide, side))
	p.angle = geometry.NormalizeDegrees(angle)
	p.placeVertices()
}

// edges returns v1v2, v2v3 and v3v1.
func (p *Prism) edges() [3][2]geometry.Point {
	v := p.vertices
	return [3][2]geometry.Point{{v[0], v[1]}, {v[1], v[2]}, {v[2], v[0]}}
}

func (p *Prism) RefractionIndex() float64 {
	return p.index
}

func (p *Prism) SetRefractionIndex(index float64) {
	p.index = math.Max(1, index)
}

func (p *Prism) OuterIndex() float64 {
	return p.outer
}

func (p *Prism) SetOuterIndex(index float64) {
	p.outer = index
}

func (p *Prism) SetPosition(pos geometry.Point) {
	d := pos.Sub(p.position)
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Add(d)
	}
	p.position = pos
	p.refresh()
}

func (p *Prism) Rotate(deltaDegrees float64) {
	p.angle = geometry.NormalizeDegrees(p.angle + deltaDegrees)
	p.placeVertices()
}

// Resize pushes the vertices out by a quarter or pulls them in by a quarter.
func (p *Prism) Resize(delta float64) {
	var factor float64
	switch {
	case delta > 0 && p.side < prismMaxSide:
		factor = 1.25
	case delta < 0 && p.side > prismMinSide:
		factor = 0.75
	default:
		return
	}

	for i := range p.vertices {
		p.vertices[i] = p.position.Add(p.vertices[i].Sub(p.position).Scale(factor))
	}
	p.refresh()
}

func (p *Prism) Contains(pt geometry.Point) bool {
	return p.box.Contains(pt)
}

func (p *Prism) Intersect(p1, p2 geometry.Point, segment geometry.LineEq) (geometry.Point, bool) {
	var (
		best  geometry.Point
		found bool
	)

	for _, edge := range p.edges() {
		inter, ok := segment.Intersect(geometry.NewLine(edge[0], edge[1]))
		if !ok || inter.IsNaN() {
			continue
		}
		// A reflection within Tolerance of a vertex puts the next edge inside Tolerance of p1,
		// so that hit is dropped here and the ray leaves the prism.
		if !onEdge(inter, edge[0], edge[1]) || !geometry.SameQuadrant(p1, p2, inter) || geometry.Approx(p1, inter, geometry.Tolerance) {
			continue
		}
		if !found || p1.Distance(inter) < p1.Distance(best) {
			best, found = inter, true
		}
	}

	if !found {
		p.ResetCrossing()
		return geometry.Point{}, false
	}
	return best, true
}

func onEdge(p, a, b geometry.Point) bool {
	return p.X <= math.Max(a.X, b.X)+edgeSlack && p.X >= math.Min(a.X, b.X)-edgeSlack &&
		p.Y <= math.Max(a.Y, b.Y)+edgeSlack && p.Y >= math.Min(a.Y, b.Y)-edgeSlack
}

func (p *Prism) CheckOrientation(geometry.Point, geometry.Point, geometry.LineEq) bool {
	return true
}

// NormalLine is perpendicular to the edge whose two vertices are both closer to the
// intersection than the third one.
func (p *Prism) NormalLine(intersection, _ geometry.Point) geometry.LineEq {
	edge := p.closestEdge(intersection)
	return geometry.NewLine(edge[0], edge[1]).Perpendicular(intersection)
}

func (p *Prism) closestEdge(pt geometry.Point) [2]geometry.Point {
	edges := p.edges()
	d := [3]float64{
		pt.Distance(p.vertices[0]),
		pt.Distance(p.vertices[1]),
		pt.Distance(p.vertices[2]),
	}

	switch {
	case d[0] < d[2] && d[1] < d[2]:
		return edges[0]
	case d[1] < d[0] && d[2] < d[0]:
		return edges[1]
	case d[2] < d[1] && d[0] < d[1]:
		return edges[2]
	}

	closest := edges[0]
	for _, edge := range edges[1:] {
		if geometry.DistanceFromPointToSegment(pt, edge[0], edge[1]) < geometry.DistanceFromPointToSegment(pt, closest[0], closest[1]) {
			closest = edge
		}
	}
	return closest
}

func (p *Prism) Bend(source, intersection geometry.Point, incident geometry.LineEq) (geometry.Point, optics.Interaction) {
	far, interaction := refractiveBend(p, p.leaving, source, intersection, incident)
	p.after(interaction)
	return far, interaction
}

func (p *Prism) CheckSide(normal, incident, result geometry.LineEq, source, intersection geometry.Point) bool {
	return checkSide(normal, incident, result, source, intersection, false)
}
