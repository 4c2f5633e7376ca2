package scene

import (
	"github.com/google/uuid"
	"github.com/meghashyamc/optics2d/component"
	"github.com/meghashyamc/optics2d/geometry"
)

// Outcome describes how a single ray ended.
type Outcome struct {
	Source uuid.UUID
	// Stopped is the object that absorbed the ray, uuid.Nil when the ray left the scene
	// or ran away.
	Stopped uuid.UUID
	Kind    component.Kind
	Point   geometry.Point
	// Segments is the number of path segments after the trace.
	Segments int
	Runaway  bool
}

type TargetHit struct {
	Source uuid.UUID
	Target uuid.UUID
	Point  geometry.Point
}

type Collision struct {
	Source   uuid.UUID
	Obstacle uuid.UUID
	Point    geometry.Point
}

// Report summarises one TraceAll pass.
type Report struct {
	TargetHits []TargetHit
	Collisions []Collision
	Runaway    []uuid.UUID
}

type crossingResetter interface {
	ResetCrossing()
}

// TraceAll refreshes zone nesting and traces every source in the scene.
func (s *Scene) TraceAll() Report {
	s.UpdateOuterIndices()

	var report Report
	for _, src := range s.Sources() {
		outcome := s.Trace(src)
		if outcome.Runaway {
			report.Runaway = append(report.Runaway, src.ID())
			continue
		}

		obj, ok := s.Get(outcome.Stopped)
		if !ok {
			continue
		}

		switch o := obj.(type) {
		case *component.Target:
			if o.React(src.Color()) {
				report.TargetHits = append(report.TargetHits, TargetHit{Source: src.ID(), Target: o.ID(), Point: outcome.Point})
			}
		case *component.Obstacle:
			o.RecordCollision(src.ID(), outcome.Point)
			report.Collisions = append(report.Collisions, Collision{Source: src.ID(), Obstacle: o.ID(), Point: outcome.Point})
		}
	}

	return report
}

// Trace rebuilds the path of src from scratch. An unlit source gets its collapsed path back.
func (s *Scene) Trace(src *component.Source) Outcome {
	outcome := Outcome{Source: src.ID()}

	if !src.On() {
		src.SetOn(false)
		outcome.Segments = 1
		return outcome
	}

	s.resetCrossings()
	src.StartPath()

	for extensions := 0; ; extensions++ {
		if extensions == s.maxExtensions {
			src.Truncate()
			s.stats.add(Runaway)
			outcome.Runaway = true
			outcome.Segments = len(src.Path()) - 1
			s.logger.Warn("ray reached the extension bound", "source", src.ID().String(), "extensions", extensions)
			return outcome
		}

		start, end := src.Segment()
		segment := geometry.NewLine(start, end)

		obj, hit, ok := s.nearest(start, end, segment)
		if !ok {
			s.stats.add(Open)
			outcome.Point = end
			outcome.Segments = len(src.Path()) - 1
			return outcome
		}

		src.Stop(hit, obj.ID())

		if surface, ok := obj.(component.Surface); ok {
			far, interaction := surface.Bend(start, hit, segment)
			src.Extend(far)
			s.stats.add(categoryOf(interaction))
			continue
		}

		s.stats.add(Absorb)
		outcome.Stopped = obj.ID()
		outcome.Kind = obj.Kind()
		outcome.Point = hit
		outcome.Segments = len(src.Path()) - 1
		return outcome
	}
}

// nearest asks every object for its hit on start->end and keeps the closest admissible one.
// A hit on an inactive face of an optical surface is ignored, so the ray passes through it.
func (s *Scene) nearest(start, end geometry.Point, segment geometry.LineEq) (component.Object, geometry.Point, bool) {
	var (
		best  component.Object
		limit = end
	)

	for _, obj := range s.objects {
		hit, ok := obj.Intersect(start, end, segment)
		if !ok || hit.IsNaN() {
			continue
		}
		if geometry.Approx(hit, start, geometry.Tolerance) || !geometry.SameQuadrant(start, limit, hit) {
			continue
		}
		if surface, ok := obj.(component.Surface); ok && !surface.CheckOrientation(start, hit, segment) {
			continue
		}
		best, limit = obj, hit
	}

	return best, limit, best != nil
}

func (s *Scene) resetCrossings() {
	for _, obj := range s.objects {
		if r, ok := obj.(crossingResetter); ok {
			r.ResetCrossing()
		}
	}
}
