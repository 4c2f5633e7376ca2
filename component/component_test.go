package component

import (
	"image/color"
	"testing"

	"github.com/google/uuid"
	"github.com/meghashyamc/optics2d/geometry"
)

func TestParseKind(t *testing.T) {
	for kind, name := range kindNames {
		got, ok := ParseKind(" " + name + " ")
		if !ok || got != kind {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", name, got, ok, kind)
		}
	}

	if _, ok := ParseKind("laser"); ok {
		t.Error("ParseKind() accepted an unknown kind")
	}
}

func TestLockedObjectCannotBeSelected(t *testing.T) {
	m := NewPlaneMirror(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 0})
	m.Flags().Locked()
	m.SetSelected(true)
	if m.Flags().Selected {
		t.Error("a locked mirror was selected")
	}
}

func TestObstacleCollisions(t *testing.T) {
	o := NewObstacle(geometry.Point{X: 100, Y: 50})

	p1, p2 := geometry.Point{X: 0, Y: 100}, geometry.Point{X: geometry.Big, Y: 100}
	inter, ok := o.Intersect(p1, p2, geometry.NewLine(p1, p2))
	if !ok || inter != (geometry.Point{X: 100, Y: 100}) {
		t.Fatalf("Intersect() = %v, %v, want (100, 100)", inter, ok)
	}

	first, second := uuid.New(), uuid.New()
	o.RecordCollision(first, geometry.Point{X: 100, Y: 60})
	o.RecordCollision(second, geometry.Point{X: 100, Y: 70})
	o.RecordCollision(first, geometry.Point{X: 100, Y: 80})

	got := o.Collisions()
	want := []geometry.Point{{X: 100, Y: 80}, {X: 100, Y: 70}}
	if len(got) != len(want) {
		t.Fatalf("Collisions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Collisions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if consumed := o.ConsumeCollisions(); len(consumed) != 2 {
		t.Errorf("ConsumeCollisions() returned %d points, want 2", len(consumed))
	}
	if left := o.Collisions(); len(left) != 0 {
		t.Errorf("Collisions() after consume = %v, want none", left)
	}
}

func TestObstacleIntersectFromInsideAndVertical(t *testing.T) {
	o := NewObstacle(geometry.Point{X: 100, Y: 50})

	tests := []struct {
		name   string
		p1, p2 geometry.Point
		want   geometry.Point
		ok     bool
	}{
		{"down from above", geometry.Point{X: 110, Y: 0}, geometry.Point{X: 110, Y: geometry.Big}, geometry.Point{X: 110, Y: 50}, true},
		{"up from below", geometry.Point{X: 110, Y: 300}, geometry.Point{X: 110, Y: -geometry.Big}, geometry.Point{X: 110, Y: 150}, true},
		{"left from the right", geometry.Point{X: 300, Y: 100}, geometry.Point{X: -geometry.Big, Y: 100}, geometry.Point{X: 125, Y: 100}, true},
		{"passes beside", geometry.Point{X: 300, Y: 0}, geometry.Point{X: 300, Y: geometry.Big}, geometry.Point{}, false},
		{"moving away", geometry.Point{X: 300, Y: 100}, geometry.Point{X: geometry.Big, Y: 100}, geometry.Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := o.Intersect(tt.p1, tt.p2, geometry.NewLine(tt.p1, tt.p2))
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Intersect() = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTargetReactsToItsColor(t *testing.T) {
	target := NewTarget(geometry.Point{X: 100, Y: 100})

	if target.React(color.RGBA{255, 255, 255, 255}) || target.Hit() {
		t.Fatal("a white ray hit a red target")
	}

	if !target.React(color.RGBA{255, 0, 0, 255}) || !target.Hit() {
		t.Fatal("a red ray did not hit a red target")
	}

	if target.React(color.RGBA{255, 255, 255, 255}) || !target.Hit() {
		t.Error("hit was cleared by a later ray")
	}

	target.Reset()
	if target.Hit() {
		t.Error("Reset() did not clear the hit")
	}
}

func TestTargetIntersect(t *testing.T) {
	target := NewTarget(geometry.Point{X: 100, Y: 100})

	p1, p2 := geometry.Point{X: 0, Y: 100}, geometry.Point{X: geometry.Big, Y: 100}
	inter, ok := target.Intersect(p1, p2, geometry.NewLine(p1, p2))
	if !ok || !almostEqual(inter.X, 90) || !almostEqual(inter.Y, 100) {
		t.Errorf("Intersect() = %v, %v, want (90, 100)", inter, ok)
	}

	p1, p2 = geometry.Point{X: 0, Y: 100}, geometry.Point{X: -geometry.Big, Y: 100}
	if _, ok := target.Intersect(p1, p2, geometry.NewLine(p1, p2)); ok {
		t.Error("Intersect() hit a target behind the ray")
	}
}

func TestSourceRotation(t *testing.T) {
	s := NewSource(geometry.Point{X: 0, Y: 100})

	s.Rotate(30)
	if s.Angle() != sourceAngle {
		t.Fatalf("an unlit source rotated to %v", s.Angle())
	}

	s.SetSelected(true)
	if !s.On() {
		t.Fatal("selecting the source did not switch it on")
	}

	steps := []struct {
		delta float64
		want  float64
	}{
		{200, 20},
		{-30, 350},
		{10, 0},
		{90, 90},
	}
	for _, step := range steps {
		s.Rotate(step.delta)
		if s.Angle() != step.want {
			t.Errorf("Rotate(%v) = %v, want %v", step.delta, s.Angle(), step.want)
		}
	}

	if far := s.FarPoint(); far != (geometry.Point{X: geometry.Big, Y: 100}) {
		t.Errorf("FarPoint() at 90 = %v, want (Big, 100)", far)
	}
}

func TestSourcePath(t *testing.T) {
	s := NewSource(geometry.Point{X: 0, Y: 100})
	id := uuid.New()
	s.SetID(id)
	s.SetOn(true)

	s.StartPath()
	if path := s.Path(); len(path) != 2 || path[1] != (geometry.Point{X: 0, Y: 100 + geometry.Big}) {
		t.Fatalf("Path() = %v, want the source and a point straight down", path)
	}

	mirror := uuid.New()
	s.Stop(geometry.Point{X: 0, Y: 200}, mirror)
	s.Extend(geometry.Point{X: 0, Y: -geometry.Big})

	hits := s.Hits()
	if len(hits) != 3 || hits[0] != id || hits[1] != mirror || hits[2] != uuid.Nil {
		t.Errorf("Hits() = %v, want [source mirror nil]", hits)
	}
	if start, end := s.Segment(); start != (geometry.Point{X: 0, Y: 200}) || end.Y != -geometry.Big {
		t.Errorf("Segment() = %v, %v", start, end)
	}

	s.Truncate()
	if len(s.Path()) != 2 {
		t.Errorf("Path() after Truncate = %v", s.Path())
	}

	s.SetPosition(geometry.Point{X: 50, Y: 50})
	if path := s.Path(); path[0] != path[1] || path[0] != (geometry.Point{X: 50, Y: 50}) {
		t.Errorf("Path() after move = %v, want the new position twice", path)
	}
}

func TestSourceAbsorbsOtherRays(t *testing.T) {
	s := NewSource(geometry.Point{X: 100, Y: 100})

	p1, p2 := geometry.Point{X: 0, Y: 100}, geometry.Point{X: geometry.Big, Y: 100}
	inter, ok := s.Intersect(p1, p2, geometry.NewLine(p1, p2))
	if !ok || !almostEqual(inter.X, 95) {
		t.Errorf("Intersect() = %v, %v, want (95, 100)", inter, ok)
	}

	p1 = geometry.Point{X: 101, Y: 100}
	if _, ok := s.Intersect(p1, p2, geometry.NewLine(p1, p2)); ok {
		t.Error("a source absorbed its own ray")
	}
}
