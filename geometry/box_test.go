package geometry

import (
	"testing"
)

func TestBoxClamp(t *testing.T) {
	box := NewBox(Point{10, 10}, Point{10, 50}).Clamp(1)
	if box.Width() != 1 || box.Height() != 40 {
		t.Errorf("Clamp() = %v, want width 1 and height 40", box)
	}
}

func TestBoxContainsBox(t *testing.T) {
	outer := BoxAt(Point{0, 0}, 100, 100)
	if !outer.ContainsBox(BoxAt(Point{10, 10}, 20, 20)) {
		t.Error("outer box should contain the inner box")
	}
	if outer.ContainsBox(BoxAt(Point{90, 90}, 20, 20)) {
		t.Error("outer box should not contain an overlapping box")
	}
}

func TestArcBox(t *testing.T) {
	tests := []struct {
		name          string
		start, length float64
		want          Box
	}{
		{
			name:   "lower half",
			start:  180,
			length: 180,
			want:   Box{Min: Point{-10, 0}, Max: Point{10, 10}},
		},
		{
			name:   "quarter without extremes inside",
			start:  0,
			length: 90,
			want:   Box{Min: Point{0, -10}, Max: Point{10, 0}},
		},
		{
			name:   "wrapping arc",
			start:  270,
			length: 180,
			want:   Box{Min: Point{0, -10}, Max: Point{10, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArcBox(Point{0, 0}, 10, tt.start, tt.length)
			if !Approx(got.Min, tt.want.Min, testEpsilon) || !Approx(got.Max, tt.want.Max, testEpsilon) {
				t.Errorf("ArcBox() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArcContains(t *testing.T) {
	if !ArcContains(270, 180, 0, 0) {
		t.Error("arc 270..90 should contain 0")
	}
	if ArcContains(270, 180, 180, 0) {
		t.Error("arc 270..90 should not contain 180")
	}
	if !ArcContains(0, 90, 90.5, 1) {
		t.Error("tolerance should widen the arc end")
	}
}

func TestAngleDegrees(t *testing.T) {
	center := Point{0, 0}
	tests := []struct {
		p    Point
		want float64
	}{
		{Point{10, 0}, 0},
		{Point{0, -10}, 90},
		{Point{-10, 0}, 180},
		{Point{0, 10}, 270},
	}
	for _, tt := range tests {
		if got := AngleDegrees(center, tt.p); !almostEqual(got, tt.want) {
			t.Errorf("AngleDegrees(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestDistanceFromPointToSegment(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}
	if got := DistanceFromPointToSegment(Point{5, 3}, a, b); !almostEqual(got, 3) {
		t.Errorf("distance to middle = %v, want 3", got)
	}
	if got := DistanceFromPointToSegment(Point{13, 4}, a, b); !almostEqual(got, 5) {
		t.Errorf("distance past the end = %v, want 5", got)
	}
}

func TestBoxIntersects(t *testing.T) {
	box := BoxAt(Point{0, 0}, 100, 100)
	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{"overlapping", BoxAt(Point{90, 90}, 20, 20), true},
		{"inside", BoxAt(Point{10, 10}, 5, 5), true},
		{"touching edge", BoxAt(Point{100, 0}, 10, 10), true},
		{"apart", BoxAt(Point{101, 0}, 10, 10), false},
		{"below", BoxAt(Point{0, 150}, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestBoxTranslate(t *testing.T) {
	box := BoxAt(Point{10, 20}, 30, 40).Translate(Point{5, -20})
	want := Box{Min: Point{15, 0}, Max: Point{45, 40}}
	if box != want {
		t.Errorf("Translate() = %v, want %v", box, want)
	}
	if c := box.Center(); c != (Point{30, 20}) {
		t.Errorf("Center() = %v, want (30, 20)", c)
	}
}
