package editor

import (
	"testing"

	"github.com/jay1247sjh/SmartMall-sub005/geometry"
)

func square() geometry.Polygon {
	return geometry.NewPolygon(
		geometry.Point{X: 0, Y: 0},
		geometry.Point{X: 10, Y: 0},
		geometry.Point{X: 10, Y: 10},
		geometry.Point{X: 0, Y: 10},
	)
}

func TestAddVertex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  int // resulting index of the new vertex
	}{
		{"insert in the middle", 2, 2},
		{"negative index clamps to front", -5, 0},
		{"oversized index clamps to back", 99, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := square()
			pt := geometry.Point{X: 5, Y: -1}
			AddVertex(&p, tt.index, pt)
			if len(p.Vertices) != 5 {
				t.Fatalf("got %d vertices, want 5", len(p.Vertices))
			}
			if p.Vertices[tt.want] != pt {
				t.Errorf("vertex at %d = %+v, want %+v", tt.want, p.Vertices[tt.want], pt)
			}
		})
	}
}

func TestRemoveVertex(t *testing.T) {
	t.Run("removes from a large polygon", func(t *testing.T) {
		p := square()
		AddVertex(&p, 2, geometry.Point{X: 5, Y: -1})
		if !RemoveVertex(&p, 2) {
			t.Fatal("RemoveVertex refused on a 5-vertex polygon")
		}
		if len(p.Vertices) != 4 {
			t.Errorf("got %d vertices, want 4", len(p.Vertices))
		}
	})

	t.Run("refuses at the 3-vertex minimum", func(t *testing.T) {
		p := geometry.NewPolygon(
			geometry.Point{X: 0, Y: 0},
			geometry.Point{X: 4, Y: 0},
			geometry.Point{X: 0, Y: 3},
		)
		before := p.Clone()
		if RemoveVertex(&p, 0) {
			t.Error("RemoveVertex succeeded on a triangle")
		}
		for i := range before.Vertices {
			if p.Vertices[i] != before.Vertices[i] {
				t.Errorf("polygon changed at %d: %+v", i, p.Vertices[i])
			}
		}
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		p := square()
		if !RemoveVertex(&p, 17) {
			t.Error("out-of-range removal must not report the minimum-vertex refusal")
		}
		if len(p.Vertices) != 4 {
			t.Errorf("got %d vertices, want 4", len(p.Vertices))
		}
	})
}

func TestMoveVertex(t *testing.T) {
	p := square()
	MoveVertex(&p, 1, geometry.Point{X: 20, Y: 0})
	if p.Vertices[1] != (geometry.Point{X: 20, Y: 0}) {
		t.Errorf("vertex 1 = %+v, want (20, 0)", p.Vertices[1])
	}

	before := p.Clone()
	MoveVertex(&p, -1, geometry.Point{X: 99, Y: 99})
	MoveVertex(&p, 42, geometry.Point{X: 99, Y: 99})
	for i := range before.Vertices {
		if p.Vertices[i] != before.Vertices[i] {
			t.Errorf("out-of-range move changed vertex %d", i)
		}
	}
}
