package grid

import "testing"

func TestHexDistance(t *testing.T) {
	tests := []struct {
		a, b Axial
		want float64
	}{
		{Axial{0, 0}, Axial{0, 0}, 0},
		{Axial{0, 0}, Axial{1, 0}, 1},
		{Axial{0, 0}, Axial{3, -3}, 3}, // edge-aligned
		{Axial{0, 0}, Axial{2, 1}, 3},  // cube-diagonal
		{Axial{0, 0}, Axial{-2, -1}, 3},
		{Axial{-5, 0}, Axial{8, -2}, 13},
		{Axial{2, -1}, Axial{2, -1}, 0},
	}

	for _, tt := range tests {
		got := Hex{}.Distance(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Distance(%v, %v): expected %v, got %v", tt.a, tt.b, tt.want, got)
		}
		// Distance is symmetric
		if back := (Hex{}).Distance(tt.b, tt.a); back != got {
			t.Errorf("Distance(%v, %v): expected symmetric %v, got %v", tt.b, tt.a, got, back)
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		a, b Point
		want float64
	}{
		{Point{X: 0, Y: 0}, Point{X: 0, Y: 0}, 0},
		{Point{X: 0, Y: 0}, Point{X: 4, Y: 4}, 8},
		{Point{X: 2, Y: 3}, Point{X: -1, Y: 5}, 5},
	}

	for _, tt := range tests {
		if got := (Square{}).Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v): expected %v, got %v", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestSquareNeighborOrder(t *testing.T) {
	got := Square{}.Neighbors(Point{X: 2, Y: 3})
	want := []Point{{2, 4}, {2, 2}, {3, 3}, {1, 3}}

	if len(got) != len(want) {
		t.Fatalf("Expected %d neighbors, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbor %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestHexNeighborOrder(t *testing.T) {
	got := Hex{}.Neighbors(Axial{Q: 1, R: -2})
	want := []Axial{{2, -2}, {2, -3}, {1, -3}, {0, -2}, {0, -1}, {1, -1}}

	if len(got) != len(want) {
		t.Fatalf("Expected %d neighbors, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbor %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestHexNeighborsAtUnitDistance(t *testing.T) {
	center := Axial{Q: -3, R: 5}
	for _, n := range (Hex{}).Neighbors(center) {
		if d := (Hex{}).Distance(center, n); d != 1 {
			t.Errorf("Expected neighbor %v at distance 1, got %v", n, d)
		}
	}
}
