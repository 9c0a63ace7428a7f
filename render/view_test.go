package render

import (
	"testing"

	"github.com/lixenwraith/pathviz/grid"
)

func TestSquareToScreen(t *testing.T) {
	x, y := SquareToScreen(grid.Point{X: 3, Y: 5}, 2, 1)
	if x != 8 || y != 6 {
		t.Errorf("Expected (8,6), got (%d,%d)", x, y)
	}
}

func TestHexToScreenKeepsNeighborsAdjacent(t *testing.T) {
	center := grid.Axial{Q: 0, R: 0}
	cx, cy := HexToScreen(center, 20, 10)

	seen := make(map[[2]int]bool)
	seen[[2]int{cx, cy}] = true

	for _, n := range (grid.Hex{}).Neighbors(center) {
		x, y := HexToScreen(n, 20, 10)
		if seen[[2]int{x, y}] {
			t.Errorf("Neighbor %v collides with an earlier cell at (%d,%d)", n, x, y)
		}
		seen[[2]int{x, y}] = true

		dx, dy := x-cx, y-cy
		if dx < -2 || dx > 2 || dy < -1 || dy > 1 {
			t.Errorf("Neighbor %v drifts to offset (%d,%d)", n, dx, dy)
		}
	}
}

func TestClassifyPrecedence(t *testing.T) {
	start := grid.Point{X: 0, Y: 0}
	end := grid.Point{X: 4, Y: 4}
	c := grid.Point{X: 2, Y: 2}

	sets := CellSets[grid.Point]{
		Start:  start,
		End:    end,
		Path:   map[grid.Point]bool{c: true},
		Open:   map[grid.Point]bool{c: true},
		Closed: map[grid.Point]bool{c: true},
	}

	if got := Classify(sets, start, false); got != StateStart {
		t.Errorf("Expected StateStart, got %v", got)
	}
	if got := Classify(sets, c, true); got != StatePath {
		t.Errorf("Expected StatePath to win, got %v", got)
	}

	sets.Path = nil
	if got := Classify(sets, c, true); got != StateOpen {
		t.Errorf("Expected StateOpen to win, got %v", got)
	}

	sets.Open = nil
	if got := Classify(sets, c, true); got != StateClosed {
		t.Errorf("Expected StateClosed to win, got %v", got)
	}

	sets.Closed = nil
	if got := Classify(sets, c, true); got != StateObstacle {
		t.Errorf("Expected StateObstacle, got %v", got)
	}
	if got := Classify(sets, c, false); got != StateFloor {
		t.Errorf("Expected StateFloor, got %v", got)
	}
}

func TestCoordSet(t *testing.T) {
	set := CoordSet([]grid.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}})
	if len(set) != 2 {
		t.Errorf("Expected 2 distinct coordinates, got %d", len(set))
	}
	if !set[grid.Point{X: 1, Y: 1}] || !set[grid.Point{X: 2, Y: 2}] {
		t.Error("Expected listed coordinates in the set")
	}
	if CoordSet[grid.Point](nil) != nil {
		t.Error("Expected nil set for empty input")
	}
}
