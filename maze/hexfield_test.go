package maze

import (
	"testing"

	"github.com/lixenwraith/pathviz/grid"
)

func TestHexFieldWall(t *testing.T) {
	field := HexField(10)

	for r := -5; r <= 5; r++ {
		if field.Walkable(grid.Axial{Q: 3, R: r}) {
			t.Errorf("Expected wall cell (3,%d) to be blocked", r)
		}
	}
	if field.Walkable(grid.Axial{Q: 4, R: -5}) || field.Walkable(grid.Axial{Q: 2, R: 5}) {
		t.Error("Expected stray obstacles to be blocked")
	}
	if !field.Walkable(grid.Axial{Q: 3, R: -6}) {
		t.Error("Expected cell above the wall to be walkable")
	}
	if !field.Walkable(grid.Axial{Q: 0, R: 0}) {
		t.Error("Expected origin to be walkable")
	}
}

func TestRandomHexFieldKeepsCells(t *testing.T) {
	start := grid.Axial{Q: -5, R: 0}
	end := grid.Axial{Q: 5, R: -2}

	field := RandomHexField(8, 0.9, 123, start, end)
	if !field.Walkable(start) || !field.Walkable(end) {
		t.Error("Expected keep cells to stay walkable")
	}
}

func TestRandomHexFieldDeterministic(t *testing.T) {
	a := RandomHexField(6, 0.3, 77)
	b := RandomHexField(6, 0.3, 77)

	if len(a) != len(b) {
		t.Fatalf("Expected identical fields, got %d and %d cells", len(a), len(b))
	}
	for c, state := range a {
		if b[c] != state {
			t.Fatalf("Fields diverge at %v for the same seed", c)
		}
	}
}

func TestRandomHexFieldDensityClamp(t *testing.T) {
	clear := RandomHexField(4, -1, 5)
	for c, state := range clear {
		if state != 0 {
			t.Errorf("Expected all-walkable field at density 0, got obstacle at %v", c)
		}
	}

	full := RandomHexField(4, 2, 5, grid.Axial{Q: 0, R: 0})
	blockedAll := true
	for c, state := range full {
		if state == 0 && (c != grid.Axial{Q: 0, R: 0}) {
			blockedAll = false
		}
	}
	if !blockedAll {
		t.Error("Expected every cell except the kept one to be blocked at density 1")
	}
}
