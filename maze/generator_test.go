package maze

import (
	"testing"

	"github.com/lixenwraith/pathviz/grid"
)

func TestGenerateSolvable(t *testing.T) {
	res := Generate(Config{Width: 35, Height: 19, Braiding: 0.2, Seed: 7})

	if res.Solution == nil {
		t.Fatal("Expected a solvable maze")
	}
	if res.Solution[0] != res.Start {
		t.Errorf("Expected solution to begin at %v, got %v", res.Start, res.Solution[0])
	}
	if last := res.Solution[len(res.Solution)-1]; last != res.End {
		t.Errorf("Expected solution to finish at %v, got %v", res.End, last)
	}

	for i, p := range res.Solution {
		if !res.Map.Walkable(p) {
			t.Errorf("Solution crosses wall at %v", p)
		}
		if i > 0 {
			prev := res.Solution[i-1]
			if dx, dy := abs(p.X-prev.X), abs(p.Y-prev.Y); dx+dy != 1 {
				t.Errorf("Solution cells %v and %v are not adjacent", prev, p)
			}
		}
	}
}

func TestGenerateRoundsDimensionsDown(t *testing.T) {
	res := Generate(Config{Width: 36, Height: 20, Seed: 1})
	if res.Map.Width() != 35 || res.Map.Height() != 19 {
		t.Errorf("Expected 35x19, got %dx%d", res.Map.Width(), res.Map.Height())
	}

	tiny := Generate(Config{Width: 1, Height: 2, Seed: 1})
	if tiny.Map.Width() != 3 || tiny.Map.Height() != 3 {
		t.Errorf("Expected minimum 3x3, got %dx%d", tiny.Map.Width(), tiny.Map.Height())
	}
}

func TestGenerateDeterministicSeed(t *testing.T) {
	a := Generate(Config{Width: 25, Height: 17, Braiding: 0.3, Seed: 99})
	b := Generate(Config{Width: 25, Height: 17, Braiding: 0.3, Seed: 99})

	for y := 0; y < a.Map.Height(); y++ {
		for x := 0; x < a.Map.Width(); x++ {
			p := grid.Point{X: x, Y: y}
			if a.Map.IsWall(p) != b.Map.IsWall(p) {
				t.Fatalf("Mazes diverge at %v for the same seed", p)
			}
		}
	}
	if a.Start != b.Start || a.End != b.End {
		t.Errorf("Expected identical endpoints, got %v-%v and %v-%v", a.Start, a.End, b.Start, b.End)
	}
	if len(a.Solution) != len(b.Solution) {
		t.Errorf("Expected identical solutions, got %d and %d cells", len(a.Solution), len(b.Solution))
	}
}

func TestGenerateJailbreak(t *testing.T) {
	res := Generate(Config{Width: 21, Height: 15, RemoveBorders: true, Seed: 5})

	for x := 0; x < res.Map.Width(); x++ {
		if res.Map.IsWall(grid.Point{X: x, Y: 0}) {
			t.Errorf("Expected open top border at x=%d", x)
		}
		if res.Map.IsWall(grid.Point{X: x, Y: res.Map.Height() - 1}) {
			t.Errorf("Expected open bottom border at x=%d", x)
		}
	}
	if !res.Map.Walkable(res.Start) || !res.Map.Walkable(res.End) {
		t.Error("Expected open start and end")
	}
}

func TestGenerateExplicitEndpoints(t *testing.T) {
	start := grid.Point{X: 3, Y: 3}
	end := grid.Point{X: 17, Y: 11}
	res := Generate(Config{Width: 21, Height: 15, StartPos: &start, EndPos: &end, Seed: 11})

	if res.Start != start || res.End != end {
		t.Errorf("Expected endpoints %v-%v, got %v-%v", start, end, res.Start, res.End)
	}
	if !res.Map.Walkable(res.Start) || !res.Map.Walkable(res.End) {
		t.Error("Expected requested endpoints to be forced open")
	}
}

func TestShortestPath(t *testing.T) {
	m := grid.NewSquareMap(5, 5)
	for x := 0; x < 4; x++ {
		m.SetWall(grid.Point{X: x, Y: 2}, grid.Wall)
	}

	path := ShortestPath(m, grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 4})
	if len(path) != 9 {
		t.Errorf("Expected 9 cells, got %d", len(path))
	}

	blocked := grid.NewSquareMap(3, 3)
	blocked.SetWall(grid.Point{X: 1, Y: 0}, grid.Wall)
	blocked.SetWall(grid.Point{X: 1, Y: 1}, grid.Wall)
	blocked.SetWall(grid.Point{X: 1, Y: 2}, grid.Wall)
	if p := ShortestPath(blocked, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 0}); p != nil {
		t.Errorf("Expected nil for a split grid, got %v", p)
	}

	wallStart := grid.NewSquareMap(3, 3)
	wallStart.SetWall(grid.Point{X: 0, Y: 0}, grid.Wall)
	if p := ShortestPath(wallStart, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2}); p != nil {
		t.Errorf("Expected nil for a walled start, got %v", p)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
