package grid

// Point is a cell on a bounded square grid.
type Point struct {
	X, Y int
}

// Axial is a cell on a hexagonal grid in axial coordinates.
// The implicit third cube coordinate is s = -q - r.
type Axial struct {
	Q, R int
}

// Topology defines cell adjacency and an admissible, consistent distance
// estimate for one grid family. Implementations are stateless values.
type Topology[C comparable] interface {
	// Neighbors returns the adjacent cells in a fixed enumeration order.
	// Bounds and obstacle filtering are the caller's job.
	Neighbors(c C) []C

	// Distance estimates the minimum hop count between two cells.
	Distance(a, b C) float64
}

// Square is the 4-connected square topology.
type Square struct{}

func (Square) Neighbors(c Point) []Point {
	return []Point{
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
	}
}

// Distance is the Manhattan distance, exact for 4-connected movement.
func (Square) Distance(a, b Point) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Hex is the 6-connected hexagonal topology over axial coordinates.
type Hex struct{}

var hexOffsets = [6]Axial{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

func (Hex) Neighbors(c Axial) []Axial {
	out := make([]Axial, len(hexOffsets))
	for i, d := range hexOffsets {
		out[i] = Axial{Q: c.Q + d.Q, R: c.R + d.R}
	}
	return out
}

// Distance is the exact minimum hop count between two hexes, derived from
// cube coordinate distance: (|dq| + |dr| + |dq+dr|) / 2.
func (Hex) Distance(a, b Axial) float64 {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.Q + a.R - (b.Q + b.R))
	return float64(dq+dr+ds) / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
