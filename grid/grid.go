package grid

// Map is the read-only traversability surface consulted by the search
// engines. Implementations decide what "outside the world" means: the
// bounded square map rejects out-of-range cells, the sparse hex map
// treats absent cells as obstacles.
type Map[C comparable] interface {
	Walkable(c C) bool
}

// Wall marker convention shared with the maze generator.
const (
	Wall    = true
	Passage = false
)

// SquareMap is a bounded rectangular grid backed by a wall matrix,
// indexed [y][x]. Cells outside the rectangle are not walkable.
type SquareMap struct {
	walls [][]bool
}

// NewSquareMap returns an all-passage map of the given dimensions.
func NewSquareMap(width, height int) *SquareMap {
	walls := make([][]bool, height)
	for y := range walls {
		walls[y] = make([]bool, width)
	}
	return &SquareMap{walls: walls}
}

// WrapSquareMap adopts an existing wall matrix without copying.
// Rows must be of equal length.
func WrapSquareMap(walls [][]bool) *SquareMap {
	return &SquareMap{walls: walls}
}

func (m *SquareMap) Width() int {
	if len(m.walls) == 0 {
		return 0
	}
	return len(m.walls[0])
}

func (m *SquareMap) Height() int {
	return len(m.walls)
}

// InBounds reports whether p lies inside the rectangle.
func (m *SquareMap) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.Y < len(m.walls) && p.X < len(m.walls[p.Y])
}

func (m *SquareMap) SetWall(p Point, wall bool) {
	if m.InBounds(p) {
		m.walls[p.Y][p.X] = wall
	}
}

func (m *SquareMap) IsWall(p Point) bool {
	return m.InBounds(p) && m.walls[p.Y][p.X]
}

func (m *SquareMap) Walkable(p Point) bool {
	return m.InBounds(p) && !m.walls[p.Y][p.X]
}

// HexMap is a sparse hexagonal field: coordinate to cell state, where 0
// is walkable and anything else is an obstacle. Absent coordinates are
// obstacles too, so the field needs no explicit boundary.
type HexMap map[Axial]int

func (m HexMap) Set(c Axial, state int) {
	m[c] = state
}

func (m HexMap) Walkable(c Axial) bool {
	state, ok := m[c]
	return ok && state == 0
}

// NewHexagon returns an all-walkable hexagonal field of the given radius
// centered on the origin: every cell with |q|, |r| and |q+r| <= radius.
func NewHexagon(radius int) HexMap {
	m := make(HexMap)
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			if abs(q+r) > radius {
				continue
			}
			m[Axial{Q: q, R: r}] = 0
		}
	}
	return m
}
