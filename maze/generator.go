// Package maze builds the obstacle layouts the search engines run on:
// stochastic square mazes and hexagonal obstacle fields. The engines
// never depend on this package; it is a grid-construction collaborator.
package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/pathviz/grid"
)

type Config struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze, unique paths) to 1.0 (no dead ends).
	// Higher values add cycles. The no-plaza/no-pillar constraints take
	// precedence over the requested probability.
	Braiding float64

	// If true, the outer boundary is opened up.
	RemoveBorders bool

	StartPos *grid.Point // nil = automatic
	EndPos   *grid.Point // nil = automatic
	Seed     int64       // 0 = random
}

type Result struct {
	Map        *grid.SquareMap
	Start, End grid.Point

	// Solution is the BFS shortest path, nil when start and end are
	// disconnected. Kept alongside the maze so callers (and the engine
	// tests) have an optimality oracle for free.
	Solution []grid.Point
}

// Generate creates a stochastic topological maze. Dimensions round down
// to odd numbers so the wall lattice lines up.
func Generate(cfg Config) Result {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	m := grid.NewSquareMap(cols, rows)
	fill(m, grid.Wall)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Default endpoints sit in opposite corners; jailbreak mode starts
	// from the center and exits through the right edge.
	startDef := grid.Point{X: 1, Y: 1}
	endDef := grid.Point{X: cols - 2, Y: rows - 2}
	if cfg.RemoveBorders {
		startDef = grid.Point{X: (cols / 2) | 1, Y: (rows / 2) | 1}
		endDef = grid.Point{X: cols - 1, Y: (rows / 2) | 1}
	}

	start := resolvePoint(m, cfg.StartPos, startDef)
	end := resolvePoint(m, cfg.EndPos, endDef)

	// Recursive backtracker carves a uniform spanning tree.
	carve(m, start, rng)

	// Border strip must happen before braiding so the braiding pass sees
	// the external connections and doesn't force loops for edge nodes.
	if cfg.RemoveBorders {
		stripBorders(m)
	}

	if cfg.Braiding > 0 {
		braid(m, cfg.Braiding, rng)
	}

	if cfg.RemoveBorders {
		m.SetWall(start, grid.Passage)
		m.SetWall(end, grid.Passage)
	} else {
		forceOpen(m, start)
		forceOpen(m, end)
	}

	return Result{
		Map:      m,
		Start:    start,
		End:      end,
		Solution: ShortestPath(m, start, end),
	}
}

func fill(m *grid.SquareMap, wall bool) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			m.SetWall(grid.Point{X: x, Y: y}, wall)
		}
	}
}

var carveDirs = [4]grid.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}

func carve(m *grid.SquareMap, start grid.Point, rng *rand.Rand) {
	cols, rows := m.Width(), m.Height()
	if !m.InBounds(start) {
		start = grid.Point{X: 1, Y: 1}
	}

	stack := []grid.Point{start}
	m.SetWall(start, grid.Passage)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates := make([]grid.Point, 0, 4)
		for _, d := range carveDirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// One-cell border stays walled.
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 &&
				m.IsWall(grid.Point{X: nx, Y: ny}) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		wall := grid.Point{X: curr.X + d.X/2, Y: curr.Y + d.Y/2}
		next := grid.Point{X: curr.X + d.X, Y: curr.Y + d.Y}
		m.SetWall(wall, grid.Passage)
		m.SetWall(next, grid.Passage)
		stack = append(stack, next)
	}
}

var orthoDirs = [4]grid.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// braid opens selected dead ends into loops. A dead end is an odd-lattice
// room with exactly one passage neighbor.
func braid(m *grid.SquareMap, probability float64, rng *rand.Rand) {
	cols, rows := m.Width(), m.Height()

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			room := grid.Point{X: x, Y: y}
			if m.IsWall(room) {
				continue
			}

			exits := 0
			for _, d := range orthoDirs {
				n := grid.Point{X: x + d.X, Y: y + d.Y}
				if m.InBounds(n) && !m.IsWall(n) {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]grid.Point, 0, 4)
			for _, d := range carveDirs {
				neighbor := grid.Point{X: x + d.X, Y: y + d.Y}
				wall := grid.Point{X: x + d.X/2, Y: y + d.Y/2}
				if !m.InBounds(neighbor) {
					continue
				}
				if !m.IsWall(neighbor) && m.IsWall(wall) && safeToRemove(m, wall) {
					candidates = append(candidates, wall)
				}
			}
			if len(candidates) > 0 {
				m.SetWall(candidates[rng.Intn(len(candidates))], grid.Passage)
			}
		}
	}
}

// safeToRemove rejects wall removals that create prohibited topology:
// plazas (2x2 open areas) or pillars (isolated single walls).
func safeToRemove(m *grid.SquareMap, w grid.Point) bool {
	isOpen := func(x, y int) bool {
		p := grid.Point{X: x, Y: y}
		// Out of bounds counts as wall for the plaza check.
		return m.InBounds(p) && !m.IsWall(p)
	}
	x, y := w.X, w.Y

	// Plaza check: opening (x,y) must not complete any 2x2 quadrant.
	if isOpen(x-1, y-1) && isOpen(x, y-1) && isOpen(x-1, y) {
		return false
	}
	if isOpen(x, y-1) && isOpen(x+1, y-1) && isOpen(x+1, y) {
		return false
	}
	if isOpen(x-1, y) && isOpen(x-1, y+1) && isOpen(x, y+1) {
		return false
	}
	if isOpen(x+1, y) && isOpen(x, y+1) && isOpen(x+1, y+1) {
		return false
	}

	// Pillar check: no adjacent wall may end up with zero wall neighbors
	// once (x,y) opens.
	for _, d := range orthoDirs {
		n := grid.Point{X: x + d.X, Y: y + d.Y}
		if !m.InBounds(n) || !m.IsWall(n) {
			continue
		}
		connections := 0
		for _, d2 := range orthoDirs {
			nn := grid.Point{X: n.X + d2.X, Y: n.Y + d2.Y}
			if nn == w {
				continue // about to become a passage
			}
			if m.InBounds(nn) && m.IsWall(nn) {
				connections++
			}
		}
		if connections == 0 {
			return false
		}
	}
	return true
}

func stripBorders(m *grid.SquareMap) {
	cols, rows := m.Width(), m.Height()
	for x := 0; x < cols; x++ {
		m.SetWall(grid.Point{X: x, Y: 0}, grid.Passage)
		m.SetWall(grid.Point{X: x, Y: rows - 1}, grid.Passage)
	}
	for y := 0; y < rows; y++ {
		m.SetWall(grid.Point{X: 0, Y: y}, grid.Passage)
		m.SetWall(grid.Point{X: cols - 1, Y: y}, grid.Passage)
	}
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

func resolvePoint(m *grid.SquareMap, p *grid.Point, def grid.Point) grid.Point {
	if p == nil {
		return def
	}
	x, y := p.X, p.Y
	if x < 0 {
		x = 0
	}
	if x >= m.Width() {
		x = m.Width() - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= m.Height() {
		y = m.Height() - 1
	}
	return grid.Point{X: x, Y: y}
}

// forceOpen makes p a passage and, if it ended up sealed in, knocks a
// hole through to an interior neighbor.
func forceOpen(m *grid.SquareMap, p grid.Point) {
	if !m.InBounds(p) {
		return
	}
	m.SetWall(p, grid.Passage)

	for _, d := range orthoDirs {
		n := grid.Point{X: p.X + d.X, Y: p.Y + d.Y}
		if m.InBounds(n) && !m.IsWall(n) {
			return
		}
	}
	for _, d := range orthoDirs {
		n := grid.Point{X: p.X + d.X, Y: p.Y + d.Y}
		if n.X > 0 && n.X < m.Width()-1 && n.Y > 0 && n.Y < m.Height()-1 {
			m.SetWall(n, grid.Passage)
			return
		}
	}
}

// ShortestPath is a plain BFS solver, exact for unit-cost 4-connected
// movement. It doubles as the optimality oracle in the engine tests.
// Returns nil when no path exists or either endpoint is a wall.
func ShortestPath(m *grid.SquareMap, start, end grid.Point) []grid.Point {
	if !m.Walkable(start) || !m.Walkable(end) {
		return nil
	}

	queue := []grid.Point{start}
	cameFrom := make(map[grid.Point]grid.Point)
	visited := map[grid.Point]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			var path []grid.Point
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range orthoDirs {
			next := grid.Point{X: curr.X + d.X, Y: curr.Y + d.Y}
			if m.Walkable(next) && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}
