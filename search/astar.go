// Package search implements A* pathfinding over the grid topologies,
// both run-to-completion and steppable one expansion at a time so a
// front end can animate the open and closed sets frame by frame.
//
// Everything is single-threaded and cooperative: a Stepper suspends
// between expansions, it does not run in the background. Not finding a
// path is a normal outcome, reported as a value rather than an error.
package search

import "github.com/lixenwraith/pathviz/grid"

// Find runs A* from start to end and returns the cell sequence, both
// endpoints included, with true. When no path exists it returns nil and
// false. start == end yields a single-cell path.
//
// Start and end cells that are themselves obstacles are not rejected:
// the search runs mechanically and reports not-found when the frontier
// exhausts. Callers wanting strict validation check Walkable up front.
func Find[C comparable](world grid.Map[C], topo grid.Topology[C], start, end C) ([]C, bool) {
	open := newOpenSet[C]()
	h := topo.Distance(start, end)
	open.offer(&Node[C]{Pos: start, H: h, F: h})
	closed := make(map[C]bool)

	for !open.empty() {
		current := open.pop()
		if closed[current.Pos] {
			// Stale duplicate left behind by a better route.
			continue
		}
		closed[current.Pos] = true

		if current.Pos == end {
			return current.path(), true
		}
		expand(world, topo, open, closed, current, end)
	}
	return nil, false
}

// expand evaluates every neighbor of current, offering the walkable,
// not-yet-closed ones to the frontier at unit step cost.
func expand[C comparable](world grid.Map[C], topo grid.Topology[C],
	open *openSet[C], closed map[C]bool, current *Node[C], goal C) {
	for _, next := range topo.Neighbors(current.Pos) {
		if !world.Walkable(next) || closed[next] {
			continue
		}
		g := current.G + 1
		h := topo.Distance(next, goal)
		open.offer(&Node[C]{Parent: current, Pos: next, G: g, H: h, F: g + h})
	}
}
