package search

import "github.com/lixenwraith/pathviz/grid"

// half is one direction of a bidirectional search. Unlike the
// single-source engine its closed set maps coordinate to the finalizing
// node, because the joining path at the meeting point is reconstructed
// from both sides' Parent chains.
type half[C comparable] struct {
	goal   C // heuristic target: the other side's origin
	open   *openSet[C]
	closed map[C]*Node[C]
	order  []C

	// pending is this side's last closed node, its expansion deferred
	// until this side's next round so the frontier snapshot is observable
	// before it grows.
	pending *Node[C]
}

func newHalf[C comparable](topo grid.Topology[C], origin, goal C) *half[C] {
	h := &half[C]{
		goal:   goal,
		open:   newOpenSet[C](),
		closed: make(map[C]*Node[C]),
	}
	d := topo.Distance(origin, goal)
	h.open.offer(&Node[C]{Pos: origin, H: d, F: d})
	return h
}

func (h *half[C]) expand(world grid.Map[C], topo grid.Topology[C], n *Node[C]) {
	for _, next := range topo.Neighbors(n.Pos) {
		if !world.Walkable(next) {
			continue
		}
		if _, done := h.closed[next]; done {
			continue
		}
		g := n.G + 1
		est := topo.Distance(next, h.goal)
		h.open.offer(&Node[C]{Parent: n, Pos: next, G: g, H: est, F: g + est})
	}
}

// BiSnapshot is the four-part observable state of a bidirectional
// session: one open/closed pair per direction.
type BiSnapshot[C comparable] struct {
	OpenFwd   []C
	ClosedFwd []C
	OpenBwd   []C
	ClosedBwd []C
	Expanded  int // len(ClosedFwd) + len(ClosedBwd)
}

// BiStepper drives two independent A* searches toward each other in
// strict alternation, one expansion per Step, starting with the forward
// side. Alternation keeps both frontiers at comparable depth, which is
// what lets the meeting point prune maze-like maps where a single
// heuristic is misleading, and it bounds the work behind each rendered
// frame.
type BiStepper[C comparable] struct {
	world grid.Map[C]
	topo  grid.Topology[C]

	fwd, bwd *half[C]
	backTurn bool
	result   *Result[C]
}

// NewBiStepper seeds both directions: forward from start aiming at end,
// backward from end aiming at start.
func NewBiStepper[C comparable](world grid.Map[C], topo grid.Topology[C], start, end C) *BiStepper[C] {
	return &BiStepper[C]{
		world: world,
		topo:  topo,
		fwd:   newHalf(topo, start, end),
		bwd:   newHalf(topo, end, start),
	}
}

// Step runs one round on the side whose turn it is: finish its deferred
// expansion, then pop and close its next node. The meeting check runs
// immediately on close, before the other side gets another round; the
// first side to close a coordinate the other side has already finalized
// ends the session with the joined path.
func (s *BiStepper[C]) Step() (BiSnapshot[C], *Result[C]) {
	if s.result != nil {
		return BiSnapshot[C]{}, s.result
	}

	side, other := s.fwd, s.bwd
	if s.backTurn {
		side, other = s.bwd, s.fwd
	}
	s.backTurn = !s.backTurn

	if side.pending != nil {
		side.expand(s.world, s.topo, side.pending)
		side.pending = nil
	}

	// Pop and close this side's next node, discarding stale duplicates.
	var n *Node[C]
	for {
		if side.open.empty() {
			s.result = &Result[C]{Expanded: s.expanded()}
			return BiSnapshot[C]{}, s.result
		}
		n = side.open.pop()
		if _, done := side.closed[n.Pos]; !done {
			break
		}
	}
	side.closed[n.Pos] = n
	side.order = append(side.order, n.Pos)

	if m, met := other.closed[n.Pos]; met {
		forward, backward := n, m
		if side == s.bwd {
			forward, backward = m, n
		}
		s.result = &Result[C]{
			Path:     joinPaths(forward, backward),
			Found:    true,
			Expanded: s.expanded(),
		}
		return BiSnapshot[C]{}, s.result
	}
	side.pending = n

	return BiSnapshot[C]{
		OpenFwd:   s.fwd.open.coords(),
		ClosedFwd: append([]C(nil), s.fwd.order...),
		OpenBwd:   s.bwd.open.coords(),
		ClosedBwd: append([]C(nil), s.bwd.order...),
		Expanded:  s.expanded(),
	}, nil
}

// Result returns the terminal outcome, or nil while the session is
// still running.
func (s *BiStepper[C]) Result() *Result[C] {
	return s.result
}

func (s *BiStepper[C]) expanded() int {
	return len(s.fwd.closed) + len(s.bwd.closed)
}

// joinPaths splices the two chains that met on one coordinate: the
// forward chain gives start through meeting point in order, then the
// backward chain is walked from its Parent outward, skipping the
// meeting point itself, out to the end cell.
func joinPaths[C comparable](forward, backward *Node[C]) []C {
	path := forward.path()
	for cur := backward.Parent; cur != nil; cur = cur.Parent {
		path = append(path, cur.Pos)
	}
	return path
}

// FindBidirectional drives a bidirectional session to completion.
func FindBidirectional[C comparable](world grid.Map[C], topo grid.Topology[C], start, end C) ([]C, bool) {
	s := NewBiStepper(world, topo, start, end)
	for {
		if _, res := s.Step(); res != nil {
			return res.Path, res.Found
		}
	}
}
