package search

import "github.com/lixenwraith/pathviz/grid"

// Snapshot is the observable state right after a node is closed and
// before its neighbors are expanded. Open may list a coordinate more
// than once; renderers only need the positions.
type Snapshot[C comparable] struct {
	Current  C
	Open     []C
	Closed   []C // finalization order
	Expanded int // == len(Closed)
}

// Result is the terminal outcome of a search session.
type Result[C comparable] struct {
	Path     []C
	Found    bool
	Expanded int
}

// Stepper advances a single-source A* search one node expansion per
// call. It is a plain resumable state machine: the caller owns the pace
// and abandons a session by simply not calling Step again. No engine
// state is shared between sessions.
type Stepper[C comparable] struct {
	world grid.Map[C]
	topo  grid.Topology[C]
	goal  C

	open   *openSet[C]
	closed map[C]bool
	order  []C // closed coordinates in finalization order

	// pending is the node closed by the previous Step, still owing its
	// goal check and neighbor expansion. The deferral is what makes the
	// snapshot observable between close and expansion.
	pending *Node[C]
	result  *Result[C]
}

// NewStepper seeds a session. No work happens until the first Step.
func NewStepper[C comparable](world grid.Map[C], topo grid.Topology[C], start, end C) *Stepper[C] {
	s := &Stepper[C]{
		world:  world,
		topo:   topo,
		goal:   end,
		open:   newOpenSet[C](),
		closed: make(map[C]bool),
	}
	h := topo.Distance(start, end)
	s.open.offer(&Node[C]{Pos: start, H: h, F: h})
	return s
}

// Step resumes the search through its next suspension point. While
// running it returns a snapshot and a nil result; once the goal is
// closed or the frontier empties it returns the terminal result instead,
// and every later call returns that same result.
func (s *Stepper[C]) Step() (Snapshot[C], *Result[C]) {
	if s.result != nil {
		return Snapshot[C]{}, s.result
	}

	// Finish the previously closed node: goal check, then expansion.
	if s.pending != nil {
		n := s.pending
		s.pending = nil
		if n.Pos == s.goal {
			s.result = &Result[C]{Path: n.path(), Found: true, Expanded: len(s.order)}
			return Snapshot[C]{}, s.result
		}
		expand(s.world, s.topo, s.open, s.closed, n, s.goal)
	}

	// Pop and close the next node, discarding stale duplicates.
	for {
		if s.open.empty() {
			s.result = &Result[C]{Expanded: len(s.order)}
			return Snapshot[C]{}, s.result
		}
		n := s.open.pop()
		if s.closed[n.Pos] {
			continue
		}
		s.closed[n.Pos] = true
		s.order = append(s.order, n.Pos)
		s.pending = n
		return Snapshot[C]{
			Current:  n.Pos,
			Open:     s.open.coords(),
			Closed:   append([]C(nil), s.order...),
			Expanded: len(s.order),
		}, nil
	}
}

// Result returns the terminal outcome, or nil while the session is
// still running.
func (s *Stepper[C]) Result() *Result[C] {
	return s.result
}
