package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathviz/grid"
	"github.com/lixenwraith/pathviz/render"
	"github.com/lixenwraith/pathviz/search"
)

// session is what the event loop needs from a running search,
// independent of grid topology.
type session interface {
	advance() bool // one expansion; true when the search just ended
	solve()
	solved() bool
	done() bool
	toggleBi()
	draw(screen tcell.Screen, scheme render.Scheme)
	status() string
}

// gridSession drives either engine over one topology. cells lists every
// drawable cell; project places a cell on screen.
type gridSession[C comparable] struct {
	world   grid.Map[C]
	topo    grid.Topology[C]
	start   C
	end     C
	cells   []C
	project func(C) (int, int)

	bi      bool
	stepper *search.Stepper[C]
	bistep  *search.BiStepper[C]
	snap    search.Snapshot[C]
	bisnap  search.BiSnapshot[C]
	result  *search.Result[C]
	steps   int
}

func newGridSession[C comparable](world grid.Map[C], topo grid.Topology[C],
	start, end C, bi bool, cells []C, project func(C) (int, int)) *gridSession[C] {
	s := &gridSession[C]{
		world:   world,
		topo:    topo,
		start:   start,
		end:     end,
		cells:   cells,
		project: project,
		bi:      bi,
	}
	s.restart()
	return s
}

// restart discards the search state, keeping the map and endpoints.
func (s *gridSession[C]) restart() {
	s.stepper = search.NewStepper(s.world, s.topo, s.start, s.end)
	s.bistep = search.NewBiStepper(s.world, s.topo, s.start, s.end)
	s.snap = search.Snapshot[C]{}
	s.bisnap = search.BiSnapshot[C]{}
	s.result = nil
	s.steps = 0
}

func (s *gridSession[C]) toggleBi() {
	s.bi = !s.bi
	s.restart()
}

func (s *gridSession[C]) advance() bool {
	if s.result != nil {
		return false
	}
	s.steps++
	if s.bi {
		snap, res := s.bistep.Step()
		if res != nil {
			s.result = res
			return true
		}
		s.bisnap = snap
		return false
	}
	snap, res := s.stepper.Step()
	if res != nil {
		s.result = res
		return true
	}
	s.snap = snap
	return false
}

func (s *gridSession[C]) solve() {
	for s.result == nil {
		s.advance()
	}
}

func (s *gridSession[C]) solved() bool {
	return s.result != nil && s.result.Found
}

func (s *gridSession[C]) done() bool {
	return s.result != nil
}

func (s *gridSession[C]) draw(screen tcell.Screen, scheme render.Scheme) {
	sets := render.CellSets[C]{Start: s.start, End: s.end}
	if s.result != nil && s.result.Found {
		sets.Path = render.CoordSet(s.result.Path)
	}
	if s.bi {
		sets.Open = render.CoordSet(s.bisnap.OpenFwd)
		sets.Closed = render.CoordSet(s.bisnap.ClosedFwd)
		sets.OpenBwd = render.CoordSet(s.bisnap.OpenBwd)
		sets.ClosedBwd = render.CoordSet(s.bisnap.ClosedBwd)
	} else {
		sets.Open = render.CoordSet(s.snap.Open)
		sets.Closed = render.CoordSet(s.snap.Closed)
	}

	for _, c := range s.cells {
		state := render.Classify(sets, c, !s.world.Walkable(c))
		x, y := s.project(c)
		screen.SetContent(x, y, scheme.Rune(state), nil, scheme.Style(state))
	}
}

func (s *gridSession[C]) status() string {
	mode := "A*"
	if s.bi {
		mode = "bidirectional A*"
	}
	switch {
	case s.result == nil && s.steps == 0:
		return fmt.Sprintf("%s | ready", mode)
	case s.result == nil:
		explored := s.snap.Expanded
		if s.bi {
			explored = s.bisnap.Expanded
		}
		return fmt.Sprintf("%s | step %d | explored %d", mode, s.steps, explored)
	case s.result.Found:
		return fmt.Sprintf("%s | path %d cells | explored %d", mode, len(s.result.Path), s.result.Expanded)
	default:
		return fmt.Sprintf("%s | no path | explored %d", mode, s.result.Expanded)
	}
}
