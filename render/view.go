// Package render maps grid cells to terminal positions and styles. It
// holds no screen state; the cmd front ends call into it per frame.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathviz/grid"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(20, 30, 40)    // Dark slate
	RgbFloor      = tcell.NewRGBColor(40, 60, 80)    // Grid blue-gray
	RgbObstacle   = tcell.NewRGBColor(90, 100, 110)  // Stone gray
	RgbOpen       = tcell.NewRGBColor(50, 120, 180)  // Frontier blue
	RgbClosed     = tcell.NewRGBColor(30, 70, 110)   // Explored dark blue
	RgbOpenBwd    = tcell.NewRGBColor(180, 120, 50)  // Backward frontier amber
	RgbClosedBwd  = tcell.NewRGBColor(110, 70, 30)   // Backward explored brown
	RgbPath       = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbStart      = tcell.NewRGBColor(0, 255, 127)   // Spring green
	RgbEnd        = tcell.NewRGBColor(255, 69, 0)    // Orange red
	RgbStatusText = tcell.NewRGBColor(220, 220, 220) // Status line gray
)

// State classifies what a cell should look like this frame.
type State uint8

const (
	StateFloor State = iota
	StateObstacle
	StateClosed
	StateClosedBwd
	StateOpen
	StateOpenBwd
	StatePath
	StateStart
	StateEnd
	stateCount
)

// Scheme maps cell states to terminal styles and fill runes.
type Scheme struct {
	styles [stateCount]tcell.Style
	runes  [stateCount]rune
}

func DefaultScheme() Scheme {
	bg := tcell.StyleDefault.Background(RgbBackground)
	var s Scheme
	set := func(st State, fg tcell.Color, r rune) {
		s.styles[st] = bg.Foreground(fg)
		s.runes[st] = r
	}
	set(StateFloor, RgbFloor, '·')
	set(StateObstacle, RgbObstacle, '█')
	set(StateClosed, RgbClosed, '▒')
	set(StateClosedBwd, RgbClosedBwd, '▒')
	set(StateOpen, RgbOpen, '▓')
	set(StateOpenBwd, RgbOpenBwd, '▓')
	set(StatePath, RgbPath, '●')
	set(StateStart, RgbStart, 'S')
	set(StateEnd, RgbEnd, 'E')
	return s
}

func (s Scheme) Style(st State) tcell.Style { return s.styles[st] }
func (s Scheme) Rune(st State) rune         { return s.runes[st] }

// CellSets groups the per-frame lookup sets a classification needs. The
// backward sets stay nil outside bidirectional mode.
type CellSets[C comparable] struct {
	Start, End C
	Path       map[C]bool
	Open       map[C]bool
	Closed     map[C]bool
	OpenBwd    map[C]bool
	ClosedBwd  map[C]bool
}

// Classify resolves a cell's display state.
// Precedence: start > end > path > open > closed > obstacle.
func Classify[C comparable](sets CellSets[C], c C, obstacle bool) State {
	switch {
	case c == sets.Start:
		return StateStart
	case c == sets.End:
		return StateEnd
	case sets.Path[c]:
		return StatePath
	case sets.Open[c]:
		return StateOpen
	case sets.OpenBwd[c]:
		return StateOpenBwd
	case sets.Closed[c]:
		return StateClosed
	case sets.ClosedBwd[c]:
		return StateClosedBwd
	case obstacle:
		return StateObstacle
	default:
		return StateFloor
	}
}

// SquareToScreen projects a square cell to a terminal position. Cells
// are drawn double-width to square up the terminal character aspect.
func SquareToScreen(p grid.Point, offX, offY int) (int, int) {
	return offX + 2*p.X, offY + p.Y
}

// HexToScreen projects axial coordinates onto a sheared rhombus lattice:
// column 2q+r, row r. All six hex neighbors stay adjacent on screen,
// so the flat terminal picture preserves the field's topology.
func HexToScreen(c grid.Axial, offX, offY int) (int, int) {
	return offX + 2*c.Q + c.R, offY + c.R
}

// CoordSet builds a lookup set from a snapshot coordinate list.
func CoordSet[C comparable](coords []C) map[C]bool {
	if len(coords) == 0 {
		return nil
	}
	set := make(map[C]bool, len(coords))
	for _, c := range coords {
		set[c] = true
	}
	return set
}
