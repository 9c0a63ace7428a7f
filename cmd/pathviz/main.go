package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pathviz/grid"
	"github.com/lixenwraith/pathviz/maze"
	"github.com/lixenwraith/pathviz/render"
)

const (
	statusRow   = 0
	controlsRow = 1
	gridTop     = 3
)

const controlsText = "SPACE: Animate | ENTER: Solve | B: Bidirectional | R: Reset | Q: Quit"

type App struct {
	screen tcell.Screen
	scheme render.Scheme

	sess  session
	build func() session

	animating bool
	fps       int
	audioInit bool
}

func main() {
	var (
		topoStr  string
		width    int
		height   int
		radius   int
		braiding float64
		density  float64
		seed     int64
		bi       bool
		fps      int
		mute     bool
	)

	flag.StringVar(&topoStr, "topo", "square", "Grid topology: 'square' or 'hex'")
	flag.IntVar(&width, "w", 35, "Maze width [odd preferred] (square)")
	flag.IntVar(&height, "h", 19, "Maze height [odd preferred] (square)")
	flag.Float64Var(&braiding, "braid", 0.2, "Braiding factor [0.0 - 1.0] (square)")
	flag.IntVar(&radius, "radius", 10, "Field radius in hexes (hex)")
	flag.Float64Var(&density, "density", 0, "Random obstacle density (hex); 0 uses the demo wall layout")
	flag.Int64Var(&seed, "seed", 0, "Layout seed (0 = random)")
	flag.BoolVar(&bi, "bi", false, "Start in bidirectional mode")
	flag.IntVar(&fps, "fps", 30, "Animation steps per second")
	flag.BoolVar(&mute, "mute", false, "Disable audio")
	flag.Parse()

	if fps < 1 {
		fps = 1
	}

	var build func() session
	switch topoStr {
	case "square", "sq":
		build = func() session { return buildSquareSession(width, height, braiding, seed, bi) }
	case "hex", "hexagonal":
		build = func() session { return buildHexSession(radius, density, seed, bi) }
	default:
		fmt.Fprintf(os.Stderr, "Unknown topology: %s\n", topoStr)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	app := &App{
		screen: screen,
		scheme: render.DefaultScheme(),
		build:  build,
		sess:   build(),
		fps:    fps,
	}

	if !mute {
		if err := app.initAudio(); err != nil {
			// Non-fatal, the visualizer runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	defer app.cleanup()
	app.run()
}

func buildSquareSession(width, height int, braiding float64, seed int64, bi bool) session {
	res := maze.Generate(maze.Config{
		Width:    width,
		Height:   height,
		Braiding: braiding,
		Seed:     seed,
	})

	cells := make([]grid.Point, 0, res.Map.Width()*res.Map.Height())
	for y := 0; y < res.Map.Height(); y++ {
		for x := 0; x < res.Map.Width(); x++ {
			cells = append(cells, grid.Point{X: x, Y: y})
		}
	}
	project := func(p grid.Point) (int, int) {
		return render.SquareToScreen(p, 0, gridTop)
	}
	return newGridSession(grid.Map[grid.Point](res.Map), grid.Square{}, res.Start, res.End, bi, cells, project)
}

func buildHexSession(radius int, density float64, seed int64, bi bool) session {
	start := grid.Axial{Q: -radius + 2, R: 0}
	end := grid.Axial{Q: radius - 2, R: -2}

	var field grid.HexMap
	if density > 0 {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		field = maze.RandomHexField(radius, density, seed, start, end)
	} else {
		field = maze.HexField(radius)
	}

	cells := make([]grid.Axial, 0, len(field))
	for c := range field {
		cells = append(cells, c)
	}
	// Shift the sheared lattice so the leftmost column lands at x=0.
	offX := 2 * radius
	offY := gridTop + radius
	project := func(c grid.Axial) (int, int) {
		return render.HexToScreen(c, offX, offY)
	}
	return newGridSession(grid.Map[grid.Axial](field), grid.Hex{}, start, end, bi, cells, project)
}

func (a *App) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audioInit = true
	}
	return err
}

// playFoundChime marks a completed path, in the same fire-and-forget way
// the speaker handles short tones.
func (a *App) playFoundChime() {
	if !a.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	tone, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(120*time.Millisecond), tone))
}

func (a *App) run() {
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
			a.draw()

		case <-ticker.C:
			if a.animating {
				if a.sess.advance() {
					a.animating = false
					if a.sess.solved() {
						a.playFoundChime()
					}
				}
			}
			a.draw()
		}
	}
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyEnter:
			a.animating = false
			a.sess.solve()
			if a.sess.solved() {
				a.playFoundChime()
			}
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				if !a.sess.done() {
					a.animating = !a.animating
				}
			case 'r', 'R':
				a.sess = a.build()
				a.animating = false
			case 'b', 'B':
				a.sess.toggleBi()
				a.animating = false
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) draw() {
	a.screen.Fill(' ', tcell.StyleDefault.Background(render.RgbBackground))
	a.sess.draw(a.screen, a.scheme)

	textStyle := tcell.StyleDefault.
		Background(render.RgbBackground).
		Foreground(render.RgbStatusText)
	a.drawText(0, statusRow, a.sess.status(), textStyle)
	a.drawText(0, controlsRow, controlsText, textStyle)

	a.screen.Show()
}

func (a *App) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		a.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func (a *App) cleanup() {
	if a.audioInit {
		speaker.Close()
	}
	a.screen.Fini()
}

// Interface checks for both topologies.
var (
	_ session = (*gridSession[grid.Point])(nil)
	_ session = (*gridSession[grid.Axial])(nil)
)
