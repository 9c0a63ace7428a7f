package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/lixenwraith/pathviz/grid"
	"github.com/lixenwraith/pathviz/maze"
	"github.com/lixenwraith/pathviz/search"
)

func main() {
	var (
		width     int
		height    int
		braiding  float64
		seed      int64
		jailbreak bool
		bi        bool
	)

	flag.IntVar(&width, "w", 35, "Maze width [odd preferred]")
	flag.IntVar(&height, "h", 19, "Maze height [odd preferred]")
	flag.Float64Var(&braiding, "braid", 0.2, "Braiding factor [0.0 - 1.0]")
	flag.Int64Var(&seed, "seed", 0, "Maze seed (0 = random)")
	flag.BoolVar(&jailbreak, "jailbreak", false, "Remove outer borders")
	flag.BoolVar(&bi, "bi", false, "Use the bidirectional engine")
	flag.Parse()

	startT := time.Now()
	res := maze.Generate(maze.Config{
		Width:         width,
		Height:        height,
		Braiding:      braiding,
		RemoveBorders: jailbreak,
		Seed:          seed,
	})

	path, found, explored := solve(res, bi)
	dur := time.Since(startT)

	draw(res, path)

	engine := "A*"
	if bi {
		engine = "bidirectional A*"
	}
	fmt.Printf("\nGrid: %dx%d | engine: %s | %v\n", res.Map.Width(), res.Map.Height(), engine, dur)

	if !found {
		fmt.Println("Status: no path (isolated start/end)")
		return
	}
	fmt.Printf("Path: %d cells | explored: %d nodes\n", len(path), explored)
	if res.Solution != nil {
		if len(path) == len(res.Solution) {
			fmt.Printf("Optimal: yes (BFS reference %d cells)\n", len(res.Solution))
		} else {
			fmt.Printf("Optimal: NO (BFS reference %d cells)\n", len(res.Solution))
		}
	}
}

// solve drives a stepper to exhaustion so the explored-node count comes
// with the result.
func solve(res maze.Result, bi bool) ([]grid.Point, bool, int) {
	if bi {
		stepper := search.NewBiStepper(grid.Map[grid.Point](res.Map), grid.Square{}, res.Start, res.End)
		for {
			if _, r := stepper.Step(); r != nil {
				return r.Path, r.Found, r.Expanded
			}
		}
	}
	stepper := search.NewStepper(grid.Map[grid.Point](res.Map), grid.Square{}, res.Start, res.End)
	for {
		if _, r := stepper.Step(); r != nil {
			return r.Path, r.Found, r.Expanded
		}
	}
}

func draw(res maze.Result, path []grid.Point) {
	onPath := make(map[grid.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	for y := 0; y < res.Map.Height(); y++ {
		for x := 0; x < res.Map.Width(); x++ {
			p := grid.Point{X: x, Y: y}
			switch {
			case p == res.Start:
				fmt.Print("S")
			case p == res.End:
				fmt.Print("E")
			case res.Map.IsWall(p):
				fmt.Print("█")
			case onPath[p]:
				fmt.Print("•")
			default:
				fmt.Print(" ")
			}
		}
		fmt.Println()
	}
}
