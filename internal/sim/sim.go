// Package sim is a headless rescue-robot simulation. Robots explore a grid
// they have never seen, building up a known map as they go, and carry out
// rescues until no victims remain or the tick budget runs out.
//
// Two variants exist: "single", where every robot keeps a private known map,
// and "coop", where all robots share one known map and so benefit from each
// other's exploration.
package sim

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/rescue-robots/rescuebench/internal/mapfile"
	"github.com/rescue-robots/rescuebench/internal/util"
)

// Variant selects the coordination model between robots.
type Variant string

const (
	// Single gives each robot its own known map.
	Single Variant = "single"
	// Coop shares one known map between all robots.
	Coop Variant = "coop"
)

// ParseVariant validates a variant name from user input.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case Single, Coop:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("sim: unknown variant %q (want %q or %q)", s, Single, Coop)
	}
}

// DefaultMaxTicks caps a run so a map with unreachable victims cannot hang a
// batch sweep forever.
const DefaultMaxTicks = 100000

// Options configures one simulation run.
type Options struct {
	Variant  Variant
	Seed     int64
	MaxTicks int       // 0 means DefaultMaxTicks
	Output   io.Writer // progress lines; nil discards
}

// Result summarizes a finished run.
type Result struct {
	Ticks      int
	Rescued    int
	Remaining  int
	AllRescued bool
}

// point is a (row, col) grid coordinate.
type point struct {
	r, c int
}

// neighbors4 is the fixed scan order used by BFS; the per-tick movement
// options are shuffled separately.
var neighbors4 = [4]point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// world is the mutable ground truth plus all robot state for one run.
type world struct {
	grid    *mapfile.Grid
	victims map[point]struct{}
	robots  []*robot
	coop    bool
	rng     *rand.Rand
}

// Run simulates the given map to completion. The input grid is not modified.
func Run(grid *mapfile.Grid, opts Options) (Result, error) {
	if _, err := ParseVariant(string(opts.Variant)); err != nil {
		return Result{}, err
	}

	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	maxTicks := opts.MaxTicks
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}

	w := newWorld(grid, opts.Variant == Coop, opts.Seed)
	total := len(w.victims)

	ticks := 0
	allRescued := len(w.victims) == 0
	for !allRescued && ticks < maxTicks {
		for _, r := range w.robots {
			r.move(w)
		}
		ticks++
		if len(w.victims) == 0 {
			fmt.Fprintln(out, "All victims rescued!")
			allRescued = true
		}
	}
	fmt.Fprintf(out, "Simulation finished in %d ticks.\n", ticks)

	remaining := len(w.victims)
	return Result{
		Ticks:      ticks,
		Rescued:    total - remaining,
		Remaining:  remaining,
		AllRescued: allRescued,
	}, nil
}

// newWorld copies the map, indexes victims, and spawns one robot per robot
// cell. In coop mode all robots point at the same known map.
func newWorld(grid *mapfile.Grid, coop bool, seed int64) *world {
	w := &world{
		grid:    grid.Clone(),
		victims: make(map[point]struct{}),
		coop:    coop,
		rng:     util.NewRNG(seed),
	}

	var shared *mapfile.Grid
	if coop {
		shared = mapfile.NewGrid(grid.Rows, grid.Cols)
		shared.Fill(mapfile.Unknown)
	}

	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			switch grid.At(r, c) {
			case mapfile.Victim:
				w.victims[point{r, c}] = struct{}{}
			case mapfile.Robot:
				known := shared
				if known == nil {
					known = mapfile.NewGrid(grid.Rows, grid.Cols)
					known.Fill(mapfile.Unknown)
				}
				w.robots = append(w.robots, newRobot(point{r, c}, known, w))
			}
		}
	}
	return w
}
