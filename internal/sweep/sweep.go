// Package sweep models the Cartesian parameter sweep a trial generation run
// walks through: every combination of grid size, robot count, and victim
// count, at a fixed obstacle count.
package sweep

import (
	"fmt"
	"strconv"
)

// Default parameter sets. These are the hardcoded values the sweep falls back
// to when no sweep file is given.
const DefaultObstacles = 128

var (
	DefaultGridSizes    = []int{20, 35, 50}
	DefaultRobotCounts  = []int{2, 5, 10}
	DefaultVictimCounts = []int{10, 25, 40}
)

// Sweep is one full parameter sweep definition.
type Sweep struct {
	GridSizes    []int
	RobotCounts  []int
	VictimCounts []int
	Obstacles    int
}

// Default returns the built-in sweep: 3x3x3 combinations, 128 obstacles.
func Default() *Sweep {
	return &Sweep{
		GridSizes:    append([]int(nil), DefaultGridSizes...),
		RobotCounts:  append([]int(nil), DefaultRobotCounts...),
		VictimCounts: append([]int(nil), DefaultVictimCounts...),
		Obstacles:    DefaultObstacles,
	}
}

// Validate rejects sweeps that could never generate a map.
func (s *Sweep) Validate() error {
	if len(s.GridSizes) == 0 || len(s.RobotCounts) == 0 || len(s.VictimCounts) == 0 {
		return fmt.Errorf("sweep: grid_sizes, robot_counts, and victim_counts must each list at least one value")
	}
	for _, set := range [][]int{s.GridSizes, s.RobotCounts, s.VictimCounts} {
		for _, v := range set {
			if v <= 0 {
				return fmt.Errorf("sweep: parameter values must be positive, got %d", v)
			}
		}
	}
	if s.Obstacles < 0 {
		return fmt.Errorf("sweep: obstacles must be non-negative, got %d", s.Obstacles)
	}
	return nil
}

// Size returns the number of combinations the sweep expands to.
func (s *Sweep) Size() int {
	return len(s.GridSizes) * len(s.RobotCounts) * len(s.VictimCounts)
}

// Triple is one combination drawn from the sweep.
type Triple struct {
	GridSize  int
	Robots    int
	Victims   int
	Obstacles int
}

// Triples expands the sweep in its canonical order: grid size in the outer
// loop, robot count in the middle, victim count in the inner.
func (s *Sweep) Triples() []Triple {
	out := make([]Triple, 0, s.Size())
	for _, grid := range s.GridSizes {
		for _, robots := range s.RobotCounts {
			for _, victims := range s.VictimCounts {
				out = append(out, Triple{
					GridSize:  grid,
					Robots:    robots,
					Victims:   victims,
					Obstacles: s.Obstacles,
				})
			}
		}
	}
	return out
}

// MapFileName returns the canonical file name for the triple's map:
// <robots>_<victims>_<gridSize>.bin.
func (t Triple) MapFileName() string {
	return fmt.Sprintf("%d_%d_%d.bin", t.Robots, t.Victims, t.GridSize)
}

// GeneratorArgs returns the argument list passed to the map generator for
// this triple, writing to outPath.
func (t Triple) GeneratorArgs(outPath string) []string {
	return []string{
		"-s", strconv.Itoa(t.GridSize),
		"-o", strconv.Itoa(t.Obstacles),
		"-v", strconv.Itoa(t.Victims),
		"-b", strconv.Itoa(t.Robots),
		"-f", outPath,
	}
}
