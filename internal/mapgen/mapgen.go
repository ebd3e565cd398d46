// Package mapgen produces random rescue maps: obstacles, victims, and robot
// start positions scattered over an empty grid.
package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/rescue-robots/rescuebench/internal/mapfile"
)

// Spec describes one map to generate.
type Spec struct {
	Rows      int
	Cols      int
	Obstacles int
	Victims   int
	Robots    int
}

// Validate checks the spec against the format's limits and basic feasibility.
func (s Spec) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("mapgen: rows and columns must be positive, got %dx%d", s.Rows, s.Cols)
	}
	if s.Rows > mapfile.MaxDim || s.Cols > mapfile.MaxDim {
		return fmt.Errorf("mapgen: dimensions %dx%d exceed the format limit of %d", s.Rows, s.Cols, mapfile.MaxDim)
	}
	if s.Obstacles < 0 || s.Victims < 0 || s.Robots < 0 {
		return fmt.Errorf("mapgen: obstacle, victim, and robot counts must be non-negative")
	}
	if total := s.Obstacles + s.Victims + s.Robots; total > s.Rows*s.Cols {
		return fmt.Errorf("mapgen: %d placements exceed the %d cells of a %dx%d grid",
			total, s.Rows*s.Cols, s.Rows, s.Cols)
	}
	return nil
}

// Generate builds a random map for the spec. Placement is rejection sampled:
// obstacles first, then victims, then robots, each landing only on still-free
// cells. The same rng state always yields the same map.
func Generate(spec Spec, rng *rand.Rand) (*mapfile.Grid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	g := mapfile.NewGrid(spec.Rows, spec.Cols)
	placeAt(g, mapfile.Obstacle, spec.Obstacles, rng)
	placeAt(g, mapfile.Victim, spec.Victims, rng)
	placeAt(g, mapfile.Robot, spec.Robots, rng)
	return g, nil
}

// placeAt scatters n cells of the given value over free positions.
func placeAt(g *mapfile.Grid, v mapfile.Cell, n int, rng *rand.Rand) {
	placed := 0
	for placed < n {
		r, c := rng.Intn(g.Rows), rng.Intn(g.Cols)
		if g.At(r, c) == mapfile.Free {
			g.Set(r, c, v)
			placed++
		}
	}
}
