package sweep

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclSweepFile represents the top-level structure of a sweep file for decoding.
type hclSweepFile struct {
	Sweeps []*hclSweep `hcl:"sweep,block"`
}

// hclSweep represents a single `sweep` block.
type hclSweep struct {
	Name         string `hcl:"name,label"`
	GridSizes    []int  `hcl:"grid_sizes"`
	RobotCounts  []int  `hcl:"robot_counts"`
	VictimCounts []int  `hcl:"victim_counts"`
	Obstacles    *int   `hcl:"obstacles,optional"`
}

// LoadHCL parses a sweep definition file. The file must contain exactly one
// `sweep` block; an omitted obstacles attribute falls back to the default
// obstacle count.
func LoadHCL(path string) (*Sweep, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse sweep file %s: %w", path, diags)
	}

	var parsed hclSweepFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode sweep file %s: %w", path, diags)
	}

	switch len(parsed.Sweeps) {
	case 0:
		return nil, fmt.Errorf("sweep file %s contains no sweep block", path)
	case 1:
		// ok
	default:
		return nil, fmt.Errorf("sweep file %s contains %d sweep blocks, want exactly 1", path, len(parsed.Sweeps))
	}

	block := parsed.Sweeps[0]
	s := &Sweep{
		GridSizes:    block.GridSizes,
		RobotCounts:  block.RobotCounts,
		VictimCounts: block.VictimCounts,
		Obstacles:    DefaultObstacles,
	}
	if block.Obstacles != nil {
		s.Obstacles = *block.Obstacles
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("sweep %q in %s: %w", block.Name, path, err)
	}
	return s, nil
}
