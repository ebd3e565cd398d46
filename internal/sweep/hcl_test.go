package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSweepFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadHCL_FullSweep(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, `
sweep "quick" {
  grid_sizes    = [20]
  robot_counts  = [2, 5]
  victim_counts = [10]
  obstacles     = 64
}
`)

	s, err := LoadHCL(path)

	require.NoError(t, err)
	require.Equal(t, []int{20}, s.GridSizes)
	require.Equal(t, []int{2, 5}, s.RobotCounts)
	require.Equal(t, []int{10}, s.VictimCounts)
	require.Equal(t, 64, s.Obstacles)
}

func TestLoadHCL_ObstaclesDefaulted(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, `
sweep "defaults" {
  grid_sizes    = [50]
  robot_counts  = [10]
  victim_counts = [40]
}
`)

	s, err := LoadHCL(path)

	require.NoError(t, err)
	require.Equal(t, DefaultObstacles, s.Obstacles)
}

func TestLoadHCL_NoSweepBlock(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, ``)

	_, err := LoadHCL(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "no sweep block")
}

func TestLoadHCL_MultipleSweepBlocks(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, `
sweep "a" {
  grid_sizes    = [20]
  robot_counts  = [2]
  victim_counts = [10]
}
sweep "b" {
  grid_sizes    = [35]
  robot_counts  = [5]
  victim_counts = [25]
}
`)

	_, err := LoadHCL(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "want exactly 1")
}

func TestLoadHCL_ParseError(t *testing.T) {
	t.Parallel()

	path := writeSweepFile(t, `sweep "broken" {`)

	_, err := LoadHCL(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoadHCL_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadHCL(filepath.Join(t.TempDir(), "absent.hcl"))

	require.Error(t, err)
}
