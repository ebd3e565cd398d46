// Package trial defines the on-disk naming conventions linking map files,
// log files, and run metadata, and expands discovered maps into the flat
// list of runs a sweep executes.
package trial

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// MapExt is the extension of generated map files.
const MapExt = ".bin"

// Params are the generation parameters encoded in a map file's name as
// <robots>_<victims>_<gridSize>.bin.
type Params struct {
	Robots   int
	Victims  int
	GridSize int
}

// ParseMapName recovers the generation parameters from a map file path.
func ParseMapName(path string) (Params, error) {
	base := filepath.Base(path)
	stem, ok := strings.CutSuffix(base, MapExt)
	if !ok {
		return Params{}, fmt.Errorf("trial: %q does not have the %s extension", base, MapExt)
	}

	parts := strings.Split(stem, "_")
	if len(parts) != 3 {
		return Params{}, fmt.Errorf("trial: %q does not match <robots>_<victims>_<gridSize>%s", base, MapExt)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return Params{}, fmt.Errorf("trial: %q has a non-positive or non-numeric segment %q", base, part)
		}
		nums[i] = n
	}
	return Params{Robots: nums[0], Victims: nums[1], GridSize: nums[2]}, nil
}

// Unit is one simulator run: a map file paired with a repetition index.
// Units are the concurrency key of a sweep; every unit owns a distinct log
// path, so units never contend on output.
type Unit struct {
	MapPath  string
	RunIndex int
}

// ID returns a stable human-readable identifier for logs and summaries.
func (u Unit) ID() string {
	return fmt.Sprintf("%s#%d", filepath.Base(u.MapPath), u.RunIndex)
}

// LogName returns the log file name for this unit: <mapBase>_<runIndex>.log.
func (u Unit) LogName() string {
	base := strings.TrimSuffix(filepath.Base(u.MapPath), MapExt)
	return fmt.Sprintf("%s_%d.log", base, u.RunIndex)
}

// LogPath returns the unit's log path under the given directory.
func (u Unit) LogPath(logDir string) string {
	return filepath.Join(logDir, u.LogName())
}

// Expand pairs every map file with run indices 1..runs, keeping map order
// and counting runs in index order within each map.
func Expand(mapFiles []string, runs int) []Unit {
	units := make([]Unit, 0, len(mapFiles)*runs)
	for _, mapPath := range mapFiles {
		for i := 1; i <= runs; i++ {
			units = append(units, Unit{MapPath: mapPath, RunIndex: i})
		}
	}
	return units
}
