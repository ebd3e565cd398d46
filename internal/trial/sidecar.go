package trial

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SidecarSuffix is appended to a map file path to name its metadata record.
const SidecarSuffix = ".meta.yaml"

// Sidecar is the structured metadata record written next to a generated map.
// The file name already encodes the parameter triple; the sidecar adds the
// facts the name cannot carry: when the map was made, by what command, and
// whether generation actually succeeded.
type Sidecar struct {
	GeneratedAt time.Time `yaml:"generated_at"`
	Command     []string  `yaml:"command"`
	GridSize    int       `yaml:"grid_size"`
	Obstacles   int       `yaml:"obstacles"`
	Victims     int       `yaml:"victims"`
	Robots      int       `yaml:"robots"`
	DurationMs  int64     `yaml:"duration_ms"`
	ExitCode    int       `yaml:"exit_code"`
}

// SidecarPath returns the sidecar path for a map file.
func SidecarPath(mapPath string) string {
	return mapPath + SidecarSuffix
}

// WriteSidecar stores the record next to its map file, overwriting any
// previous record.
func WriteSidecar(mapPath string, sc *Sidecar) error {
	b, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(SidecarPath(mapPath), b, 0o644)
}

// ReadSidecar loads the record for a map file.
func ReadSidecar(mapPath string) (*Sidecar, error) {
	b, err := os.ReadFile(SidecarPath(mapPath))
	if err != nil {
		return nil, err
	}
	var sc Sidecar
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
