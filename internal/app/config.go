package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/rescue-robots/rescuebench/internal/sweep"
)

// GenerateConfig holds everything a map generation sweep needs.
type GenerateConfig struct {
	// SweepPath optionally points at an HCL sweep file; empty means the
	// built-in parameter sets.
	SweepPath string
	// Sweep, when non-nil, overrides SweepPath entirely. Used by tests.
	Sweep *sweep.Sweep

	// OutDir is where map files are written.
	OutDir string
	// Generator is the argv prefix of the external map generator; the
	// per-map flags are appended to it.
	Generator []string

	// Sidecars enables writing a metadata record next to every map.
	Sidecars bool
	// FailFast aborts the sweep on the first generator failure.
	FailFast bool

	LogFormat string
	LogLevel  string
}

// NewGenerateConfig applies defaults and validates the configuration.
func NewGenerateConfig(cfg GenerateConfig) (*GenerateConfig, error) {
	if cfg.OutDir == "" {
		cfg.OutDir = "trials"
	}
	if len(cfg.Generator) == 0 {
		cfg.Generator = []string{"python3", "map-generator.py"}
	}
	return &cfg, nil
}

// RunConfig holds everything a trial execution sweep needs.
type RunConfig struct {
	// Variant names the simulator implementation and the log subdirectory.
	Variant string

	// TrialsDir is scanned for map files.
	TrialsDir string
	// LogsDir is the parent of the per-variant log directory.
	LogsDir string

	// SimDir and Python locate the scripted simulator: Python runs
	// SimDir/<Variant>.py. SimBin, when set, replaces that with a native
	// executable invoked as `SimBin -variant <Variant> -f <map>`.
	SimDir string
	Python string
	SimBin string

	// Runs is the number of repetitions per map file.
	Runs int
	// Workers bounds concurrent simulator processes; 1 means sequential.
	Workers int
	// Timeout caps one simulator invocation; 0 means unlimited.
	Timeout time.Duration

	// SummaryPath optionally names a CSV file receiving one row per run.
	SummaryPath string
	// FailFast cancels remaining runs after the first failure.
	FailFast bool

	HealthcheckPort int
	LogFormat       string
	LogLevel        string
}

// NewRunConfig applies defaults and validates the configuration.
func NewRunConfig(cfg RunConfig) (*RunConfig, error) {
	if cfg.Variant == "" {
		return nil, errors.New("Variant is a required configuration field and cannot be empty")
	}
	if cfg.TrialsDir == "" {
		cfg.TrialsDir = "trials"
	}
	if cfg.LogsDir == "" {
		cfg.LogsDir = "logs"
	}
	if cfg.SimDir == "" {
		cfg.SimDir = "sim"
	}
	if cfg.Python == "" {
		cfg.Python = "python3"
	}
	if cfg.Runs == 0 {
		cfg.Runs = 3
	}
	if cfg.Runs < 0 {
		return nil, fmt.Errorf("Runs must be positive, got %d", cfg.Runs)
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("Workers must be positive, got %d", cfg.Workers)
	}
	return &cfg, nil
}
