package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rescue-robots/rescuebench/internal/ctxlog"
	"github.com/rescue-robots/rescuebench/internal/invoke"
	"github.com/rescue-robots/rescuebench/internal/sweep"
	"github.com/rescue-robots/rescuebench/internal/trial"
)

// Generate walks the parameter sweep and invokes the external map generator
// once per combination, in the sweep's canonical order. Failures are counted
// and logged; in fail-fast mode the first one aborts the sweep.
func (a *App) Generate(ctx context.Context, cfg *GenerateConfig) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	sw := cfg.Sweep
	if sw == nil {
		if cfg.SweepPath != "" {
			loaded, err := sweep.LoadHCL(cfg.SweepPath)
			if err != nil {
				return err
			}
			sw = loaded
		} else {
			sw = sweep.Default()
		}
	}
	if err := sw.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", cfg.OutDir, err)
	}

	triples := sw.Triples()
	a.logger.Info("Starting map generation sweep.",
		"combinations", len(triples),
		"obstacles", sw.Obstacles,
		"out_dir", cfg.OutDir,
	)

	failed := 0
	for _, t := range triples {
		if err := ctx.Err(); err != nil {
			return err
		}

		outPath := filepath.Join(cfg.OutDir, t.MapFileName())
		argv := append(append([]string(nil), cfg.Generator...), t.GeneratorArgs(outPath)...)

		res := invoke.Run(ctx, argv, invoke.Options{
			Stdout: a.outW,
			Stderr: os.Stderr,
		})

		if cfg.Sidecars {
			a.writeSidecar(outPath, t, res)
		}

		if res.Failed() {
			failed++
			a.logger.Error("Map generation failed.",
				"map", outPath,
				"exit_code", res.ExitCode,
				"error", res.Err,
			)
			if cfg.FailFast {
				if res.Err != nil {
					return fmt.Errorf("generating %s: %w", outPath, res.Err)
				}
				return fmt.Errorf("generating %s: generator exited with code %d", outPath, res.ExitCode)
			}
			continue
		}

		a.logger.Debug("Map generated.", "map", outPath, "duration", res.Duration)
	}

	fmt.Fprintf(a.outW, "Done. Generated %d of %d maps in %s.\n", len(triples)-failed, len(triples), cfg.OutDir)
	return nil
}

// writeSidecar records the invocation next to its map file. Sidecars are
// best-effort traceability; a write failure is logged, never fatal.
func (a *App) writeSidecar(mapPath string, t sweep.Triple, res invoke.Result) {
	sc := &trial.Sidecar{
		GeneratedAt: time.Now().UTC(),
		Command:     res.Argv,
		GridSize:    t.GridSize,
		Obstacles:   t.Obstacles,
		Victims:     t.Victims,
		Robots:      t.Robots,
		DurationMs:  res.Duration.Milliseconds(),
		ExitCode:    res.ExitCode,
	}
	if err := trial.WriteSidecar(mapPath, sc); err != nil {
		a.logger.Warn("Failed to write map sidecar.", "map", mapPath, "error", err)
	}
}
