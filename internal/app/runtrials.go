package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rescue-robots/rescuebench/internal/ctxlog"
	"github.com/rescue-robots/rescuebench/internal/executor"
	"github.com/rescue-robots/rescuebench/internal/fsutil"
	"github.com/rescue-robots/rescuebench/internal/invoke"
	"github.com/rescue-robots/rescuebench/internal/report"
	"github.com/rescue-robots/rescuebench/internal/trial"
)

// RunTrials discovers every generated map file and executes the configured
// simulator variant against each one cfg.Runs times, capturing each run's
// stdout in its own log file. Runs are dispatched through a bounded worker
// pool; with one worker the sweep is strictly sequential.
func (a *App) RunTrials(ctx context.Context, cfg *RunConfig) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if cfg.HealthcheckPort > 0 {
		a.startHealthcheckServer(cfg.HealthcheckPort)
	}

	files, err := fsutil.FindFilesByExtension(cfg.TrialsDir, trial.MapExt)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("discovering map files in %s: %w", cfg.TrialsDir, err)
		}
		a.logger.Warn("Trials directory does not exist, nothing to run.", "dir", cfg.TrialsDir)
		files = nil
	}

	logDir := filepath.Join(cfg.LogsDir, cfg.Variant)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("creating log directory %s: %w", logDir, err)
	}

	units := trial.Expand(files, cfg.Runs)
	a.logger.Info("Starting trial sweep.",
		"variant", cfg.Variant,
		"maps", len(files),
		"runs_per_map", cfg.Runs,
		"units", len(units),
		"workers", cfg.Workers,
	)

	var summary *report.SummaryCSVWriter
	if cfg.SummaryPath != "" {
		summary, err = report.NewSummaryCSVWriter(cfg.SummaryPath)
		if err != nil {
			return fmt.Errorf("creating summary file %s: %w", cfg.SummaryPath, err)
		}
	}

	tasks := make([]*executor.Task, len(units))
	for i, u := range units {
		u := u
		tasks[i] = &executor.Task{
			ID: u.ID(),
			Fn: func(ctx context.Context) error {
				return a.runUnit(ctx, cfg, u, logDir, summary)
			},
		}
	}

	runErr := executor.New(cfg.Workers, cfg.FailFast).Run(ctx, tasks)

	if summary != nil {
		if err := summary.Close(); err != nil {
			a.logger.Error("Failed to finalize summary file.", "path", cfg.SummaryPath, "error", err)
		}
	}

	failed := executor.CountFailed(tasks)
	fmt.Fprintf(a.outW, "Done. %d runs across %d maps, %d failed. Logs in %s.\n",
		len(units), len(files), failed, logDir)

	if runErr != nil {
		return fmt.Errorf("trial execution failed: %w", runErr)
	}
	return nil
}

// runUnit executes one simulator invocation and redirects its stdout to the
// unit's log file.
func (a *App) runUnit(ctx context.Context, cfg *RunConfig, u trial.Unit, logDir string, summary *report.SummaryCSVWriter) error {
	logPath := u.LogPath(logDir)
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}

	res := invoke.Run(ctx, a.simArgv(cfg, u.MapPath), invoke.Options{
		Stdout:  logFile,
		Stderr:  os.Stderr,
		Timeout: cfg.Timeout,
	})
	closeErr := logFile.Close()

	if summary != nil {
		status := "ok"
		if res.Failed() {
			status = "failed"
		}
		row := report.Row{
			Variant:    cfg.Variant,
			MapFile:    u.MapPath,
			RunIndex:   u.RunIndex,
			LogPath:    logPath,
			Status:     status,
			ExitCode:   res.ExitCode,
			DurationMs: res.Duration.Milliseconds(),
		}
		if err := summary.Write(row); err != nil {
			a.logger.Warn("Failed to record summary row.", "unit", u.ID(), "error", err)
		}
	}

	if res.Failed() {
		if res.Err != nil {
			return fmt.Errorf("simulator run: %w", res.Err)
		}
		return fmt.Errorf("simulator exited with code %d", res.ExitCode)
	}
	return closeErr
}

// simArgv builds the simulator command for one map file. The scripted form
// mirrors the original tooling (`python3 sim/<variant>.py -f <map>`); a
// native simulator binary takes the variant as a flag instead.
func (a *App) simArgv(cfg *RunConfig, mapPath string) []string {
	if cfg.SimBin != "" {
		return []string{cfg.SimBin, "-variant", cfg.Variant, "-f", mapPath}
	}
	return []string{cfg.Python, filepath.Join(cfg.SimDir, cfg.Variant+".py"), "-f", mapPath}
}
