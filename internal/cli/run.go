package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rescue-robots/rescuebench/internal/app"
)

// ParseRun processes the trial runner's command-line arguments. The single
// required positional argument names the simulator variant; it selects both
// the simulator to execute and the log subdirectory.
func ParseRun(args []string, output io.Writer) (*app.RunConfig, bool, error) {
	flagSet := flag.NewFlagSet("runtrials", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
runtrials - Execute a simulator variant against every generated map.

Each map file under the trials directory is simulated repeatedly, with every
run's stdout captured in logs/<variant>/<map>_<run>.log.

Usage:
  runtrials [options] VARIANT

Arguments:
  VARIANT
    Simulator variant name. Selects sim/<VARIANT>.py (or, with -sim-bin, is
    passed to the native simulator) and the logs/<VARIANT>/ log directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	trialsFlag := flagSet.String("trials", "trials", "Directory scanned for .bin map files.")
	logsFlag := flagSet.String("logs", "logs", "Parent directory for per-variant log directories.")
	runsFlag := flagSet.Int("runs", 3, "Repetitions per map file.")
	workersFlag := flagSet.Int("workers", 1, "Number of concurrent simulator processes. 1 runs strictly sequentially.")
	pythonFlag := flagSet.String("python", "python3", "Interpreter used to run scripted simulators.")
	simDirFlag := flagSet.String("sim-dir", "sim", "Directory holding scripted simulator variants.")
	simBinFlag := flagSet.String("sim-bin", "", "Native simulator executable; replaces the scripted simulator when set.")
	timeoutFlag := flagSet.Duration("timeout", 0, "Per-run time limit. 0 disables the limit.")
	summaryFlag := flagSet.String("summary", "", "Path of a CSV file receiving one row per run. Empty disables the summary.")
	failFastFlag := flagSet.Bool("fail-fast", false, "Cancel remaining runs after the first failure.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing required VARIANT argument"}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected exactly one VARIANT argument, got %d", flagSet.NArg())}
	}
	variant := flagSet.Arg(0)

	logFormat := strings.ToLower(*logFormatFlag)
	if !validLogFormat(logFormat) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	if !validLogLevel(logLevel) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewRunConfig(app.RunConfig{
		Variant:         variant,
		TrialsDir:       *trialsFlag,
		LogsDir:         *logsFlag,
		SimDir:          *simDirFlag,
		Python:          *pythonFlag,
		SimBin:          *simBinFlag,
		Runs:            *runsFlag,
		Workers:         *workersFlag,
		Timeout:         *timeoutFlag,
		SummaryPath:     *summaryFlag,
		FailFast:        *failFastFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
