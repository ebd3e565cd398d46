package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rescue-robots/rescuebench/internal/app"
)

// ParseGenerate processes the trial generator's command-line arguments. It
// returns a populated GenerateConfig, a boolean indicating the program should
// exit cleanly, or an ExitError.
func ParseGenerate(args []string, output io.Writer) (*app.GenerateConfig, bool, error) {
	flagSet := flag.NewFlagSet("gentrials", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gentrials - Generate the full parameter sweep of rescue maps.

Walks every combination of grid size, robot count, and victim count and
invokes the map generator once per combination, writing
<robots>_<victims>_<gridSize>.bin files into the output directory.

Usage:
  gentrials [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	sweepFlag := flagSet.String("sweep", "", "Path to an HCL sweep file. Empty uses the built-in parameter sets.")
	outFlag := flagSet.String("out", "trials", "Directory receiving the generated map files.")
	generatorFlag := flagSet.String("generator", "python3 map-generator.py", "Map generator command; per-map flags are appended.")
	sidecarsFlag := flagSet.Bool("sidecars", true, "Write a .meta.yaml metadata record next to each map.")
	failFastFlag := flagSet.Bool("fail-fast", false, "Abort the sweep on the first generator failure.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if !validLogFormat(logFormat) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	if !validLogLevel(logLevel) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	generator := strings.Fields(*generatorFlag)
	if len(generator) == 0 {
		return nil, false, &ExitError{Code: 2, Message: "generator command cannot be empty"}
	}

	config, err := app.NewGenerateConfig(app.GenerateConfig{
		SweepPath: *sweepFlag,
		OutDir:    *outFlag,
		Generator: generator,
		Sidecars:  *sidecarsFlag,
		FailFast:  *failFastFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
