package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rescue-robots/rescuebench/internal/mapfile"
	"github.com/rescue-robots/rescuebench/internal/sim"
)

// main is the entrypoint for the bundled headless simulator. The trial runner
// invokes it as `rescuesim -variant <name> -f <map>` when configured with
// -sim-bin.
func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("rescuesim", flag.ContinueOnError)
	flagSet.SetOutput(outW)

	flagSet.Usage = func() {
		fmt.Fprint(outW, `
rescuesim - Headless rescue robot simulation.

Usage:
  rescuesim [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	filename := flagSet.String("f", "generated_map.bin", "Input map filename.")
	variant := flagSet.String("variant", string(sim.Single), "Coordination model: 'single' or 'coop'.")
	seed := flagSet.Int64("seed", 0, "Random seed. 0 seeds from the current time.")
	maxTicks := flagSet.Int("max-ticks", sim.DefaultMaxTicks, "Abort the run after this many ticks.")
	quiet := flagSet.Bool("q", false, "Suppress progress output.")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	v, err := sim.ParseVariant(*variant)
	if err != nil {
		return err
	}

	simOut := outW
	if *quiet {
		simOut = io.Discard
	}

	grid, err := mapfile.ReadFile(*filename)
	if err != nil {
		return err
	}
	fmt.Fprintf(simOut, "Loaded map: %dx%d\n", grid.Rows, grid.Cols)

	if *seed == 0 {
		*seed = time.Now().Unix()
	}

	res, err := sim.Run(grid, sim.Options{
		Variant:  v,
		Seed:     *seed,
		MaxTicks: *maxTicks,
		Output:   simOut,
	})
	if err != nil {
		return err
	}

	if !res.AllRescued {
		return fmt.Errorf("aborted after %d ticks with %d victims remaining", res.Ticks, res.Remaining)
	}
	return nil
}
