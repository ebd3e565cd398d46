package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rescue-robots/rescuebench/internal/mapfile"
)

// main is the entrypoint for the map viewer, which dumps a map file as ASCII.
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
	flagSet := flag.NewFlagSet("mapview", flag.ContinueOnError)
	flagSet.SetOutput(outW)

	filename := flagSet.String("f", "generated_map.bin", "Path to the binary map file.")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	grid, err := mapfile.ReadFile(*filename)
	if err != nil {
		return err
	}
	fmt.Fprintf(outW, "Loaded map: %dx%d\n", grid.Rows, grid.Cols)

	var b strings.Builder
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			b.WriteByte(cellGlyph(grid.At(r, c)))
		}
		b.WriteByte('\n')
	}
	_, err = io.WriteString(outW, b.String())
	return err
}

func cellGlyph(v mapfile.Cell) byte {
	switch v {
	case mapfile.Obstacle:
		return '#'
	case mapfile.Victim:
		return 'V'
	case mapfile.Robot:
		return 'R'
	default:
		return '.'
	}
}
