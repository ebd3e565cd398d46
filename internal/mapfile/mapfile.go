// Package mapfile implements the binary map format shared by the map
// generator, the viewer, and the simulator: one byte of row count, one byte
// of column count, then rows*cols int8 cells in row-major order.
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Cell is a single grid square.
type Cell = int8

// Cell values as stored on disk. Unknown and Traversed never appear in a map
// file; they exist only in a robot's working copy of the world.
const (
	Unknown   Cell = -2
	Traversed Cell = -1
	Free      Cell = 0
	Obstacle  Cell = 1
	Victim    Cell = 2
	Robot     Cell = 3
)

// MaxDim is the largest representable dimension; rows and cols are each
// encoded as a single byte.
const MaxDim = 255

// Grid is an in-memory map: a rows x cols matrix of cells.
type Grid struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// NewGrid returns a zeroed (all-free) grid of the given dimensions.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
}

// At returns the cell at (r, c).
func (g *Grid) At(r, c int) Cell {
	return g.Cells[r*g.Cols+c]
}

// Set stores the cell value at (r, c).
func (g *Grid) Set(r, c int, v Cell) {
	g.Cells[r*g.Cols+c] = v
}

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Count returns how many cells currently hold the given value.
func (g *Grid) Count(v Cell) int {
	n := 0
	for _, cell := range g.Cells {
		if cell == v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Rows, g.Cols)
	copy(c.Cells, g.Cells)
	return c
}

// Fill sets every cell to the given value.
func (g *Grid) Fill(v Cell) {
	for i := range g.Cells {
		g.Cells[i] = v
	}
}

// Encode writes the grid in the binary map format.
func (g *Grid) Encode(w io.Writer) error {
	if g.Rows < 1 || g.Rows > MaxDim || g.Cols < 1 || g.Cols > MaxDim {
		return fmt.Errorf("mapfile: dimensions %dx%d outside 1..%d", g.Rows, g.Cols, MaxDim)
	}
	if len(g.Cells) != g.Rows*g.Cols {
		return fmt.Errorf("mapfile: cell count %d does not match %dx%d", len(g.Cells), g.Rows, g.Cols)
	}

	buf := make([]byte, 2+len(g.Cells))
	buf[0] = byte(g.Rows)
	buf[1] = byte(g.Cols)
	for i, cell := range g.Cells {
		buf[2+i] = byte(cell)
	}
	_, err := w.Write(buf)
	return err
}

// Decode reads a grid in the binary map format.
func Decode(r io.Reader) (*Grid, error) {
	var header [2]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("mapfile: reading header: %w", err)
	}
	rows, cols := int(header[0]), int(header[1])
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("mapfile: invalid dimensions %dx%d", rows, cols)
	}

	raw := make([]byte, rows*cols)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("mapfile: reading %dx%d cells: %w", rows, cols, err)
	}

	g := NewGrid(rows, cols)
	for i, b := range raw {
		g.Cells[i] = Cell(b)
	}
	return g, nil
}

// WriteFile encodes the grid to the named file, creating or truncating it.
func WriteFile(path string, g *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := g.Encode(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile decodes the grid stored in the named file.
func ReadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}
