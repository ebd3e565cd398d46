package mapfile

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	g := NewGrid(3, 4)
	g.Set(0, 0, Robot)
	g.Set(1, 2, Obstacle)
	g.Set(2, 3, Victim)

	var buf bytes.Buffer
	require.NoError(t, g.Encode(&buf))

	// 2 header bytes plus one byte per cell.
	require.Equal(t, 2+3*4, buf.Len())

	got, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, g, got)
}

func TestEncode_RejectsBadDimensions(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	tooWide := &Grid{Rows: 1, Cols: 300, Cells: make([]Cell, 300)}
	require.Error(t, tooWide.Encode(&buf))

	empty := &Grid{Rows: 0, Cols: 5}
	require.Error(t, empty.Encode(&buf))

	mismatched := &Grid{Rows: 2, Cols: 2, Cells: make([]Cell, 3)}
	require.Error(t, mismatched.Encode(&buf))
}

func TestDecode_TruncatedStream(t *testing.T) {
	t.Parallel()

	// Header promises a 5x5 grid but only 3 cells follow.
	_, err := Decode(bytes.NewReader([]byte{5, 5, 0, 0, 0}))
	require.Error(t, err)

	_, err = Decode(bytes.NewReader([]byte{5}))
	require.Error(t, err)
}

func TestDecode_ZeroDimensions(t *testing.T) {
	t.Parallel()

	_, err := Decode(bytes.NewReader([]byte{0, 5}))

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid dimensions")
}

func TestReadWriteFile(t *testing.T) {
	t.Parallel()

	g := NewGrid(2, 2)
	g.Set(0, 1, Victim)
	path := filepath.Join(t.TempDir(), "map.bin")

	require.NoError(t, WriteFile(path, g))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, g, got)

	// Writing again overwrites rather than appends.
	require.NoError(t, WriteFile(path, g))
	again, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, g, again)
}

func TestGrid_CountAndClone(t *testing.T) {
	t.Parallel()

	g := NewGrid(2, 3)
	g.Set(0, 0, Obstacle)
	g.Set(1, 1, Obstacle)
	g.Set(1, 2, Victim)

	require.Equal(t, 2, g.Count(Obstacle))
	require.Equal(t, 1, g.Count(Victim))
	require.Equal(t, 3, g.Count(Free))

	c := g.Clone()
	c.Set(0, 0, Free)
	require.Equal(t, Obstacle, g.At(0, 0), "clone must not alias the original")
}
