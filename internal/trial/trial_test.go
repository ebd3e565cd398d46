package trial

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMapName(t *testing.T) {
	t.Parallel()

	p, err := ParseMapName("trials/2_10_20.bin")

	require.NoError(t, err)
	require.Equal(t, Params{Robots: 2, Victims: 10, GridSize: 20}, p)
}

func TestParseMapName_Rejects(t *testing.T) {
	t.Parallel()

	cases := []string{
		"trials/2_10_20.log",   // wrong extension
		"trials/2_10.bin",      // too few segments
		"trials/2_10_20_5.bin", // too many segments
		"trials/a_10_20.bin",   // non-numeric
		"trials/0_10_20.bin",   // non-positive
	}
	for _, path := range cases {
		_, err := ParseMapName(path)
		require.Error(t, err, "expected %q to be rejected", path)
	}
}

func TestUnit_LogNaming(t *testing.T) {
	t.Parallel()

	u := Unit{MapPath: "trials/2_10_20.bin", RunIndex: 3}

	require.Equal(t, "2_10_20_3.log", u.LogName())
	require.Equal(t, filepath.Join("logs", "alpha", "2_10_20_3.log"), u.LogPath(filepath.Join("logs", "alpha")))
	require.Equal(t, "2_10_20.bin#3", u.ID())
}

func TestExpand(t *testing.T) {
	t.Parallel()

	units := Expand([]string{"trials/a.bin", "trials/b.bin"}, 3)

	require.Len(t, units, 6)
	// Map order is preserved; run indices count 1..3 within each map.
	require.Equal(t, Unit{MapPath: "trials/a.bin", RunIndex: 1}, units[0])
	require.Equal(t, Unit{MapPath: "trials/a.bin", RunIndex: 2}, units[1])
	require.Equal(t, Unit{MapPath: "trials/a.bin", RunIndex: 3}, units[2])
	require.Equal(t, Unit{MapPath: "trials/b.bin", RunIndex: 1}, units[3])
}

func TestExpand_NoMaps(t *testing.T) {
	t.Parallel()

	require.Empty(t, Expand(nil, 3))
}
