package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
)

// level builds raw level bytes: all Empty except the given cells.
func level(cells map[core.Coord]core.Tile) []byte {
	data := make([]byte, core.W*core.H)
	for c, t := range cells {
		data[c.Y*core.W+c.X] = byte(t)
	}
	return data
}

// newState builds a state from cells; a PlayerMarker must be among them.
func newState(t *testing.T, cells map[core.Coord]core.Tile) *core.State {
	t.Helper()
	s, err := core.NewState(level(cells))
	require.NoError(t, err)
	return s
}

// tilesOf returns all coordinates storing tile t.
func tilesOf(g *core.Grid, t core.Tile) []core.Coord {
	var out []core.Coord
	for x := 0; x < core.W; x++ {
		for y := 0; y < core.H; y++ {
			if g.Stored(core.C(x, y)) == t {
				out = append(out, core.C(x, y))
			}
		}
	}
	return out
}
