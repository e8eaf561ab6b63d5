package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
)

func TestNewGridRejectsShortData(t *testing.T) {
	_, err := core.NewGrid(make([]byte, core.W*core.H-1))
	require.ErrorIs(t, err, core.ErrShortLevel)
}

func TestNewGridRejectsUnknownTile(t *testing.T) {
	data := make([]byte, core.W*core.H)
	data[3*core.W+7] = 0x07

	_, err := core.NewGrid(data)
	require.ErrorIs(t, err, core.ErrInvalidTile)
	assert.Contains(t, err.Error(), "(7,3)")
}

func TestNewGridUsesFirstCells(t *testing.T) {
	data := make([]byte, core.W*core.H+10)
	data[0] = byte(core.Rock)
	data[core.W*core.H] = 0xff // trailing bytes are ignored

	g, err := core.NewGrid(data)
	require.NoError(t, err)
	assert.Equal(t, core.Rock, g.Stored(core.C(0, 0)))
}

func TestNewGridCopiesBuffer(t *testing.T) {
	data := make([]byte, core.W*core.H)
	data[0] = byte(core.Dirt)

	g, err := core.NewGrid(data)
	require.NoError(t, err)

	data[0] = byte(core.Wall)
	assert.Equal(t, core.Dirt, g.Stored(core.C(0, 0)))

	out := g.Bytes()
	out[0] = byte(core.Rock)
	assert.Equal(t, core.Dirt, g.Stored(core.C(0, 0)), "Bytes must return a copy")
}

func TestGridBoundaryIsWall(t *testing.T) {
	g, err := core.NewGrid(make([]byte, core.W*core.H))
	require.NoError(t, err)

	player := core.C(0, 0)
	for i := -2; i <= core.W+1; i++ {
		for _, c := range []core.Coord{
			core.C(i, -1), core.C(i, core.H), core.C(-1, i), core.C(core.W, i),
			core.C(i, -100), core.C(core.W+100, i),
		} {
			assert.Equal(t, core.Wall, g.Get(c, player), "Get%v", c)
			assert.Equal(t, core.Wall, g.Get(c, c), "Get%v with player outside", c)
		}
	}
}

func TestGridInBounds(t *testing.T) {
	g, err := core.NewGrid(make([]byte, core.W*core.H))
	require.NoError(t, err)

	testCases := []struct {
		coord    core.Coord
		expected bool
	}{
		{core.C(0, 0), true},
		{core.C(core.W-1, core.H-1), true},
		{core.C(-1, 0), false},
		{core.C(0, -1), false},
		{core.C(core.W, 0), false},
		{core.C(0, core.H), false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, g.InBounds(tc.coord), "InBounds(%v)", tc.coord)
	}
}

func TestGridGetPromotesEmptyPlayerCell(t *testing.T) {
	g, err := core.NewGrid(make([]byte, core.W*core.H))
	require.NoError(t, err)

	player := core.C(10, 12)
	assert.Equal(t, core.PlayerMarker, g.Get(player, player))
	assert.Equal(t, core.Empty, g.Get(core.C(10, 13), player))
	assert.Equal(t, core.Empty, g.Stored(player), "player is never stored")
}

func TestGridPlayerNonPersistence(t *testing.T) {
	for _, tile := range []core.Tile{core.Dirt, core.Wall, core.Rock, core.Diamond} {
		t.Run(tile.String(), func(t *testing.T) {
			g, err := core.NewGrid(make([]byte, core.W*core.H))
			require.NoError(t, err)

			c := core.C(4, 4)
			g.Set(c, tile)
			assert.Equal(t, tile, g.Get(c, c))
			assert.Equal(t, tile, g.Get(c, core.C(0, 0)))
		})
	}
}

func TestGridSetContractViolations(t *testing.T) {
	g, err := core.NewGrid(make([]byte, core.W*core.H))
	require.NoError(t, err)

	assert.Panics(t, func() { g.Set(core.C(-1, 0), core.Rock) })
	assert.Panics(t, func() { g.Set(core.C(0, core.H), core.Rock) })
	assert.Panics(t, func() { g.Set(core.C(core.W, 5), core.Empty) })
	assert.Panics(t, func() { g.Set(core.C(1, 1), core.PlayerMarker) })
	assert.NotPanics(t, func() { g.Set(core.C(core.W-1, core.H-1), core.Diamond) })
}

func TestGridFindFirstIsColumnMajor(t *testing.T) {
	testCases := []struct {
		name     string
		cells    map[core.Coord]core.Tile
		expected core.Coord
	}{
		{
			name: "lower x wins over lower y",
			cells: map[core.Coord]core.Tile{
				core.C(3, 0):  core.Diamond,
				core.C(2, 10): core.Diamond,
			},
			expected: core.C(2, 10),
		},
		{
			name: "same column picks lower y",
			cells: map[core.Coord]core.Tile{
				core.C(2, 5): core.Diamond,
				core.C(2, 3): core.Diamond,
			},
			expected: core.C(2, 3),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGrid(level(tc.cells))
			require.NoError(t, err)

			got, ok := g.FindFirst(core.Diamond)
			require.True(t, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestGridFindFirstMissing(t *testing.T) {
	g, err := core.NewGrid(make([]byte, core.W*core.H))
	require.NoError(t, err)

	_, ok := g.FindFirst(core.Rock)
	assert.False(t, ok)
}

func TestGridCloneIsIndependent(t *testing.T) {
	g, err := core.NewGrid(make([]byte, core.W*core.H))
	require.NoError(t, err)

	clone := g.Clone()
	clone.Set(core.C(1, 1), core.Rock)

	assert.Equal(t, core.Empty, g.Stored(core.C(1, 1)))
	assert.Equal(t, 1, clone.Count(core.Rock))
}

func TestTileGlyphRoundTrip(t *testing.T) {
	for _, tile := range []core.Tile{core.Empty, core.Dirt, core.Wall, core.Rock, core.Diamond, core.PlayerMarker} {
		got, ok := core.ParseGlyph(tile.Glyph())
		require.True(t, ok, "glyph for %v", tile)
		assert.Equal(t, tile, got)
		assert.True(t, tile.Valid())
	}
	assert.False(t, core.Tile(0x03).Valid())
	assert.Equal(t, "Tile(0x03)", core.Tile(0x03).String())
}
