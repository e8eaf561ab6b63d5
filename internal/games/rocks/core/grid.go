package core

import (
	"errors"
	"fmt"
)

var (
	// ErrShortLevel is returned when level data holds fewer than W*H bytes.
	ErrShortLevel = errors.New("level data shorter than grid")
	// ErrInvalidTile is returned when level data contains an unknown tile byte.
	ErrInvalidTile = errors.New("invalid tile value")
	// ErrNoPlayer is returned when level data has no player start cell.
	ErrNoPlayer = errors.New("level has no player start")
)

// Grid is the W×H tile array. Cells are stored in row-major order:
// index = y*W + x. The array is allocated once and never resized.
type Grid struct {
	cells [W * H]Tile
}

// NewGrid copies the first W*H bytes of data into a new grid.
// The caller's buffer is not retained.
func NewGrid(data []byte) (*Grid, error) {
	if len(data) < W*H {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrShortLevel, len(data), W*H)
	}
	g := &Grid{}
	for i := 0; i < W*H; i++ {
		t := Tile(data[i])
		if !t.Valid() {
			return nil, fmt.Errorf("%w 0x%02x at %v", ErrInvalidTile, data[i], C(i%W, i/W))
		}
		g.cells[i] = t
	}
	return g, nil
}

// index converts a coordinate to a flat array index.
func index(c Coord) int {
	return c.Y*W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < W && c.Y >= 0 && c.Y < H
}

// Stored returns the stored tile at c, or Wall outside the grid.
func (g *Grid) Stored(c Coord) Tile {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[index(c)]
}

// Get returns the tile at c as seen by the rules. Cells outside the grid
// read as Wall. An Empty cell occupied by the player reads as PlayerMarker.
func (g *Grid) Get(c, player Coord) Tile {
	t := g.Stored(c)
	if t == Empty && c == player {
		return PlayerMarker
	}
	return t
}

// Set writes t at c. Writing outside the grid or storing PlayerMarker
// breaks the grid invariants and panics.
func (g *Grid) Set(c Coord, t Tile) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("core: Set out of bounds at %v", c))
	}
	if t == PlayerMarker {
		panic(fmt.Sprintf("core: cannot store PlayerMarker at %v", c))
	}
	g.cells[index(c)] = t
}

// FindFirst scans columns left to right, each column top to bottom, and
// returns the first cell storing t.
func (g *Grid) FindFirst(t Tile) (Coord, bool) {
	for x := 0; x < W; x++ {
		for y := 0; y < H; y++ {
			if g.cells[index(C(x, y))] == t {
				return C(x, y), true
			}
		}
	}
	return Coord{}, false
}

// Count returns the number of cells storing t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, cell := range g.cells {
		if cell == t {
			n++
		}
	}
	return n
}

// Bytes returns a copy of the grid storage in asset layout.
func (g *Grid) Bytes() []byte {
	out := make([]byte, W*H)
	for i, cell := range g.cells {
		out[i] = byte(cell)
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := *g
	return &clone
}
