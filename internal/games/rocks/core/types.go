// Package core provides the simulation engine for Rocks & Diamonds.
// This package is UI-agnostic and deterministic: it knows nothing about
// terminals, timers or key codes.
package core

import "fmt"

// Level dimensions. Every level is exactly W×H cells.
const (
	W = 64
	H = 64
)

// Tile is the content of one grid cell. Values match the level asset bytes.
type Tile uint8

const (
	Empty        Tile = 0x00
	Dirt         Tile = 0x01
	Wall         Tile = 0x02
	Rock         Tile = 0x10
	Diamond      Tile = 0x11
	PlayerMarker Tile = 0x30
)

// String returns the string representation of a tile.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Dirt:
		return "Dirt"
	case Wall:
		return "Wall"
	case Rock:
		return "Rock"
	case Diamond:
		return "Diamond"
	case PlayerMarker:
		return "Player"
	default:
		return fmt.Sprintf("Tile(0x%02x)", uint8(t))
	}
}

// Valid reports whether t is one of the known tile values.
func (t Tile) Valid() bool {
	switch t {
	case Empty, Dirt, Wall, Rock, Diamond, PlayerMarker:
		return true
	}
	return false
}

// Glyph returns the ASCII glyph used for levels and debug dumps.
func (t Tile) Glyph() rune {
	switch t {
	case Empty:
		return ' '
	case Dirt:
		return '.'
	case Wall:
		return '#'
	case Rock:
		return 'O'
	case Diamond:
		return '*'
	case PlayerMarker:
		return '@'
	default:
		return '?'
	}
}

// ParseGlyph is the inverse of Glyph.
func ParseGlyph(r rune) (Tile, bool) {
	switch r {
	case ' ':
		return Empty, true
	case '.':
		return Dirt, true
	case '#':
		return Wall, true
	case 'O':
		return Rock, true
	case '*':
		return Diamond, true
	case '@':
		return PlayerMarker, true
	}
	return Empty, false
}
