package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RenderASCII returns the grid as H lines of W glyphs, player included.
func RenderASCII(s *State) string {
	var sb strings.Builder
	sb.Grow((W + 1) * H)

	for y := 0; y < H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < W; x++ {
			sb.WriteRune(s.Tile(C(x, y)).Glyph())
		}
	}
	return sb.String()
}

// RenderRegion returns the rectangle [x0,x0+w)×[y0,y0+h) as glyph rows.
// Cells outside the grid render as Wall.
func RenderRegion(s *State, x0, y0, w, h int) []string {
	rows := make([]string, 0, h)
	for y := y0; y < y0+h; y++ {
		var sb strings.Builder
		for x := x0; x < x0+w; x++ {
			sb.WriteRune(s.Tile(C(x, y)).Glyph())
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// ParseASCII converts glyph rows into raw level bytes. Rows may be shorter
// than W and fewer than H; missing cells are Empty.
func ParseASCII(rows []string) ([]byte, error) {
	if len(rows) > H {
		return nil, fmt.Errorf("layout has %d rows, max %d", len(rows), H)
	}

	data := make([]byte, W*H)
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n > W {
			return nil, fmt.Errorf("layout row %d has %d cells, max %d", y, n, W)
		}
		x := 0
		for _, r := range row {
			t, ok := ParseGlyph(r)
			if !ok {
				return nil, fmt.Errorf("layout row %d col %d: unknown glyph %q", y, x, r)
			}
			data[index(C(x, y))] = byte(t)
			x++
		}
	}
	return data, nil
}

// MustParseASCII is like ParseASCII but panics on error. Used for fixtures.
func MustParseASCII(rows ...string) []byte {
	data, err := ParseASCII(rows)
	if err != nil {
		panic(err)
	}
	return data
}
