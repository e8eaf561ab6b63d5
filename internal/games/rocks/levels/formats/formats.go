// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
)

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Data     []byte // Exactly core.W*core.H tile bytes
	Metadata map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".bin", ".lvl"}
}

// Parse routes data to the parser for the given extension.
func Parse(id string, data []byte, ext string) (Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".bin", ".lvl":
		return ParseRaw(id, data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// ParseRaw parses a flat tile-byte level as exported by map editors.
// Only the first core.W*core.H bytes are used.
func ParseRaw(id string, data []byte) (Level, error) {
	if len(data) < core.W*core.H {
		return Level{}, fmt.Errorf("raw level %q: %w: got %d bytes, need %d",
			id, core.ErrShortLevel, len(data), core.W*core.H)
	}

	buf := make([]byte, core.W*core.H)
	copy(buf, data)

	return Level{
		ID:   id,
		Name: id,
		Data: buf,
	}, nil
}
