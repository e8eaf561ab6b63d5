package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Layout   []string          `yaml:"layout"` // Glyph rows, see core.Tile.Glyph
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("yaml level: missing id")
	}
	if len(yl.Layout) == 0 {
		return Level{}, fmt.Errorf("yaml level %q: empty layout", yl.ID)
	}

	raw, err := core.ParseASCII(yl.Layout)
	if err != nil {
		return Level{}, fmt.Errorf("yaml level %q: %w", yl.ID, err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:       yl.ID,
		Name:     name,
		Data:     raw,
		Metadata: yl.Metadata,
	}, nil
}

// MarshalYAML renders raw level bytes back into the YAML format.
// Trailing empty cells of each row and trailing empty rows are trimmed.
func MarshalYAML(l Level) ([]byte, error) {
	if len(l.Data) < core.W*core.H {
		return nil, fmt.Errorf("level %q: %w", l.ID, core.ErrShortLevel)
	}

	rows := make([]string, 0, core.H)
	for y := 0; y < core.H; y++ {
		row := make([]rune, core.W)
		for x := 0; x < core.W; x++ {
			row[x] = core.Tile(l.Data[y*core.W+x]).Glyph()
		}
		end := len(row)
		for end > 0 && row[end-1] == ' ' {
			end--
		}
		rows = append(rows, string(row[:end]))
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return yaml.Marshal(YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Layout:   rows,
		Metadata: l.Metadata,
	})
}
