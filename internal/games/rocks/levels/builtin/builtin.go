// Package builtin bundles the default level pack and registers it.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/rocks-diamonds/internal/games/rocks/levels/builtin"
package builtin

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/levels/formats"
	"github.com/vovakirdan/rocks-diamonds/internal/registry"
)

//go:embed *.yaml
var files embed.FS

func init() {
	levels, err := Levels()
	if err != nil {
		panic(fmt.Sprintf("builtin: %v", err))
	}
	for _, lvl := range levels {
		data := lvl.Data
		registry.Register(lvl.ID, lvl.Name, func() ([]byte, error) {
			out := make([]byte, len(data))
			copy(out, data)
			return out, nil
		})
	}
}

// Levels parses every bundled level file.
func Levels() ([]formats.Level, error) {
	names, err := fs.Glob(files, "*.yaml")
	if err != nil {
		return nil, err
	}

	result := make([]formats.Level, 0, len(names))
	for _, name := range names {
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		lvl, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		result = append(result, lvl)
	}
	return result, nil
}
