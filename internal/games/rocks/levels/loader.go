// Package levels provides level loading functionality for Rocks & Diamonds.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/levels/formats"
	"github.com/vovakirdan/rocks-diamonds/internal/registry"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Data     []byte
	Metadata map[string]string
	FilePath string
}

// NewState creates a fresh simulation state from this level.
func (l *Level) NewState() (*core.State, error) {
	s, err := core.NewState(l.Data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return s, nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file. Raw files take their
// ID from the file name.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parsed, err := formats.Parse(id, data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Data:     parsed.Data,
		Metadata: parsed.Metadata,
		FilePath: path,
	}

	// Surface bad tiles and a missing player at load time.
	if _, err := level.NewState(); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", path, err)
	}

	return level, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// RegisterDir loads every level under root and adds it to the registry.
// IDs already registered are skipped. Returns the IDs that were added.
func RegisterDir(root string) ([]string, error) {
	lvls, err := NewLoader(root).LoadAll()
	if err != nil {
		return nil, err
	}

	var added []string
	for _, lvl := range lvls {
		if registry.Exists(lvl.ID) {
			continue
		}
		data := lvl.Data
		registry.Register(lvl.ID, lvl.Name, func() ([]byte, error) {
			out := make([]byte, len(data))
			copy(out, data)
			return out, nil
		})
		added = append(added, lvl.ID)
	}
	return added, nil
}
