// Package config provides YAML-based configuration loading for the
// Rocks & Diamonds simulation, with environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"
)

// RocksConfig contains all tunables of a play session.
type RocksConfig struct {
	Gravity GravityConfig `yaml:"gravity"`
	Camera  CameraConfig  `yaml:"camera"`
	Level   LevelConfig   `yaml:"level"`
	Render  RenderConfig  `yaml:"render"`
}

// GravityConfig controls the periodic gravity pass.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms" env:"ROCKS_GRAVITY_INTERVAL_MS"`
}

// CameraConfig controls camera easing and the tile to pixel scale.
type CameraConfig struct {
	Step     float64 `yaml:"step" env:"ROCKS_CAMERA_STEP"`
	TileSize int     `yaml:"tile_size" env:"ROCKS_TILE_SIZE"`
}

// LevelConfig selects the level played when no flag overrides it.
type LevelConfig struct {
	ID   string `yaml:"id" env:"ROCKS_LEVEL"`
	Path string `yaml:"path" env:"ROCKS_LEVEL_PATH"` // File path, wins over ID
}

// RenderConfig holds optional glyph overrides keyed by tile name
// ("empty", "dirt", "wall", "rock", "diamond", "player").
type RenderConfig struct {
	Glyphs map[string]string `yaml:"glyphs,omitempty"`
}

var (
	ErrBadInterval = errors.New("gravity.interval_ms must be positive")
	ErrBadStep     = errors.New("camera.step must be in (0, 1]")
	ErrBadTileSize = errors.New("camera.tile_size must be positive")
)

// Validate checks that the config describes a runnable session.
func (c RocksConfig) Validate() error {
	if c.Gravity.IntervalMS <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadInterval, c.Gravity.IntervalMS)
	}
	if c.Camera.Step <= 0 || c.Camera.Step > 1 {
		return fmt.Errorf("%w: got %g", ErrBadStep, c.Camera.Step)
	}
	if c.Camera.TileSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadTileSize, c.Camera.TileSize)
	}
	for name, g := range c.Render.Glyphs {
		if len([]rune(g)) != 1 {
			return fmt.Errorf("render.glyphs.%s: want a single character, got %q", name, g)
		}
	}
	return nil
}

// GravityInterval returns the gravity period as a duration.
func (c RocksConfig) GravityInterval() time.Duration {
	return time.Duration(c.Gravity.IntervalMS) * time.Millisecond
}

// Glyph returns the override for the named tile, or def.
func (r RenderConfig) Glyph(name string, def rune) rune {
	g, ok := r.Glyphs[name]
	if !ok {
		return def
	}
	runes := []rune(g)
	if len(runes) != 1 {
		return def
	}
	return runes[0]
}
