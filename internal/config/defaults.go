package config

import (
	_ "embed"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
)

//go:embed defaults/rocks.yaml
var defaultRocksYAML []byte

// DefaultRocksConfig returns the hardcoded configuration, used when no
// file (including the embedded one) can be read.
func DefaultRocksConfig() RocksConfig {
	return RocksConfig{
		Gravity: GravityConfig{
			IntervalMS: 250,
		},
		Camera: CameraConfig{
			Step:     core.DefaultCameraStep,
			TileSize: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRocksYAML
}
