package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// LoadRocks loads the session configuration.
// Search order: customPath -> ~/.rocks/configs/rocks.yaml -> ./configs/rocks.yaml -> embedded default.
// ROCKS_* environment variables are applied on top and the result is validated.
func LoadRocks(customPath string) (RocksConfig, error) {
	cfg, err := readRocks(customPath)
	if err != nil {
		return cfg, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readRocks(customPath string) (RocksConfig, error) {
	// Unset keys keep their defaults.
	cfg := DefaultRocksConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rocks.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultRocksConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "rocks.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultRocksConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRocksYAML, &cfg); err != nil {
		return DefaultRocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rocks", "configs", filename)
}

// DataDir returns ~/.rocks/<name>, or ./.rocks/<name> if home is unavailable.
func DataDir(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".rocks", name)
	}
	return filepath.Join(home, ".rocks", name)
}
