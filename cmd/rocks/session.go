package main

import (
	"fmt"

	"github.com/vovakirdan/rocks-diamonds/internal/config"
	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks"
	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/levels"
	"github.com/vovakirdan/rocks-diamonds/internal/registry"
)

// levelSource is a resolved level ready to be turned into a game.
type levelSource struct {
	ID    string
	Title string
	Data  []byte
}

func registerLevelsDir() error {
	if flagLevelsDir == "" {
		return nil
	}
	added, err := levels.RegisterDir(flagLevelsDir)
	if err != nil {
		return fmt.Errorf("loading levels from %s: %w", flagLevelsDir, err)
	}
	logger.Debug("registered levels", "dir", flagLevelsDir, "count", len(added))
	return nil
}

func loadConfig() (config.RocksConfig, error) {
	cfg, err := config.LoadRocks(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// resolveLevel picks the level to run. Precedence: --level-file, the
// positional argument, --level, config level.path, config level.id, then
// the first registered level.
func resolveLevel(cfg config.RocksConfig, args []string) (levelSource, error) {
	path := flagLevelFile
	if path == "" && len(args) == 0 && flagLevel == "" {
		path = cfg.Level.Path
	}
	if path != "" {
		lvl, err := levels.LoadFile(path)
		if err != nil {
			return levelSource{}, err
		}
		return levelSource{ID: lvl.ID, Title: lvl.Name, Data: lvl.Data}, nil
	}

	id := flagLevel
	switch {
	case len(args) > 0:
		id = args[0]
	case id == "":
		id = cfg.Level.ID
	}
	if id == "" {
		id = registry.First()
	}
	if !registry.Exists(id) {
		return levelSource{}, fmt.Errorf("unknown level %q (run 'rocks list' to see available levels)", id)
	}

	lvl, err := registry.Load(id)
	if err != nil {
		return levelSource{}, err
	}
	return levelSource{ID: lvl.ID, Title: lvl.Title, Data: lvl.Data}, nil
}

// newGame loads config and level and builds a game.
func newGame(args []string) (*rocks.Game, config.RocksConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	src, err := resolveLevel(cfg, args)
	if err != nil {
		return nil, cfg, err
	}
	game, err := rocks.New(src.ID, src.Title, src.Data, cfg)
	if err != nil {
		return nil, cfg, err
	}
	return game, cfg, nil
}
