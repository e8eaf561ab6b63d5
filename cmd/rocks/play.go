package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocks-diamonds/internal/core"
	"github.com/vovakirdan/rocks-diamonds/internal/platform/tui"
	"github.com/vovakirdan/rocks-diamonds/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level (or the configured default).

Controls:
  Arrows/WASD/HJKL  - Move, dig, collect, push rocks sideways
  P                 - Pause
  R                 - Restart the level
  Ctrl+S            - Save a text screenshot to ~/.rocks/screenshots
  Q/Esc/Ctrl+C      - Quit

Rocks fall on a fixed schedule (gravity.interval_ms in the config),
independent of the frame rate.

Examples:
  rocks play
  rocks play 01-cavern
  rocks play --level-file ./mine.yaml
  rocks play --config ./fast-gravity.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	game, _, err := newGame(args)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
