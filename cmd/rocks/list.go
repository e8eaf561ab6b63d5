package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
	"github.com/vovakirdan/rocks-diamonds/internal/registry"
	"github.com/vovakirdan/rocks-diamonds/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows every registered level with its diamond count and best score.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	// Best scores are optional
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-8s  %-4s  %s\n", maxIDLen, "ID", "Diamonds", "Best", "Title")
	fmt.Printf("  %-*s  %-8s  %-4s  %s\n", maxIDLen, "--", "--------", "----", "-----")

	for _, l := range levels {
		diamonds := "?"
		if lvl, err := registry.Load(l.ID); err == nil {
			if s, err := core.NewState(lvl.Data); err == nil {
				diamonds = fmt.Sprintf("%d", s.DiamondsLeft())
			}
		}

		best := "-"
		if store != nil {
			if high, err := store.HighScore(l.ID); err == nil && high > 0 {
				best = fmt.Sprintf("%d", high)
			}
		}

		fmt.Printf("  %-*s  %-8s  %-4s  %s\n", maxIDLen, l.ID, diamonds, best, l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'rocks play <id>' to play a level.")
	return nil
}
