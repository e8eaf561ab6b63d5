package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocks-diamonds/internal/platform/tui"
	"github.com/vovakirdan/rocks-diamonds/internal/registry"
	"github.com/vovakirdan/rocks-diamonds/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores for a level",
	Long: `Display the top scores for the specified level.

Ties are ranked by fewer controller cycles. A check mark means the
session collected every diamond.

Examples:
  rocks scores 00-tutorial
  rocks scores --tui
  rocks scores 01-cavern --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the level")
}

func runScores(_ *cobra.Command, args []string) error {
	levelID := flagLevel
	if len(args) > 0 {
		levelID = args[0]
	}
	if levelID == "" && !flagScoresTUI {
		levelID = registry.First()
	}
	if levelID != "" && !registry.Exists(levelID) {
		return fmt.Errorf("unknown level %q (run 'rocks list' to see available levels)", levelID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, levelID, width, height)
	}

	if flagScoresClear {
		if err := store.ClearScores(levelID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s.\n", levelID)
		return nil
	}

	return printScores(store, levelID)
}

func printScores(store *storage.Store, levelID string) error {
	lvl, err := registry.Load(levelID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(levelID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", lvl.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rocks play %s' to set the first high score!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %s\n", "Rank", "Player", "Score", "Moves", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		score := fmt.Sprintf("%d", entry.Score)
		if entry.Cleared {
			score += "✓"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-6s  %-7d  %s\n", i+1, entry.Player, score, entry.Cycles, dateStr)
	}

	stats, err := store.LevelStats(levelID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Println()
	fmt.Printf("Sessions: %d  Clears: %d  Average: %.1f  Last played: %s\n",
		stats.Sessions, stats.Clears, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}
