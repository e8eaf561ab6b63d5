// rocks is a terminal Rocks & Diamonds game: dig through dirt, collect
// diamonds and stay clear of falling rocks.
//
// Usage:
//
//	rocks list               - List available levels
//	rocks play [level]       - Play a level
//	rocks sim [level]        - Run the simulation headless and print the grid
//	rocks serve              - Start SSH server for remote play
//	rocks scores [level]     - Show high scores for a level
//	rocks export [level]     - Write a level as a YAML layout
//
// Global flags:
//
//	--fps <rate>         - Controller cycles per second (default: 30)
//	--db <path>          - Scores database (default: ~/.rocks/scores.db)
//	--config <path>      - Config YAML (default search: ~/.rocks/configs, ./configs)
//	--level <id>         - Level to play when no argument is given
//	--level-file <path>  - Play a level file instead of a registered level
//	--levels <dir>       - Register every level file found in dir
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the bundled levels
	_ "github.com/vovakirdan/rocks-diamonds/internal/games/rocks/levels/builtin"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagLevel     string
	flagLevelFile string
	flagLevelsDir string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "rocks",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocks",
	Short: "Rocks & Diamonds - dig, collect and dodge in your terminal",
	Long: `Rocks & Diamonds is a grid game: dig through dirt, collect diamonds
and push rocks while they tumble under gravity.

Available commands:
  list     - Show all available levels
  play     - Play a level
  sim      - Run a level headless and print the result
  serve    - Start SSH server for remote play
  scores   - View high scores
  export   - Convert a level to YAML

Examples:
  rocks list
  rocks play 01-cavern
  rocks play --level-file ./maps/mine.bin
  rocks sim 02-rockfall --ticks 200
  rocks serve --ssh :2222
  rocks scores 00-tutorial`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return registerLevelsDir()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Controller cycles per second")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rocks/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level ID to use when none is given")
	rootCmd.PersistentFlags().StringVar(&flagLevelFile, "level-file", "", "Path to a level file (.yaml, .bin, .lvl)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of extra level files to register")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(exportCmd)
}
