package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
)

var (
	flagSimTicks int
	flagSimMoves string
	flagSimQuiet bool
)

var simCmd = &cobra.Command{
	Use:   "sim [level]",
	Short: "Run a level headless and print the result",
	Long: `Run the simulation without a terminal UI.

Each step applies the next move from --moves (if any) as one controller
cycle and then runs one gravity pass. Moves are U, D, L, R, or '.' for
no buttons. A held direction does not repeat, so separate repeated moves
with '.' (for example "R.R.R").

Examples:
  rocks sim 02-rockfall --ticks 64
  rocks sim 00-tutorial --moves "RR.D" --quiet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 100, "Number of gravity passes to run")
	simCmd.Flags().StringVar(&flagSimMoves, "moves", "", "Controller script (U/D/L/R/.)")
	simCmd.Flags().BoolVarP(&flagSimQuiet, "quiet", "q", false, "Print only the summary")
}

func parseMoves(script string) ([]core.Buttons, error) {
	moves := make([]core.Buttons, 0, len(script))
	for i, r := range strings.ToUpper(script) {
		switch r {
		case 'U':
			moves = append(moves, core.ButtonUp)
		case 'D':
			moves = append(moves, core.ButtonDown)
		case 'L':
			moves = append(moves, core.ButtonLeft)
		case 'R':
			moves = append(moves, core.ButtonRight)
		case '.':
			moves = append(moves, 0)
		default:
			return nil, fmt.Errorf("move %d: unknown move %q", i, r)
		}
	}
	return moves, nil
}

func runSim(_ *cobra.Command, args []string) error {
	moves, err := parseMoves(flagSimMoves)
	if err != nil {
		return err
	}

	game, _, err := newGame(args)
	if err != nil {
		return err
	}
	s := game.Sim()

	steps := max(flagSimTicks, len(moves))
	for i := 0; i < steps; i++ {
		if i < len(moves) {
			s.Update(moves[i])
		}
		if i < flagSimTicks {
			s.Fall()
		}
	}

	if !flagSimQuiet {
		fmt.Println(core.RenderASCII(s))
		fmt.Println()
	}

	snap := s.Snapshot()
	fmt.Printf("level=%s %s\n", game.ID(), s)
	fmt.Printf("diamonds_left=%d rocks=%d camera=(%.3f,%.3f) hash=%016x\n",
		snap.DiamondsLeft, snap.Rocks, snap.CameraX, snap.CameraY, s.Hash())
	return nil
}
