package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/holewall/internal/config"
	"github.com/vovakirdan/holewall/internal/core"
	"github.com/vovakirdan/holewall/internal/games/holewall"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagSnapshot  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session",
	Long: `Run the game without a display and print a summary.

With --autopilot the player is steered into each hole; without it the player
never moves and the first wall ends the session.

Examples:
  holewall sim
  holewall sim --seed 7 --ticks 5000
  holewall sim --autopilot=false --snapshot`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 20000, "Maximum logic ticks to run")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Steer the player through each hole")
	simCmd.Flags().BoolVar(&flagSnapshot, "snapshot", false, "Print the final frame as text")
}

// simResult summarizes a headless session.
type simResult struct {
	Seed   int64
	Ticks  int
	Score  int
	Status holewall.Status
	Wall   float64 // Final wall distance
	Player float64 // Final player distance
	Target core.Point
	Aimed  bool // Autopilot had a fitting location for the last wall
	Screen *core.Screen
}

// simulate runs up to maxTicks logic ticks, or until the session stops.
func simulate(cfg config.HolewallConfig, seed int64, maxTicks int, autopilot bool, logger *log.Logger) simResult {
	game := holewall.New(holewall.WithConfig(cfg), holewall.WithLogger(logger))
	rc := core.DefaultConfig()
	rc.Seed = seed
	game.Reset(rc)

	pilot := holewall.NewAutopilot(game.Rules().MoveDelta)
	for i := 0; i < maxTicks; i++ {
		if autopilot {
			game.HandleAction(pilot.Next(game.Snapshot()))
		}
		if game.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}

	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	game.Render(screen)

	snap := game.Snapshot()
	target, aimed := pilot.Target()
	return simResult{
		Seed:   seed,
		Ticks:  game.Ticks(),
		Score:  game.State().Score,
		Status: snap.Status,
		Wall:   snap.Wall.Distance,
		Player: snap.Obj.Distance,
		Target: target,
		Aimed:  autopilot && aimed,
		Screen: screen,
	}
}

// writeSummary prints the session summary, plus the final frame if asked.
func writeSummary(w io.Writer, r simResult, snapshot bool) {
	fmt.Fprintf(w, "seed:   %d\n", r.Seed)
	fmt.Fprintf(w, "ticks:  %d\n", r.Ticks)
	fmt.Fprintf(w, "walls:  %d\n", r.Score)
	fmt.Fprintf(w, "status: %s\n", r.Status)
	fmt.Fprintf(w, "depths: wall %.2f, player %.2f\n", r.Wall, r.Player)
	if r.Aimed {
		fmt.Fprintf(w, "target: %.0f,%.0f\n", r.Target.X, r.Target.Y)
	} else {
		fmt.Fprintln(w, "target: none")
	}
	if snapshot {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.Screen.String())
	}
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	seed := resolveSeed()
	logger.Info("simulating", "seed", seed, "ticks", flagTicks, "autopilot", flagAutopilot)

	result := simulate(cfg, seed, flagTicks, flagAutopilot, logger)
	writeSummary(cmd.OutOrStdout(), result, flagSnapshot)
	return nil
}
