package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/holewall/internal/games/holewall"
	"github.com/vovakirdan/holewall/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window showing the canvas at its configured size.

Controls:
  Arrows/WASD  - Move (hold to repeat)
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	game := holewall.New(holewall.WithConfig(cfg), holewall.WithLogger(logger))
	return gui.Run(game, cfg, resolveSeed(), logger)
}
