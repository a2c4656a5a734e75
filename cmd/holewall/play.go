package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/holewall/internal/core"
	"github.com/vovakirdan/holewall/internal/games/holewall"
	"github.com/vovakirdan/holewall/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Move
  Ctrl+S       - Copy the screen to the clipboard
  ?            - Toggle key help
  Q/Ctrl+C     - Quit

The terminal is taken over by the game, so logs are discarded unless
--log-file is given.

Examples:
  holewall play
  holewall play --seed 42
  holewall play --log-file holewall.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  cfg.Timing.TickRate(),
		FrameRate: cfg.Timing.FrameRate(),
		Seed:      resolveSeed(),
	}

	game := holewall.New(holewall.WithConfig(cfg), holewall.WithLogger(logger))
	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("play: %w", err)
	}

	fmt.Printf("Walls passed: %d\n", game.State().Score)
	return nil
}
