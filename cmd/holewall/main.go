// holewall is a hole-in-the-wall game: steer a shape through the hole of an
// approaching wall.
//
// Usage:
//
//	holewall play            - Play in the terminal
//	holewall window          - Play in a desktop window
//	holewall sim             - Run a headless session and print a summary
//	holewall config          - Print the default configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--seed <value>       - RNG seed for reproducible walls
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/holewall/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "holewall",
	Short: "Hole in the Wall - fit through the hole before the wall hits you",
	Long: `Hole in the Wall is a small perspective game. A wall with a hole
approaches from the distance; move your shape so it passes through the hole.
Every wall you pass scores a point, the first one you hit ends the game.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run a headless session
  config   - Show the configuration

Examples:
  holewall play
  holewall play --seed 42
  holewall window --config ./my-holewall.yaml
  holewall sim --ticks 5000 --log-level debug`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger at the --log-level threshold.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "holewall",
		Level:           level,
	}), nil
}

// loadConfig loads the configuration named by --config.
func loadConfig() (config.HolewallConfig, error) {
	return config.LoadHolewall(flagConfig)
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed == 0 {
		return time.Now().UnixNano()
	}
	return flagSeed
}
