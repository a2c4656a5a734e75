package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/holewall/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration",
	Long: `Print the built-in configuration file, a starting point for --config.

With --effective the configuration that would actually be used is printed
instead, after the search order and validation:
  --config path -> ~/.holewall/configs/holewall.yaml -> ./configs/holewall.yaml -> built-in`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded and validated configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagEffective {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
