package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ogawakh/game-test/internal/config"
	"github.com/ogawakh/game-test/internal/games/shooter"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective shooter configuration",
	Long: `Print the shooter configuration that 'arcade play' would use, as YAML.

Configuration is looked up in this order:
  1. --config <path>
  2. ~/.arcade/configs/shooter.yaml
  3. ./configs/shooter.yaml
  4. built-in defaults

Values missing from a file keep their defaults. The output can be saved
to ~/.arcade/configs/shooter.yaml and edited.

Examples:
  arcade config
  arcade config --defaults > ~/.arcade/configs/shooter.yaml
  arcade config --config ./hard.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		fmt.Print(string(config.GetDefaultYAML(shooter.GameID)))
		return
	}

	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := shooter.SettingsFromConfig(cfg).Validate(); err != nil {
		logger.Warn("configuration would be rejected, the game falls back to defaults", "error", err)
	}

	data, err := config.MarshalShooter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", config.ShooterSource(flagConfig))
	fmt.Print(string(data))
}
