package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ogawakh/game-test/internal/config"
	"github.com/ogawakh/game-test/internal/core"
	"github.com/ogawakh/game-test/internal/games/shooter"
	"github.com/ogawakh/game-test/internal/platform/tui"
	"github.com/ogawakh/game-test/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game, or the shooter when none is given.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/Up/W/K - Fire
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Back (when paused or after game over)
  Q/Ctrl+C     - Quit

Examples:
  arcade play
  arcade play shooter --seed 42
  arcade play --config ./my-shooter.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := shooter.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, registry.ErrUnknownGame) {
			fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		}
		os.Exit(1)
	}

	prepareShooterConfig()

	store := openStore()

	_, runErr := tui.Run(game, store, terminalConfig(), flagPlayer)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalConfig builds the runtime config from the global flags and the
// current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg.WithDefaults()
}

// prepareShooterConfig points the shooter at --config and reports problems
// before the alternate screen hides the log. A broken config does not stop
// the game; it falls back to the defaults.
func prepareShooterConfig() {
	shooter.SetConfigPath(flagConfig)

	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		logger.Warn("could not load shooter config, using defaults", "error", err)
		return
	}
	if err := shooter.SettingsFromConfig(cfg).Validate(); err != nil {
		logger.Warn("shooter config rejected, using defaults", "source", config.ShooterSource(flagConfig), "error", err)
		return
	}
	logger.Debug("shooter config loaded", "source", config.ShooterSource(flagConfig))
}
