package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ogawakh/game-test/internal/config"
	"github.com/ogawakh/game-test/internal/games/shooter"
	"github.com/ogawakh/game-test/internal/storage"
)

var (
	flagSimTicks    int
	flagSimCooldown int
	flagSimVerify   bool
	flagSimRecord   bool
)

// autopilotPlayer is the player name recorded for simulated runs.
const autopilotPlayer = "autopilot"

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play a headless session",
	Long: `Run the shooter without a terminal UI, driven by the built-in
autopilot, and print a summary of the session.

With --verify the recorded intents are replayed through a fresh engine and
the final state hashes are compared, which checks that the simulation is
deterministic for the given seed and configuration.

Examples:
  arcade sim
  arcade sim --ticks 36000 --seed 42
  arcade sim --config ./hard.yaml --verify
  arcade sim --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagSimCooldown, "cooldown", shooter.DefaultFireCooldown, "Autopilot ticks between shots")
	simCmd.Flags().BoolVar(&flagSimVerify, "verify", false, "Replay the session and compare final state hashes")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the result to the scores database as \"autopilot\"")
}

// Summary styles
var (
	simBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	simTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	simLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)
	simOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	simFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	settings := shooter.SettingsFromConfig(cfg)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Debug("starting simulation", "seed", seed, "ticks", flagSimTicks, "source", config.ShooterSource(flagConfig))
	start := time.Now()
	res, err := shooter.Simulate(settings, seed, flagSimTicks, flagSimCooldown)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)
	logger.Debug("simulation finished", "frame", res.Final.Frame, "elapsed", elapsed)

	final := res.Final
	rows := [][2]string{
		{"Seed", fmt.Sprintf("%d", seed)},
		{"Ticks", fmt.Sprintf("%d", final.Frame)},
		{"Score", fmt.Sprintf("%d", final.Score)},
		{"Kills", fmt.Sprintf("%d", final.Score/settings.Reward)},
		{"Shots", fmt.Sprintf("%d", res.Shots)},
		{"Intents", fmt.Sprintf("%d", res.Recording.Len())},
		{"Outcome", outcome(final)},
		{"Hash", fmt.Sprintf("%016x", final.Hash())},
		{"Elapsed", elapsed.Round(time.Microsecond).String()},
	}

	verified := true
	if flagSimVerify {
		replayed, replayErr := shooter.Replay(*res.Recording)
		verified = replayErr == nil && replayed.Hash() == final.Hash()
		status := simOKStyle.Render("replay matches")
		if !verified {
			status = simFailStyle.Render("replay diverged")
		}
		rows = append(rows, [2]string{"Verify", status})
	}

	var b strings.Builder
	b.WriteString(simTitleStyle.Render("Autopilot session"))
	b.WriteString("\n\n")
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(simLabelStyle.Render(row[0]))
		b.WriteString(row[1])
	}
	fmt.Println(simBoxStyle.Render(b.String()))

	if flagSimRecord {
		recordSim(seed, final)
	}

	if !verified {
		os.Exit(1)
	}
}

// outcome describes how the session ended.
func outcome(snap shooter.RenderSnapshot) string {
	if snap.GameOver {
		return simFailStyle.Render("destroyed")
	}
	return simOKStyle.Render("survived")
}

// recordSim saves a simulated run alongside human scores.
func recordSim(seed int64, final shooter.RenderSnapshot) {
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.ScoreEntry{
		GameID: shooter.GameID,
		Player: autopilotPlayer,
		Score:  final.Score,
		Ticks:  final.Frame,
		Seed:   seed,
	})
	if err != nil {
		logger.Error("could not record simulation", "error", err)
		return
	}
	logger.Info("simulation recorded", "id", id, "score", final.Score)
}
