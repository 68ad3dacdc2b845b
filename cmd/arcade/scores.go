package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ogawakh/game-test/internal/games/shooter"
	"github.com/ogawakh/game-test/internal/registry"
	"github.com/ogawakh/game-test/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresMine  bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the high scores for the specified game, or the shooter when
none is given.

Examples:
  arcade scores
  arcade scores shooter --limit 25
  arcade scores --mine
  arcade scores --all
  arcade scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Show only the recent runs of --player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs of the game")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := shooter.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	title, ok := registry.Title(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "game", gameID)
		return
	}

	var scores []storage.ScoreEntry
	heading := "High Scores"
	switch {
	case flagScoresMine:
		heading = fmt.Sprintf("Recent runs of %s", flagPlayer)
		scores, err = store.PlayerScores(gameID, flagPlayer, flagScoresLimit)
	case flagScoresAll:
		scores, err = store.AllScores(gameID)
	default:
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %s\n", "Rank", "Score", "Player", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %s\n", "----", "-----", "------", "----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-12s  %-6s  %s\n", i+1, entry.Score, player, playTime(entry.Ticks), dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f  |  Longest: %s\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, playTime(stats.LongestRun))
	}
}

// playTime formats a tick count as m:ss at the configured tick rate.
func playTime(ticks int) string {
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	secs := ticks / fps
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
