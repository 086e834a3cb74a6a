package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chroma-cascade/internal/registry"
	"github.com/vovakirdan/chroma-cascade/internal/storage"
)

var flagScoresClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 scores, aggregate statistics and the most recent
runs for the specified mode.

Examples:
  chroma scores chroma
  chroma scores chroma_zen
  chroma scores chroma --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]
	out := cmd.OutOrStdout()

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chroma list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
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
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "mode", gameID)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'chroma play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
		fmt.Fprintf(out, "Lines: %d  Best level: %d  Best combo: %d\n", stats.TotalLines, stats.BestLevel, stats.BestCombo)
	} else {
		logger.Warn("could not load stats", "mode", gameID, "error", err)
	}

	runs, err := store.RecentRuns(gameID, 5)
	if err != nil || len(runs) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent runs:")
	fmt.Fprintf(out, "  %-10s  %-6s  %-5s  %-5s  %-6s  %s\n", "Score", "Lines", "Level", "Combo", "Time", "Date")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-10d  %-6d  %-5d  %-5d  %-6s  %s\n",
			r.Score, r.Lines, r.Level, r.MaxCombo,
			r.Duration.Truncate(time.Second).String(),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
