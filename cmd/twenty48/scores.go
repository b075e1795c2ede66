package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"twenty48/internal/registry"
	"twenty48/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode.

Examples:
  twenty48 scores classic
  twenty48 scores endless`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'twenty48 list' to see available modes.")
		os.Exit(1)
	}

	g, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(modeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'twenty48 play %s' to set the first high score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Tile", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.MaxTile, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetModeStats(modeID); err == nil {
		fmt.Printf("Best: %d   Games: %d   Best tile: %d\n", stats.HighScore, stats.GamesCount, stats.BestTile)
	}
}
