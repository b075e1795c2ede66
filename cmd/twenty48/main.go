// twenty48 is a terminal 2048 game with animations, persistent high scores,
// and an SSH server for remote play.
//
// Usage:
//
//	twenty48 play [mode]      - Play (classic by default)
//	twenty48 menu             - Interactive mode picker
//	twenty48 list             - List available modes
//	twenty48 scores <mode>    - Show high scores for a mode
//	twenty48 serve            - Start SSH server for remote play
//	twenty48 config           - Print the default game config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.twenty48/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game to register its modes
	_ "twenty48/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "Play 2048 in your terminal",
	Long: `twenty48 is a terminal version of the 2048 sliding-tile puzzle.

Join matching tiles to double them; reach 2048 to win, or play the
endless mode and chase the highest tile.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show available modes
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default game config YAML

Examples:
  twenty48 play
  twenty48 play endless --difficulty hard
  twenty48 menu
  twenty48 serve --ssh :2222
  twenty48 scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twenty48/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
