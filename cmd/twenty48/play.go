package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"twenty48/internal/core"
	"twenty48/internal/game"
	"twenty48/internal/platform/tui"
	"twenty48/internal/registry"
	"twenty48/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing. Defaults to classic mode; pass "endless" to play
without the win banner.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  P                - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty presets control how often a 4 spawns instead of a 2:
  easy   - 5%
  normal - 10%
  hard   - 20%

Examples:
  twenty48 play
  twenty48 play endless
  twenty48 play --difficulty hard
  twenty48 play --config ./my-rules.yaml
  twenty48 play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := "classic"
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'twenty48 list' to see available modes.")
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Config path and difficulty apply before creation
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	g, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
