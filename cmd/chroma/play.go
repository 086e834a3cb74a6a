package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chroma-cascade/internal/config"
	"github.com/vovakirdan/chroma-cascade/internal/core"
	"github.com/vovakirdan/chroma-cascade/internal/games/cascade"
	"github.com/vovakirdan/chroma-cascade/internal/platform/tui"
	"github.com/vovakirdan/chroma-cascade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode (default: chroma).

Modes:
  chroma      - Classic: drop speed rises with the level
  chroma_zen  - Zen: drop speed stays at level 1

Controls:
  Left/Right, A/D  - Move
  Up, X, W         - Rotate clockwise
  Z                - Rotate counter-clockwise
  Down, S          - Soft drop
  Space            - Hard drop
  C                - Hold
  P                - Pause
  R                - Restart (after game over)
  Esc              - Leave (when paused or game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 6
  fixed  - Level 1 drop speed for the whole run

Examples:
  chroma play
  chroma play chroma_zen
  chroma play --difficulty hard
  chroma play --config ./my-cascade.yaml --seed 42`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationTUI: "true"},
	Run:         runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags hands --config and --difficulty to the game package.
func applyGameFlags(preset string) error {
	if preset != "" && config.ParsePreset(preset) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}
	cascade.SetConfigPath(flagConfig)
	cascade.SetDifficultyPreset(preset)
	return nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := cascade.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chroma list' to see available modes.")
		os.Exit(1)
	}

	if err := applyGameFlags(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if the database cannot be opened
	store := openStore()

	logger.Info("starting game", "mode", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	_, runErr := tui.Run(game, store, terminalConfig(), tui.WithLogger(logger))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
