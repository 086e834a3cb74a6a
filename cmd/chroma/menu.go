package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chroma-cascade/internal/platform/tui"
	"github.com/vovakirdan/chroma-cascade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, then pick a
difficulty. Leaving a run returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  chroma menu
  chroma menu --fps 30
  chroma menu --db ./scores.db`,
	Annotations: map[string]string{annotationTUI: "true"},
	Run:         runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db) and play's --config
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		info, ok := registry.Lookup(gameID)
		if !ok {
			logger.Error("unknown mode", "mode", gameID)
			continue
		}

		preset, err := tui.RunDifficultySelector(info.Title, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if preset == "" {
			continue // Back to menu
		}
		if err := applyGameFlags(string(preset)); err != nil {
			logger.Error("bad difficulty", "error", err)
			continue
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("cannot create game", "mode", gameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting game", "mode", gameID, "difficulty", preset)
		if _, err := tui.Run(game, store, cfg, tui.WithLogger(logger)); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
