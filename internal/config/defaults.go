package config

import (
	_ "embed"

	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"
)

//go:embed defaults/cascade.yaml
var defaultCascadeYAML []byte

// DefaultCascadeConfig returns the hardcoded Chroma Cascade configuration.
// It matches defaults/cascade.yaml.
func DefaultCascadeConfig() CascadeConfig {
	return CascadeConfig{
		Board: CascadeBoard{
			Width:  10,
			Height: 20,
		},
		Timing: CascadeTiming{
			ClearPauseMS:  300,
			SettlePauseMS: 200,
			PopupMS:       1000,
		},
		Gameplay: CascadeGameplay{
			StartLevel:     1,
			HoldEnabled:    true,
			GhostEnabled:   true,
			Particles:      true,
			HardDropPoints: engine.HardDropPerCell,
			SoftDropPoints: engine.SoftDropPerStep,
		},
		Difficulty: DifficultyConfig{
			Progression: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chroma", "chroma_zen", "cascade":
		return defaultCascadeYAML
	default:
		return nil
	}
}
