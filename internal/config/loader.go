package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Board size limits enforced by Validate.
const (
	MinBoardSide = 4
	MaxBoardSide = 40
	MaxLevel     = 99
)

// LoadCascade loads Chroma Cascade configuration.
// Search order: customPath -> ~/.chroma/configs/cascade.yaml -> ./configs/cascade.yaml -> embedded default.
// Fields missing from the file keep their default values. The result is validated.
func LoadCascade(customPath string) (CascadeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCascadeConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseCascade(data)
		if err != nil {
			return DefaultCascadeConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cascade.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCascade(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "cascade.yaml")); err == nil {
		if cfg, err := parseCascade(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCascade(defaultCascadeYAML)
	if err != nil {
		return DefaultCascadeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseCascade(data []byte) (CascadeConfig, error) {
	cfg := DefaultCascadeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chroma", "configs", filename)
}

// Validate clamps every field into its playable range.
func (c *CascadeConfig) Validate() {
	c.Board.Width = clamp(c.Board.Width, MinBoardSide, MaxBoardSide)
	c.Board.Height = clamp(c.Board.Height, MinBoardSide, MaxBoardSide)
	c.Timing.ClearPauseMS = max(c.Timing.ClearPauseMS, 0)
	c.Timing.SettlePauseMS = max(c.Timing.SettlePauseMS, 0)
	c.Timing.PopupMS = max(c.Timing.PopupMS, 0)
	c.Gameplay.StartLevel = clamp(c.Gameplay.StartLevel, 1, MaxLevel)
	c.Gameplay.HardDropPoints = max(c.Gameplay.HardDropPoints, 0)
	c.Gameplay.SoftDropPoints = max(c.Gameplay.SoftDropPoints, 0)
}

// ApplyCascadePreset modifies the config based on a difficulty preset.
func ApplyCascadePreset(cfg *CascadeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Gameplay.StartLevel = StartLevelForPreset(preset)
	cfg.Difficulty.Progression = !IsFixedPreset(preset)
}

func clamp(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
