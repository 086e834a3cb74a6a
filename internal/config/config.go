// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// CascadeConfig contains all configuration for Chroma Cascade.
type CascadeConfig struct {
	Board      CascadeBoard     `yaml:"board"`
	Timing     CascadeTiming    `yaml:"timing"`
	Gameplay   CascadeGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CascadeBoard defines the playfield size in cells.
type CascadeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CascadeTiming defines how long each cascade checkpoint stays on screen.
type CascadeTiming struct {
	ClearPauseMS  int `yaml:"clear_pause_ms"`  // After matched cells and rows vanish
	SettlePauseMS int `yaml:"settle_pause_ms"` // After gravity
	PopupMS       int `yaml:"popup_ms"`        // Score popup lifetime
}

// CascadeGameplay defines player-facing rules.
type CascadeGameplay struct {
	StartLevel     int  `yaml:"start_level"`
	HoldEnabled    bool `yaml:"hold_enabled"`
	GhostEnabled   bool `yaml:"ghost_enabled"`
	Particles      bool `yaml:"particles"`
	HardDropPoints int  `yaml:"hard_drop_points"` // Per cell dropped
	SoftDropPoints int  `yaml:"soft_drop_points"` // Per successful step
}

// DifficultyConfig controls level progression.
type DifficultyConfig struct {
	// Progression raises the drop speed as the level rises. When false the
	// drop speed stays at the starting level forever; scoring is unaffected.
	Progression bool `yaml:"progression"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
