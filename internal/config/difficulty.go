package config

// DifficultyManager decides which level drives the drop speed.
type DifficultyManager struct {
	cfg        DifficultyConfig
	startLevel int
}

// NewDifficultyManager creates a difficulty manager for a run starting at startLevel.
func NewDifficultyManager(cfg DifficultyConfig, startLevel int) *DifficultyManager {
	return &DifficultyManager{
		cfg:        cfg,
		startLevel: max(startLevel, 1),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Progression
}

// SpeedLevel returns the level whose drop interval applies at the current
// game level. Without progression the start level is used forever.
func (d *DifficultyManager) SpeedLevel(level int) int {
	if !d.cfg.Progression {
		return d.startLevel
	}
	return max(level, d.startLevel)
}
