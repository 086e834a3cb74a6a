package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg CascadeConfig
	if err := yaml.Unmarshal(defaultCascadeYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultCascadeConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultCascadeConfig())
	}
}

func TestDefaultDropPoints(t *testing.T) {
	g := DefaultCascadeConfig().Gameplay
	if g.HardDropPoints != engine.HardDropPerCell || g.SoftDropPoints != engine.SoftDropPerStep {
		t.Errorf("drop points = %d/%d, expected %d/%d",
			g.HardDropPoints, g.SoftDropPoints, engine.HardDropPerCell, engine.SoftDropPerStep)
	}
}

func TestLoadCascadeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cascade.yaml")
	data := []byte("board:\n  width: 8\ntiming:\n  clear_pause_ms: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCascade(path)
	if err != nil {
		t.Fatalf("LoadCascade() failed: %v", err)
	}
	if cfg.Board.Width != 8 {
		t.Errorf("Board.Width = %d, expected 8", cfg.Board.Width)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("missing fields should keep defaults, Board.Height = %d", cfg.Board.Height)
	}
	if cfg.Timing.ClearPauseMS != 0 {
		t.Errorf("Timing.ClearPauseMS = %d, expected 0", cfg.Timing.ClearPauseMS)
	}
	if cfg.Timing.SettlePauseMS != 200 {
		t.Errorf("Timing.SettlePauseMS = %d, expected 200", cfg.Timing.SettlePauseMS)
	}
}

func TestLoadCascadeErrors(t *testing.T) {
	if _, err := LoadCascade(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadCascade() should fail for a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadCascade(path)
	if err == nil {
		t.Error("LoadCascade() should fail for invalid YAML")
	}
	if cfg != DefaultCascadeConfig() {
		t.Error("LoadCascade() should return defaults alongside an error")
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := CascadeConfig{
		Board:    CascadeBoard{Width: 1, Height: 500},
		Timing:   CascadeTiming{ClearPauseMS: -5, SettlePauseMS: -1, PopupMS: -10},
		Gameplay: CascadeGameplay{StartLevel: 0, HardDropPoints: -1, SoftDropPoints: -2},
	}
	cfg.Validate()

	if cfg.Board.Width != MinBoardSide || cfg.Board.Height != MaxBoardSide {
		t.Errorf("board = %dx%d, expected %dx%d", cfg.Board.Width, cfg.Board.Height, MinBoardSide, MaxBoardSide)
	}
	if cfg.Timing.ClearPauseMS != 0 || cfg.Timing.SettlePauseMS != 0 || cfg.Timing.PopupMS != 0 {
		t.Errorf("negative pauses should clamp to 0, got %+v", cfg.Timing)
	}
	if cfg.Gameplay.StartLevel != 1 {
		t.Errorf("StartLevel = %d, expected 1", cfg.Gameplay.StartLevel)
	}
	if cfg.Gameplay.HardDropPoints != 0 || cfg.Gameplay.SoftDropPoints != 0 {
		t.Errorf("negative drop points should clamp to 0, got %+v", cfg.Gameplay)
	}
}

func TestApplyCascadePreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		startLevel  int
		progression bool
	}{
		{DifficultyEasy, 1, true},
		{DifficultyNormal, 3, true},
		{DifficultyHard, 6, true},
		{DifficultyFixed, 1, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCascadeConfig()
			ApplyCascadePreset(&cfg, tc.preset)
			if cfg.Gameplay.StartLevel != tc.startLevel {
				t.Errorf("StartLevel = %d, expected %d", cfg.Gameplay.StartLevel, tc.startLevel)
			}
			if cfg.Difficulty.Progression != tc.progression {
				t.Errorf("Progression = %v, expected %v", cfg.Difficulty.Progression, tc.progression)
			}
		})
	}

	cfg := DefaultCascadeConfig()
	cfg.Gameplay.StartLevel = 4
	ApplyCascadePreset(&cfg, "")
	if cfg.Gameplay.StartLevel != 4 {
		t.Error("empty preset should leave the config unchanged")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should parse to empty")
	}
}

func TestDifficultyManagerSpeedLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Progression: true}, 3)
	if got := d.SpeedLevel(1); got != 3 {
		t.Errorf("SpeedLevel(1) = %d, expected start level 3", got)
	}
	if got := d.SpeedLevel(7); got != 7 {
		t.Errorf("SpeedLevel(7) = %d, expected 7", got)
	}

	if !d.IsEnabled() {
		t.Error("IsEnabled() should follow Progression")
	}

	d = NewDifficultyManager(DifficultyConfig{Progression: false}, 3)
	if d.IsEnabled() {
		t.Error("IsEnabled() should be false without progression")
	}
	if got := d.SpeedLevel(12); got != 3 {
		t.Errorf("fixed SpeedLevel(12) = %d, expected 3", got)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("chroma")) == 0 {
		t.Error("chroma should have embedded defaults")
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game should have no defaults")
	}
}
