package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"
)

func TestBasePoints(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{0, 0}, {2, 0}, {3, 100}, {4, 250}, {5, 500}, {6, 1000}, {7, 1200}, {9, 1600},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.BasePoints(tt.size), "size %d", tt.size)
	}
	assert.Equal(t, 750, engine.MatchPoints(4, 3))
}

func TestLineClearPoints(t *testing.T) {
	want := []int{0, 100, 300, 500, 800, 800, 800}
	for n, pts := range want {
		assert.Equal(t, pts, engine.LineClearPoints(n), "lines %d", n)
	}
	assert.Zero(t, engine.LineClearPoints(-1))
}

func TestComboBonus(t *testing.T) {
	assert.Zero(t, engine.ComboBonus(0))
	assert.Zero(t, engine.ComboBonus(1))
	assert.Equal(t, 100, engine.ComboBonus(2))
	assert.Equal(t, 250, engine.ComboBonus(5))
}

func TestLevels(t *testing.T) {
	assert.Equal(t, 1, engine.LevelForLines(0))
	assert.Equal(t, 1, engine.LevelForLines(9))
	assert.Equal(t, 2, engine.LevelForLines(10))
	assert.Equal(t, 4, engine.LevelForLines(35))

	// A higher starting level is never lowered by a small line count.
	assert.Equal(t, 6, engine.NextLevel(6, 12))
	assert.Equal(t, 3, engine.NextLevel(2, 20))
}

func TestDropInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{0, 1000 * time.Millisecond},
		{1, 1000 * time.Millisecond},
		{5, 600 * time.Millisecond},
		{6, 600 * time.Millisecond},
		{10, 400 * time.Millisecond},
		{11, 350 * time.Millisecond},
		{20, 125 * time.Millisecond},
		{50, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.DropInterval(tt.level), "level %d", tt.level)
	}
}
