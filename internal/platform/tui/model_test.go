package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/chroma-cascade/internal/core"
	_ "github.com/vovakirdan/chroma-cascade/internal/games/cascade"
	"github.com/vovakirdan/chroma-cascade/internal/storage"
)

// scriptedGame ends the run with a fixed score after a number of steps.
type scriptedGame struct {
	steps    int
	endAfter int
	score    int
	paused   bool
	resets   int
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++; g.steps = 0 }
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState { return g.state() }
func (g *scriptedGame) RunStats() core.RunStats { return core.RunStats{Score: g.score, Lines: 4, Level: 1, Duration: time.Second} }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.steps++
	}
	return core.StepResult{State: g.state()}
}

func (g *scriptedGame) state() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.steps >= g.endAfter, Paused: g.paused}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{ID: m.tickID})
	return next.(Model)
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m := NewModel(game, nil, testConfig())
	m.Init()

	next, _ := m.Update(TickMsg{ID: m.tickID + 1000})
	m = next.(Model)
	assert.Zero(t, game.steps)

	m = tick(m)
	assert.Equal(t, 1, game.steps)
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &scriptedGame{endAfter: 2, score: 700}
	m := NewModel(game, store, testConfig())
	m.Init()

	for range 5 {
		m = tick(m)
	}
	assert.True(t, m.gameState.GameOver)

	runs, err := store.RecentRuns("scripted", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 700, runs[0].Score)
	assert.Equal(t, 4, runs[0].Lines)

	high, err := store.HighScore("scripted")
	require.NoError(t, err)
	assert.Equal(t, 700, high)
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &scriptedGame{endAfter: 1}
	m := NewModel(game, nil, testConfig())
	m.Init()
	m = tick(m)
	require.True(t, m.gameState.GameOver)

	next, _ := m.Update(runeKey('r'))
	m = tick(next.(Model))
	assert.Equal(t, 2, game.resets)
	assert.False(t, m.gameState.GameOver)
}

func TestModelBackOnlyWhenPaused(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m := NewModel(game, nil, testConfig(), Embedded())
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(next.(Model))
	assert.False(t, m.BackToMenu(), "back is ignored while playing")

	next, _ = m.Update(runeKey('p'))
	m = tick(next.(Model))
	require.True(t, m.gameState.Paused)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting(), "embedded models hand control back")
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), log.New(io.Discard))

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDifficulty, s.screen)
	assert.Equal(t, "chroma", s.gameID)

	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, s.screen)
	require.NotNil(t, s.game)
	assert.Contains(t, s.View(), "SCORE")

	step(runeKey('p'))
	step(TickMsg{ID: s.game.tickID})
	require.True(t, s.game.gameState.Paused)

	step(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, s.screen)
	assert.Nil(t, s.game)
	assert.Empty(t, s.gameID)
}

func TestSessionDifficultyBack(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), log.New(io.Discard))

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)

	assert.Equal(t, screenMenu, s.screen)
	assert.False(t, s.quitting)
}
