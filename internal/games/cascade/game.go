// Package cascade implements Chroma Cascade: falling tetromino pieces whose
// cells carry independent colors. Locked cells clear in horizontal or vertical
// runs of three or more same-colored cells and in full rows, and the board
// settles and re-resolves until it is stable.
package cascade

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/chroma-cascade/internal/config"
	"github.com/vovakirdan/chroma-cascade/internal/core"
	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"
	"github.com/vovakirdan/chroma-cascade/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // Drop speed follows the level
	ModeZen     Mode = "zen"     // Drop speed stays at level 1
)

// Registered game IDs.
const (
	IDClassic = "chroma"
	IDZen     = "chroma_zen"
)

// Layout of the side panels around the well.
const (
	panelWidth = 14
	cellWidth  = 2
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset is the preset new games start with
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements Chroma Cascade.
type Game struct {
	mode     Mode
	rng      *rand.Rand
	tick     uint64
	tickRate int

	preset     config.DifficultyPreset
	cfg        config.CascadeConfig
	difficulty *config.DifficultyManager
	resolver   *engine.Resolver

	board   *engine.Board
	session engine.Session
	current *engine.Piece
	next    *engine.Piece
	held    *engine.Piece
	canHold bool

	dropTimer int // Ticks since the last automatic drop
	playTicks uint64

	replay     replay
	shownScore int // Score as revealed so far by the cascade replay
	highScore  int

	particles []Particle
	popups    []Popup

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic, preset: difficultyPreset}
}

// NewZen creates a zen mode game.
func NewZen() *Game {
	return &Game{mode: ModeZen, preset: difficultyPreset}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDZen, func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return IDZen
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Chroma Cascade (Zen)"
	}
	return "Chroma Cascade"
}

// Description summarizes the mode for listings.
func (g *Game) Description() string {
	if g.mode == ModeZen {
		return "Constant speed, no pressure"
	}
	return "Speed rises every level"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadCascade(configPath)
	if err != nil {
		gameCfg = config.DefaultCascadeConfig()
	}
	config.ApplyCascadePreset(&gameCfg, g.preset)
	g.ResetWithConfig(cfg, gameCfg)
}

// SetDifficulty selects the preset the next Reset applies.
func (g *Game) SetDifficulty(preset string) error {
	p := config.ParsePreset(preset)
	if preset != "" && p == "" {
		return fmt.Errorf("cascade: unknown difficulty %q", preset)
	}
	g.preset = p
	return nil
}

// ResetWithConfig restarts the game with an explicit game config.
func (g *Game) ResetWithConfig(cfg core.RuntimeConfig, gameCfg config.CascadeConfig) {
	gameCfg.Validate()
	g.cfg = gameCfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.playTicks = 0
	g.dropTimer = 0

	g.difficulty = config.NewDifficultyManager(gameCfg.Difficulty, gameCfg.Gameplay.StartLevel)
	g.resolver = engine.NewResolver(engine.WithObserver(g.record))

	g.board = engine.NewBoard(gameCfg.Board.Width, gameCfg.Board.Height)
	g.session = engine.NewSession(gameCfg.Gameplay.StartLevel)
	g.shownScore = 0
	g.held = nil
	g.current = nil
	g.replay = replay{}
	g.particles = g.particles[:0]
	g.popups = g.popups[:0]

	g.gameOver = false
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.next = g.newPiece()
	g.spawn()
}

// Resize updates the screen dimensions without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.board.Width()*cellWidth + 2 + panelWidth*2
	minH := g.board.Height() + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.updateEffects()

	// Restart is handled by the platform
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.playTicks++

	if g.replay.active {
		g.replay.wait--
		g.advanceReplay()
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	if g.canAct() {
		g.dropTimer++
		if g.dropTimer >= g.dropIntervalTicks() {
			g.dropTimer = 0
			g.moveDown()
		}
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies one frame of player actions in a fixed order.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionHold) {
		g.Hold()
	}
	if in.Has(core.ActionRotateCW) {
		g.Rotate(true)
	}
	if in.Has(core.ActionRotateCCW) {
		g.Rotate(false)
	}
	if in.Has(core.ActionLeft) {
		g.Move(-1)
	}
	if in.Has(core.ActionRight) {
		g.Move(1)
	}
	if in.Has(core.ActionSoftDrop) {
		g.SoftDrop()
	}
	if in.Has(core.ActionHardDrop) {
		g.HardDrop()
	}
}

// canAct reports whether the falling piece accepts player actions.
func (g *Game) canAct() bool {
	return g.current != nil && !g.gameOver && !g.paused && !g.replay.active
}

// Move shifts the current piece horizontally by dx if the target is free.
func (g *Game) Move(dx int) bool {
	if !g.canAct() {
		return false
	}
	moved := g.current.Moved(dx, 0)
	if g.board.Collides(moved) {
		return false
	}
	g.current = moved
	return true
}

// Rotate turns the current piece, trying the wall kick offsets in order.
func (g *Game) Rotate(clockwise bool) bool {
	if !g.canAct() {
		return false
	}
	rotated, ok := engine.Rotate(g.board, g.current, clockwise)
	if ok {
		g.current = rotated
	}
	return ok
}

// SoftDrop moves the piece down one row, scoring the step. A blocked piece locks.
func (g *Game) SoftDrop() bool {
	if !g.canAct() {
		return false
	}
	if !g.moveDown() {
		return false
	}
	g.addDropPoints(g.cfg.Gameplay.SoftDropPoints)
	return true
}

// HardDrop moves the piece to its landing row, scores the distance and locks it.
func (g *Game) HardDrop() int {
	if !g.canAct() {
		return 0
	}
	dist := g.board.DropDistance(g.current)
	g.current = g.current.Moved(0, dist)
	g.addDropPoints(dist * g.cfg.Gameplay.HardDropPoints)
	g.lock()
	return dist
}

// Hold stores the current piece, once per spawned piece. The stored piece is
// regenerated with fresh colors. The first hold pulls the next piece, later
// holds swap with the stored one.
func (g *Game) Hold() bool {
	if !g.canAct() || !g.canHold || !g.cfg.Gameplay.HoldEnabled {
		return false
	}
	stored := g.freshPiece(g.current.Shape)
	if g.held == nil {
		g.held = stored
		g.spawn()
	} else {
		swapped := g.freshPiece(g.held.Shape)
		g.held = stored
		g.place(swapped)
		g.current = swapped
		g.dropTimer = 0
		if g.board.Collides(swapped) {
			g.gameOver = true
		}
	}
	g.canHold = false
	return true
}

// moveDown drops the piece one row. When blocked the piece locks and false is returned.
func (g *Game) moveDown() bool {
	moved := g.current.Moved(0, 1)
	if g.board.Collides(moved) {
		g.lock()
		return false
	}
	g.current = moved
	return true
}

func (g *Game) addDropPoints(points int) {
	g.session.Score += points
	g.shownScore += points
}

// lock merges the current piece and resolves the board. Pass events recorded
// by the resolver are replayed afterwards.
func (g *Game) lock() {
	piece := g.current
	g.current = nil
	g.replay = replay{}

	next, out, over := g.resolver.Lock(g.board, piece, g.session)
	g.session = next
	if over {
		g.gameOver = true
		g.shownScore = g.session.Score
		return
	}
	g.startReplay(out)
}

// spawn promotes the next piece and generates a new preview.
func (g *Game) spawn() {
	p := g.next
	g.next = g.newPiece()
	g.place(p)
	g.current = p
	g.canHold = true
	g.dropTimer = 0
	if g.board.Collides(p) {
		g.gameOver = true
	}
}

// place moves a piece to the spawn position for this board.
func (g *Game) place(p *engine.Piece) {
	p.X = (g.board.Width() - engine.PieceSize) / 2
	p.Y = engine.SpawnY
}

func (g *Game) newPiece() *engine.Piece {
	return g.freshPiece(engine.RandomShape(g.rng))
}

func (g *Game) freshPiece(shape engine.Shape) *engine.Piece {
	return engine.NewRandomPiece(g.rng, shape, engine.Palette(g.session.Level))
}

// speedLevel returns the level driving the drop interval.
func (g *Game) speedLevel() int {
	if g.mode == ModeZen {
		return 1
	}
	return g.difficulty.SpeedLevel(g.session.Level)
}

// dropIntervalTicks converts the drop interval to simulation ticks.
func (g *Game) dropIntervalTicks() int {
	return max(g.durationTicks(engine.DropInterval(g.speedLevel())), 1)
}

// durationTicks rounds a duration up to whole ticks.
func (g *Game) durationTicks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	n := d * time.Duration(g.tickRate)
	return int((n + time.Second - 1) / time.Second)
}

func (g *Game) durationTicksMS(ms int) int {
	return g.durationTicks(time.Duration(ms) * time.Millisecond)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
		Busy:     g.replay.active,
	}
}

// RunStats summarizes the run for persistence.
func (g *Game) RunStats() core.RunStats {
	return core.RunStats{
		Score:    g.session.Score,
		Lines:    g.session.Lines,
		Level:    g.session.Level,
		MaxCombo: g.session.MaxCombo,
		Duration: g.elapsed(),
	}
}

func (g *Game) elapsed() time.Duration {
	if g.tickRate <= 0 {
		return 0
	}
	return time.Duration(g.playTicks) * time.Second / time.Duration(g.tickRate)
}

// Session returns the scoring state.
func (g *Game) Session() engine.Session {
	return g.session
}

// Board returns a copy of the settled board.
func (g *Game) Board() *engine.Board {
	return g.board.Clone()
}

// Current returns a copy of the falling piece, or nil between pieces.
func (g *Game) Current() *engine.Piece {
	if g.current == nil {
		return nil
	}
	return g.current.Clone()
}

// Held returns a copy of the held piece, or nil.
func (g *Game) Held() *engine.Piece {
	if g.held == nil {
		return nil
	}
	return g.held.Clone()
}

// Next returns a copy of the preview piece.
func (g *Game) Next() *engine.Piece {
	return g.next.Clone()
}

// Cascading reports whether a cascade replay is in progress.
func (g *Game) Cascading() bool {
	return g.replay.active
}

// Verify interface compliance
var (
	_ registry.Game        = (*Game)(nil)
	_ registry.Describer   = (*Game)(nil)
	_ registry.Tunable     = (*Game)(nil)
	_ registry.RunReporter = (*Game)(nil)
)
