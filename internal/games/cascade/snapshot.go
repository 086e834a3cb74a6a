package cascade

import "github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCascading   GameStateType = "cascading"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// PieceSnapshot describes a piece by shape, position and cell colors.
type PieceSnapshot struct {
	Shape  string
	X, Y   int
	Blocks []engine.Block
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string // "classic" or "zen"
	Score    int
	Lines    int
	Level    int
	Combo    int
	MaxCombo int
	Board    []string // Settled board, top row first
	Piece    *PieceSnapshot
	Next     *PieceSnapshot
	Held     *PieceSnapshot
	CanHold  bool
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.replay.active:
		state = StateCascading
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Score:    g.session.Score,
		Lines:    g.session.Lines,
		Level:    g.session.Level,
		Combo:    g.session.Combo,
		MaxCombo: g.session.MaxCombo,
		Board:    g.board.Rows(),
		Piece:    snapshotPiece(g.current),
		Next:     snapshotPiece(g.next),
		Held:     snapshotPiece(g.held),
		CanHold:  g.canHold,
		State:    state,
	}
}

func snapshotPiece(p *engine.Piece) *PieceSnapshot {
	if p == nil {
		return nil
	}
	return &PieceSnapshot{
		Shape:  p.Shape.String(),
		X:      p.X,
		Y:      p.Y,
		Blocks: p.Blocks(),
	}
}
