package engine

// Session is the per-game state the resolver reads and updates.
// It is owned by the caller and passed by value.
type Session struct {
	Score    int
	Lines    int
	Level    int
	Combo    int // Consecutive cascading locks
	MaxCombo int
}

// NewSession returns a fresh session starting at the given level.
func NewSession(startLevel int) Session {
	return Session{Level: max(startLevel, 1)}
}

// ClearedCell is a matched cell removed during a pass, with the color it had.
type ClearedCell struct {
	Cell
	Color Color
}

// Pass records one iteration of the cascade loop.
type Pass struct {
	Depth       int           // 1-based cascade level, also the score multiplier
	Cleared     []ClearedCell // Matched cells, row-major
	MatchPoints int
	FullRows    int // Full rows detected at the start of the pass
	RowsRemoved int // Rows actually removed after the matched cells were cleared
	LinePoints  int
}

// MatchSize returns the number of unique matched cells.
func (p Pass) MatchSize() int {
	return len(p.Cleared)
}

// Points returns everything this pass added to the score.
func (p Pass) Points() int {
	return p.MatchPoints + p.LinePoints
}

// Outcome aggregates a whole cascade triggered by one lock.
type Outcome struct {
	ScoreDelta   int // Match and line points plus ComboBonus
	LinesCleared int
	CascadeDepth int // 0 if nothing cleared
	Combo        int // Combo counter after this lock
	ComboBonus   int
	Level        int
	LeveledUp    bool
	Passes       []Pass
}

// Phase identifies a checkpoint inside a pass.
type Phase int

const (
	// PhaseCleared follows removal of matched cells and full rows, before gravity.
	PhaseCleared Phase = iota
	// PhaseSettled follows gravity.
	PhaseSettled
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseCleared:
		return "cleared"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// PassEvent is emitted at each checkpoint. Board is a snapshot the receiver may keep.
type PassEvent struct {
	Phase Phase
	Pass  Pass
	Board *Board
}

// ResolverState is the resolver's lifecycle state.
type ResolverState int

const (
	StateIdle ResolverState = iota
	StateResolving
)

// Resolver runs the match/line cascade loop after a piece locks.
// It is not safe for concurrent use; a resolution always runs to completion.
type Resolver struct {
	observer func(PassEvent)
	state    ResolverState
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithObserver registers a callback invoked at every pass checkpoint.
// The callback runs synchronously and must not mutate the board.
func WithObserver(fn func(PassEvent)) Option {
	return func(r *Resolver) {
		r.observer = fn
	}
}

// NewResolver creates a resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current lifecycle state.
func (r *Resolver) State() ResolverState {
	return r.state
}

// Resolve repeatedly detects matches and full rows, clears them, scores them
// and applies gravity until the board is stable. The board is mutated in place.
//
// Per pass, at cascade depth d:
//   - matched cells score BasePoints(size)*d and are emptied
//   - full rows counted at the start of the pass score LineClearPoints(count)
//     and every row still full is removed
//   - gravity compacts each column
//
// After the loop the combo counter increments for a cascading lock (awarding
// ComboBonus) or resets to 0, and the level is raised from the line total.
func (r *Resolver) Resolve(b *Board, s Session) (Session, Outcome) {
	if r.state == StateResolving {
		panic("engine: Resolve called while a cascade is in progress")
	}
	r.state = StateResolving
	defer func() { r.state = StateIdle }()

	out := Outcome{}
	startScore := s.Score
	startLevel := s.Level

	// Each pass removes at least one cell or row, so W*H passes is an upper bound.
	maxPasses := b.Width() * b.Height()
	for depth := 1; depth <= maxPasses; depth++ {
		matches := FindMatches(b)
		fullRows := CountFullRows(b)
		if matches.Empty() && fullRows == 0 {
			break
		}
		out.CascadeDepth = depth

		pass := Pass{Depth: depth, FullRows: fullRows}

		if !matches.Empty() {
			pass.MatchPoints = MatchPoints(matches.Len(), depth)
			pass.Cleared = make([]ClearedCell, 0, matches.Len())
			for _, c := range matches.Cells() {
				pass.Cleared = append(pass.Cleared, ClearedCell{Cell: c, Color: b.At(c.Row, c.Col)})
				b.ClearCell(c.Row, c.Col)
			}
		}

		if fullRows > 0 {
			pass.RowsRemoved = b.RemoveFullRows()
			pass.LinePoints = LineClearPoints(fullRows)
			out.LinesCleared += fullRows
		}

		s.Score += pass.Points()
		r.emit(PhaseCleared, pass, b)

		b.ApplyGravity()
		r.emit(PhaseSettled, pass, b)

		out.Passes = append(out.Passes, pass)
	}

	if out.CascadeDepth > 0 {
		s.Combo++
		s.MaxCombo = max(s.MaxCombo, s.Combo)
		out.ComboBonus = ComboBonus(s.Combo)
		s.Score += out.ComboBonus
	} else {
		s.Combo = 0
	}

	if out.LinesCleared > 0 {
		s.Lines += out.LinesCleared
		s.Level = NextLevel(s.Level, s.Lines)
	}

	out.ScoreDelta = s.Score - startScore
	out.Combo = s.Combo
	out.Level = s.Level
	out.LeveledUp = s.Level > startLevel
	return s, out
}

// Lock merges the piece into the board and resolves the cascade. If any
// block is above row 0 the in-bounds blocks are still written, gameOver is
// true and no cascade runs.
func (r *Resolver) Lock(b *Board, p *Piece, s Session) (next Session, out Outcome, gameOver bool) {
	if b.Merge(p) {
		return s, Outcome{Combo: s.Combo, Level: s.Level}, true
	}
	next, out = r.Resolve(b, s)
	return next, out, false
}

func (r *Resolver) emit(phase Phase, pass Pass, b *Board) {
	if r.observer == nil {
		return
	}
	r.observer(PassEvent{Phase: phase, Pass: pass, Board: b.Clone()})
}

// Resolve runs a cascade with a resolver that has no observer.
func Resolve(b *Board, s Session) (Session, Outcome) {
	return NewResolver().Resolve(b, s)
}

// LockPiece merges a piece and resolves the cascade with a resolver that has no observer.
func LockPiece(b *Board, p *Piece, s Session) (Session, Outcome, bool) {
	return NewResolver().Lock(b, p, s)
}
