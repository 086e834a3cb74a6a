package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"
)

func TestResolveStableBoard(t *testing.T) {
	b := mustBoard(t,
		"....",
		"P...",
		"PB.G",
	)
	before := b.Clone()

	s := engine.Session{Score: 40, Lines: 3, Level: 2, Combo: 3, MaxCombo: 3}
	next, out := engine.Resolve(b, s)

	assert.True(t, before.Equal(b))
	assert.Zero(t, out.CascadeDepth)
	assert.Zero(t, out.ScoreDelta)
	assert.Empty(t, out.Passes)
	assert.Equal(t, 40, next.Score)
	assert.Equal(t, 3, next.Lines)
	assert.Equal(t, 2, next.Level)
	assert.Zero(t, next.Combo, "a lock without clears resets the combo")
	assert.Equal(t, 3, next.MaxCombo)
}

func TestResolveIdempotent(t *testing.T) {
	b := mustBoard(t,
		"B.....",
		".BB...",
		"PPPP..",
	)
	s, first := engine.Resolve(b, engine.NewSession(1))
	require.Positive(t, first.CascadeDepth)

	settled := b.Clone()
	s2, second := engine.Resolve(b, s)
	assert.True(t, settled.Equal(b))
	assert.Zero(t, second.CascadeDepth)
	assert.Equal(t, s.Score, s2.Score)
}

func TestResolveChainScoring(t *testing.T) {
	// Four pinks clear at depth 1 (250), then the blues fall into a row
	// of three and clear at depth 2 (100*2).
	b := mustBoard(t,
		"B.....",
		".BB...",
		"PPPP..",
	)
	s, out := engine.Resolve(b, engine.NewSession(1))

	require.Len(t, out.Passes, 2)
	assert.Equal(t, 2, out.CascadeDepth)
	assert.Equal(t, 4, out.Passes[0].MatchSize())
	assert.Equal(t, 250, out.Passes[0].MatchPoints)
	assert.Equal(t, 3, out.Passes[1].MatchSize())
	assert.Equal(t, 200, out.Passes[1].MatchPoints)
	assert.Equal(t, 450, out.ScoreDelta)
	assert.Equal(t, 450, s.Score)
	assert.Equal(t, 1, s.Combo)
	assert.Zero(t, out.ComboBonus)
	assert.Zero(t, b.FilledCount())
}

func TestResolveRunOfFive(t *testing.T) {
	b := mustBoard(t,
		"......",
		"GGGGG.",
	)
	_, out := engine.Resolve(b, engine.NewSession(1))
	require.Len(t, out.Passes, 1)
	assert.Equal(t, 5, out.Passes[0].MatchSize())
	assert.Equal(t, 500, out.ScoreDelta)
}

func TestResolveCombo(t *testing.T) {
	b := mustBoard(t,
		"....",
		"YYY.",
	)
	s := engine.Session{Level: 1, Combo: 1, MaxCombo: 1}
	s, out := engine.Resolve(b, s)

	assert.Equal(t, 2, s.Combo)
	assert.Equal(t, 2, s.MaxCombo)
	assert.Equal(t, 100, out.ComboBonus)
	assert.Equal(t, 200, out.ScoreDelta)
	assert.Equal(t, 200, s.Score)

	s, out = engine.Resolve(b, s)
	assert.Zero(t, s.Combo)
	assert.Equal(t, 2, s.MaxCombo)
	assert.Zero(t, out.ComboBonus)
}

func TestResolveLinesCountedBeforeMatchClear(t *testing.T) {
	// The row is full at the start of the pass, so it scores as a line even
	// though clearing the pink run leaves it incomplete.
	b := mustBoard(t,
		"..........",
		"PPPBGYBGYB",
	)
	s, out := engine.Resolve(b, engine.NewSession(1))

	require.Len(t, out.Passes, 1)
	p := out.Passes[0]
	assert.Equal(t, 3, p.MatchSize())
	assert.Equal(t, 1, p.FullRows)
	assert.Zero(t, p.RowsRemoved)
	assert.Equal(t, 100, p.LinePoints)
	assert.Equal(t, 200, out.ScoreDelta)
	assert.Equal(t, 1, s.Lines)
	assert.Equal(t, "...BGYBGYB", b.Rows()[1])
}

func TestLockPieceLineClear(t *testing.T) {
	b := engine.NewBoard(10, 20)
	for col, c := range []engine.Color{
		engine.ColorPink, engine.ColorBlue, engine.ColorGreen, engine.ColorYellow,
		engine.ColorPink, engine.ColorBlue, engine.ColorGreen, engine.ColorYellow,
	} {
		b.Set(19, col, c)
	}
	p := engine.NewPiece(engine.ShapeO,
		engine.ColorBlue, engine.ColorGreen,
		engine.ColorOrange, engine.ColorPurple,
	)
	p.X, p.Y = 7, 17

	s := engine.Session{Level: 1, Lines: 9}
	s, out, gameOver := engine.LockPiece(b, p, s)

	require.False(t, gameOver)
	assert.Equal(t, 1, out.LinesCleared)
	assert.Equal(t, 100, out.ScoreDelta)
	assert.Equal(t, 10, s.Lines)
	assert.Equal(t, 2, s.Level)
	assert.True(t, out.LeveledUp)
	assert.Equal(t, "........BG", b.Rows()[19])
	assert.Equal(t, 2, b.FilledCount())
}

func TestLockPieceAboveTop(t *testing.T) {
	b := engine.NewBoard(10, 20)
	// A ready match on the floor: if the resolver ran, it would be cleared.
	for col := range 3 {
		b.Set(19, col, engine.ColorBlue)
	}
	p := engine.NewPiece(engine.ShapeI, engine.ColorGreen)
	p.Y = -2 // mask row 1 lands on board row -1

	s := engine.NewSession(1)
	next, out, gameOver := engine.LockPiece(b, p, s)
	assert.True(t, gameOver)
	assert.Equal(t, s, next)
	assert.Zero(t, out.CascadeDepth)
	assert.Equal(t, 3, b.FilledCount())
}

func TestLockPiecePartiallyAboveTop(t *testing.T) {
	b := engine.NewBoard(10, 20)
	p := engine.NewPiece(engine.ShapeO, engine.ColorPink)
	p.Y = -2
	_, _, gameOver := engine.LockPiece(b, p, engine.NewSession(1))
	assert.True(t, gameOver)
	assert.Equal(t, 2, b.FilledCount(), "in-bounds cells are still written")
}

func TestResolveObserver(t *testing.T) {
	b := mustBoard(t,
		"B.....",
		".BB...",
		"PPPP..",
	)
	var events []engine.PassEvent
	r := engine.NewResolver(engine.WithObserver(func(ev engine.PassEvent) {
		events = append(events, ev)
	}))
	_, out := r.Resolve(b, engine.NewSession(1))

	require.Len(t, events, 2*len(out.Passes))
	assert.Equal(t, engine.PhaseCleared, events[0].Phase)
	assert.Equal(t, engine.PhaseSettled, events[1].Phase)
	assert.Equal(t, 1, events[0].Pass.Depth)
	assert.Equal(t, 2, events[2].Pass.Depth)

	// Cleared snapshot still has the floating blues; settled one has them on the floor.
	assert.Equal(t, []string{"B.....", ".BB...", "......"}, events[0].Board.Rows())
	assert.Equal(t, []string{"......", "......", "BBB..."}, events[1].Board.Rows())

	// Snapshots are independent of the live board.
	assert.False(t, events[1].Board.Equal(b))
	assert.Equal(t, engine.StateIdle, r.State())
}

func TestResolveReentryPanics(t *testing.T) {
	b := mustBoard(t, "PPP")
	var r *engine.Resolver
	r = engine.NewResolver(engine.WithObserver(func(ev engine.PassEvent) {
		r.Resolve(ev.Board, engine.NewSession(1))
	}))
	assert.Panics(t, func() { r.Resolve(b, engine.NewSession(1)) })
	assert.Equal(t, engine.StateIdle, r.State())
}

func TestResolveTerminatesOnRandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	palette := engine.Palette(1)
	for i := range 200 {
		w, h := 4+rng.Intn(7), 4+rng.Intn(13)
		b := engine.NewBoard(w, h)
		for row := range h {
			for col := range w {
				if rng.Intn(3) > 0 {
					b.Set(row, col, palette[rng.Intn(len(palette))])
				}
			}
		}

		_, out := engine.Resolve(b, engine.NewSession(1))
		assert.LessOrEqual(t, len(out.Passes), w*h, "board %d", i)
		assert.True(t, engine.FindMatches(b).Empty(), "board %d has matches left", i)
		assert.Zero(t, engine.CountFullRows(b), "board %d has full rows left", i)
		if out.CascadeDepth > 0 {
			assert.False(t, b.Clone().ApplyGravity(), "board %d not settled", i)
		}
	}
}
