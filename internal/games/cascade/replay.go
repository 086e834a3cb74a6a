package cascade

import (
	"fmt"

	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"
)

// frame is one resolver checkpoint waiting to be shown.
type frame struct {
	phase engine.Phase
	pass  engine.Pass
	board *engine.Board
}

// replay paces the checkpoints of a resolved cascade. The board is already
// settled when the replay starts; only the display lags behind.
type replay struct {
	active  bool
	frames  []frame
	idx     int
	wait    int // Ticks left on the current frame
	outcome engine.Outcome
}

// record is the resolver observer.
func (g *Game) record(ev engine.PassEvent) {
	g.replay.frames = append(g.replay.frames, frame{
		phase: ev.Phase,
		pass:  ev.Pass,
		board: ev.Board,
	})
}

func (g *Game) startReplay(out engine.Outcome) {
	g.replay.outcome = out
	g.replay.active = true
	g.replay.idx = -1
	g.replay.wait = 0
	g.advanceReplay()
}

// advanceReplay moves past every frame whose pause has elapsed. Zero-length
// pauses are consumed in the same call.
func (g *Game) advanceReplay() {
	for g.replay.wait <= 0 {
		g.replay.idx++
		if g.replay.idx >= len(g.replay.frames) {
			g.finishReplay()
			return
		}
		g.showFrame(g.replay.frames[g.replay.idx])
	}
}

func (g *Game) showFrame(f frame) {
	switch f.phase {
	case engine.PhaseCleared:
		g.replay.wait = g.durationTicksMS(g.cfg.Timing.ClearPauseMS)
		g.shownScore += f.pass.Points()
		if pts := f.pass.Points(); pts > 0 {
			g.addPopup(fmt.Sprintf("+%d", pts))
		}
		if g.cfg.Gameplay.Particles {
			for _, c := range f.pass.Cleared {
				g.burst(c.Col, c.Row, c.Color)
			}
		}
	case engine.PhaseSettled:
		g.replay.wait = g.durationTicksMS(g.cfg.Timing.SettlePauseMS)
	}
}

func (g *Game) finishReplay() {
	out := g.replay.outcome
	g.replay = replay{}
	g.shownScore = g.session.Score
	if out.ComboBonus > 0 {
		g.addPopup(fmt.Sprintf("COMBO x%d", out.Combo))
	}
	g.spawn()
}

// displayBoard returns the board to draw: the current checkpoint while
// replaying, the settled board otherwise.
func (g *Game) displayBoard() *engine.Board {
	if g.replay.active && g.replay.idx >= 0 && g.replay.idx < len(g.replay.frames) {
		return g.replay.frames[g.replay.idx].board
	}
	return g.board
}
