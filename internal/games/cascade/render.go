package cascade

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/chroma-cascade/internal/core"
	"github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"
)

// Glyphs for one board cell (cellWidth runes each).
const (
	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'
)

// cellColor maps a block color to a terminal color.
func cellColor(c engine.Color) core.Color {
	switch c {
	case engine.ColorPink:
		return core.ColorPink
	case engine.ColorBlue:
		return core.ColorBlue
	case engine.ColorGreen:
		return core.ColorGreen
	case engine.ColorYellow:
		return core.ColorYellow
	case engine.ColorOrange:
		return core.ColorOrange
	case engine.ColorPurple:
		return core.ColorPurple
	case engine.ColorCrimson:
		return core.ColorCrimson
	default:
		return core.ColorDim
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	wellW := g.board.Width()*cellWidth + 2
	wellH := g.board.Height() + 2
	left := (g.screenW - (wellW + panelWidth*2)) / 2
	top := max((g.screenH-wellH)/2, 0)
	well := core.NewRect(left+panelWidth, top, wellW, wellH)

	g.renderWell(dst, well)
	g.renderHold(dst, left, top)
	g.renderHUD(dst, left, top+7)
	g.renderNext(dst, well.Right()+1, top)
	g.renderPopups(dst, well)
	g.renderOverlays(dst, well)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderWell draws the border, settled cells, ghost, falling piece and particles.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well, core.ColorGray)
	inner := well.Inner()
	ox, oy := inner.X, inner.Y

	b := g.displayBoard()
	for row := range b.Height() {
		for col := range b.Width() {
			c := b.At(row, col)
			if c.IsEmpty() {
				dst.SetCell(ox+col*cellWidth, oy+row, emptyRune, core.ColorDim)
				continue
			}
			g.drawCell(dst, ox+col*cellWidth, oy+row, blockRune, cellColor(c))
		}
	}

	if g.current != nil && !g.replay.active {
		if g.cfg.Gameplay.GhostEnabled {
			ghost := g.board.Ghost(g.current)
			for _, blk := range ghost.Blocks() {
				if blk.Y >= 0 {
					g.drawCell(dst, ox+blk.X*cellWidth, oy+blk.Y, ghostRune, core.ColorDim)
				}
			}
		}
		for _, blk := range g.current.Blocks() {
			if blk.Y >= 0 {
				g.drawCell(dst, ox+blk.X*cellWidth, oy+blk.Y, blockRune, cellColor(blk.Color))
			}
		}
	}

	for _, p := range g.particles {
		x := ox + int(p.X*cellWidth)
		y := oy + int(p.Y)
		if !inner.Contains(x, y) {
			continue
		}
		r := '·'
		if p.Life > 0.5 {
			r = '*'
		}
		dst.SetCell(x, y, r, cellColor(p.Color))
	}
}

func (g *Game) drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := range cellWidth {
		dst.SetCell(x+i, y, r, c)
	}
}

// drawPreview draws a piece inside a titled 4x4 box.
func (g *Game) drawPreview(dst *core.Screen, x, y int, title string, p *engine.Piece) {
	box := core.NewRect(x, y, engine.PieceSize*cellWidth+2, engine.PieceSize+2)
	dst.DrawBox(box, core.ColorGray)
	dst.DrawText(x+2, y, title)
	if p == nil {
		return
	}
	mask := p.Mask()
	colors := p.Colors()
	for r := range engine.PieceSize {
		for c := range engine.PieceSize {
			if mask[r][c] {
				g.drawCell(dst, x+1+c*cellWidth, y+1+r, blockRune, cellColor(colors[r][c]))
			}
		}
	}
}

func (g *Game) renderHold(dst *core.Screen, x, y int) {
	if !g.cfg.Gameplay.HoldEnabled {
		return
	}
	title := "HOLD"
	if !g.canHold {
		title = "HOLD -"
	}
	g.drawPreview(dst, x+1, y, title, g.held)
}

func (g *Game) renderNext(dst *core.Screen, x, y int) {
	g.drawPreview(dst, x+1, y, "NEXT", g.next)
}

// renderHUD draws the score column.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	best := max(g.highScore, g.shownScore)
	elapsed := g.elapsed().Truncate(time.Second)
	lines := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", g.shownScore)},
		{"BEST", fmt.Sprintf("%d", best)},
		{"LEVEL", fmt.Sprintf("%d", g.session.Level)},
		{"LINES", fmt.Sprintf("%d", g.session.Lines)},
		{"COMBO", fmt.Sprintf("%d", g.session.Combo)},
		{"TIME", fmt.Sprintf("%02d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)},
	}
	for i, l := range lines {
		dst.DrawTextColor(x+1, y+i*2, l.label, core.ColorGray)
		dst.DrawTextColor(x+1, y+i*2+1, l.value, core.ColorBrightWhite)
	}
	switch {
	case g.mode == ModeZen:
		dst.DrawTextColor(x+1, y+len(lines)*2, "ZEN", core.ColorCyan)
	case !g.difficulty.IsEnabled():
		dst.DrawTextColor(x+1, y+len(lines)*2, "FIXED", core.ColorCyan)
	}
}

// renderPopups draws score labels floating over the middle of the well.
func (g *Game) renderPopups(dst *core.Screen, well core.Rect) {
	cx, cy := well.Center()
	for i, p := range g.popups {
		y := cy - int(p.Y) - (len(g.popups) - 1 - i)
		if y <= well.Y {
			continue
		}
		x := cx - utf8.RuneCountInString(p.Text)/2
		dst.DrawTextColor(x, y, p.Text, core.ColorYellow)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	cx, cy := well.Center()

	if g.paused {
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		g.drawOverlay(dst, cx, cy,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.session.Score),
			fmt.Sprintf("Lines: %d  Level: %d", g.session.Lines, g.session.Level),
			fmt.Sprintf("Best combo: %d", g.session.MaxCombo),
			"Press R to restart",
		)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.CenteredRect(centerX, centerY, maxLen+4, len(lines)+2)
	dst.ClearRect(box)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↑/X: Rotate | Z: Rotate CCW | ↓: Soft drop | Space: Hard drop | C: Hold | P: Pause | Q: Quit"
}
