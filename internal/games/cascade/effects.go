package cascade

import "github.com/vovakirdan/chroma-cascade/internal/games/cascade/engine"

// Particle tuning, in board cells and ticks.
const (
	particlesPerCell = 8
	particleSpeed    = 0.1  // Velocity components are in [-2, 2) * particleSpeed
	particleGravity  = 0.02 // Added to VY every tick
	particleDecay    = 0.02 // Subtracted from Life every tick
	popupRise        = 0.05 // Rows per tick
	maxPopups        = 4
)

// Particle is a short-lived spark thrown from a cleared cell.
// Particles are cosmetic and never affect the board.
type Particle struct {
	X, Y   float64 // Board coordinates, cell units
	VX, VY float64
	Life   float64 // 1 at birth, removed at 0
	Color  engine.Color
}

// Popup is a floating score label.
type Popup struct {
	Text  string
	Y     float64 // Rows above the well center
	Ticks int     // Remaining lifetime
}

// burst spawns particles at the center of a board cell.
func (g *Game) burst(col, row int, c engine.Color) {
	for range particlesPerCell {
		g.particles = append(g.particles, Particle{
			X:     float64(col) + 0.5,
			Y:     float64(row) + 0.5,
			VX:    (g.rng.Float64() - 0.5) * 4 * particleSpeed,
			VY:    (g.rng.Float64() - 0.5) * 4 * particleSpeed,
			Life:  1,
			Color: c,
		})
	}
}

func (g *Game) addPopup(text string) {
	ticks := g.durationTicksMS(g.cfg.Timing.PopupMS)
	if ticks <= 0 {
		return
	}
	g.popups = append(g.popups, Popup{Text: text, Ticks: ticks})
	if len(g.popups) > maxPopups {
		g.popups = g.popups[len(g.popups)-maxPopups:]
	}
}

// updateEffects advances particles and popups by one tick.
func (g *Game) updateEffects() {
	alive := g.particles[:0]
	for _, p := range g.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += particleGravity
		p.Life -= particleDecay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	g.particles = alive

	popups := g.popups[:0]
	for _, p := range g.popups {
		p.Ticks--
		p.Y += popupRise
		if p.Ticks > 0 {
			popups = append(popups, p)
		}
	}
	g.popups = popups
}

// Particles returns the live particles.
func (g *Game) Particles() []Particle {
	return g.particles
}

// Popups returns the live score popups, oldest first.
func (g *Game) Popups() []Popup {
	return g.popups
}
