package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chroma-cascade/internal/core"
)

// palette maps core colors to terminal colors. Block colors use the
// 256-color cube so they stay distinct on dark and light backgrounds.
var palette = map[core.Color]lipgloss.TerminalColor{
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("77"),
	core.ColorYellow:      lipgloss.Color("220"),
	core.ColorBlue:        lipgloss.Color("33"),
	core.ColorMagenta:     lipgloss.Color("5"),
	core.ColorCyan:        lipgloss.Color("6"),
	core.ColorWhite:       lipgloss.Color("7"),
	core.ColorOrange:      lipgloss.Color("208"),
	core.ColorGray:        lipgloss.Color("245"),
	core.ColorPink:        lipgloss.Color("205"),
	core.ColorPurple:      lipgloss.Color("135"),
	core.ColorCrimson:     lipgloss.Color("160"),
	core.ColorBrightWhite: lipgloss.Color("15"),
	core.ColorDim:         lipgloss.Color("238"),
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, tc := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(tc)
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.At(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.At(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
