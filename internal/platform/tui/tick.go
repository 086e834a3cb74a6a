// Package tui provides the Bubble Tea integration for Chroma Cascade.
// It handles the terminal UI loop, input mapping, menus and SSH hosting.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID identifies the
// game model that scheduled it, so a model ignores ticks left over from a
// previous run in the same program.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

var lastTickID atomic.Uint64

// nextTickID returns a fresh tick loop identifier.
func nextTickID() uint64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
