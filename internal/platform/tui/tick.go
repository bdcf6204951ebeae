// Package tui runs Neon Velocity in a terminal through Bubble Tea.
// The game draws onto a character screen at CellW×CellH world pixels per
// cell; the HUD and key help are rendered as separate bars.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// The model measures real elapsed time, so a late tick only means a longer step.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
