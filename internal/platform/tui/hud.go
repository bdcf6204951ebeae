package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-velocity/internal/game/velocity"
)

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	hudPauseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

// RenderHUD formats the HUD as a single line no wider than width.
func RenderHUD(h velocity.HUD, width int) string {
	parts := make([]string, 0, 7)
	for _, f := range h.Fields() {
		parts = append(parts, hudLabelStyle.Render(f[0]+" ")+hudValueStyle.Render(f[1]))
	}
	if h.Paused {
		parts = append(parts, hudPauseStyle.Render("PAUSED"))
	}

	line := strings.Join(parts, "  ")
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
