package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ntnucsie/launchdeck/internal/theme"
)

// Progress is a thin progress bar with a trailing percentage
type Progress struct {
	Width int
	Theme *theme.Theme
}

// NewProgress creates a progress bar
func NewProgress(t *theme.Theme, width int) *Progress {
	return &Progress{Width: width, Theme: t}
}

// Render renders the bar at ratio (0.0-1.0)
func (p *Progress) Render(ratio float64) string {
	ratio = clamp01(ratio)
	if p.Width <= 0 {
		return Percent(ratio)
	}
	filled := int(ratio * float64(p.Width))

	fill := lipgloss.NewStyle().Foreground(p.Theme.PrimaryBright)
	rest := lipgloss.NewStyle().Foreground(p.Theme.PrimaryDim)
	text := lipgloss.NewStyle().Foreground(p.Theme.Text)

	return fill.Render(strings.Repeat("━", filled)) +
		rest.Render(strings.Repeat("─", p.Width-filled)) +
		" " + text.Render(Percent(ratio))
}
