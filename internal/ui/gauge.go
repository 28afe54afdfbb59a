// Package ui provides the dashboard widgets. Every widget renders to plain
// strings styled with lipgloss; layout is left to the caller.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ntnucsie/launchdeck/internal/theme"
)

// Gauge is a horizontal zoned meter with a percentage readout
type Gauge struct {
	Width    int
	LowZone  float64 // Fraction where the calm zone ends (0.0-1.0)
	HighZone float64 // Fraction where the warning zone ends (0.0-1.0)
	Theme    *theme.Theme
}

// NewGauge creates a gauge with default zones
func NewGauge(t *theme.Theme, width int) *Gauge {
	return &Gauge{
		Width:    width,
		LowZone:  0.6,
		HighZone: 0.8,
		Theme:    t,
	}
}

// Render renders the gauge at level (0.0-1.0) followed by the percentage
func (g *Gauge) Render(level float64) string {
	level = clamp01(level)
	return g.bar(level) + " " + lipgloss.NewStyle().Foreground(g.Theme.Text).Render(Percent(level))
}

func (g *Gauge) bar(level float64) string {
	if g.Width <= 0 {
		return ""
	}
	filled := int(level * float64(g.Width))
	if filled > g.Width {
		filled = g.Width
	}

	calm := lipgloss.NewStyle().Foreground(g.Theme.Gauge)
	warn := lipgloss.NewStyle().Foreground(g.Theme.Warning)
	hot := lipgloss.NewStyle().Foreground(g.Theme.Critical)
	dim := lipgloss.NewStyle().Foreground(g.Theme.TextDim)

	lowEnd := int(g.LowZone * float64(g.Width))
	highEnd := int(g.HighZone * float64(g.Width))

	var sb strings.Builder
	for i := 0; i < g.Width; i++ {
		switch {
		case i >= filled:
			sb.WriteString(dim.Render("░"))
		case i < lowEnd:
			sb.WriteString(calm.Render("█"))
		case i < highEnd:
			sb.WriteString(warn.Render("█"))
		default:
			sb.WriteString(hot.Render("█"))
		}
	}
	return sb.String()
}

// Percent formats a 0.0-1.0 ratio as a whole percentage
func Percent(ratio float64) string {
	return fmt.Sprintf("%3d%%", int(clamp01(ratio)*100))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
