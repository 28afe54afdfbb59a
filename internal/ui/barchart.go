package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ntnucsie/launchdeck/internal/catalog"
	"github.com/ntnucsie/launchdeck/internal/theme"
)

// BarChart draws labelled vertical bars, one per packet counter
type BarChart struct {
	Width    int
	Height   int
	BarWidth int
	Gap      int
	Theme    *theme.Theme
}

// NewBarChart creates a bar chart. Height counts the bar rows only; the
// value and label rows are added below.
func NewBarChart(t *theme.Theme, width, height int) *BarChart {
	return &BarChart{
		Width:    width,
		Height:   height,
		BarWidth: 3,
		Gap:      1,
		Theme:    t,
	}
}

// Capacity returns how many bars fit in the chart width
func (b *BarChart) Capacity() int {
	step := b.BarWidth + b.Gap
	if step <= 0 || b.Width < b.BarWidth {
		return 0
	}
	return (b.Width + b.Gap) / step
}

// Render renders as many leading bars as fit
func (b *BarChart) Render(data []catalog.Packet) []string {
	if n := b.Capacity(); len(data) > n {
		data = data[:n]
	}

	var max uint64
	for _, p := range data {
		if p.Count > max {
			max = p.Count
		}
	}

	bar := lipgloss.NewStyle().Foreground(b.Theme.Bar)
	value := lipgloss.NewStyle().Foreground(b.Theme.Text)
	label := lipgloss.NewStyle().Foreground(b.Theme.TextDim)
	gap := strings.Repeat(" ", b.Gap)

	lines := make([]string, 0, b.Height+2)
	for row := 0; row < b.Height; row++ {
		threshold := float64(b.Height-row) / float64(b.Height)
		var sb strings.Builder
		for i, p := range data {
			if i > 0 {
				sb.WriteString(gap)
			}
			if max > 0 && float64(p.Count)/float64(max) >= threshold-1e-9 {
				sb.WriteString(bar.Render(strings.Repeat("█", b.BarWidth)))
			} else {
				sb.WriteString(strings.Repeat(" ", b.BarWidth))
			}
		}
		lines = append(lines, sb.String())
	}

	var values, labels strings.Builder
	for i, p := range data {
		if i > 0 {
			values.WriteString(gap)
			labels.WriteString(gap)
		}
		values.WriteString(value.Render(fit(fmt.Sprint(p.Count), b.BarWidth)))
		labels.WriteString(label.Render(fit(p.Label, b.BarWidth)))
	}
	lines = append(lines, values.String(), labels.String())
	return lines
}

// fit truncates or pads s to exactly width cells
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
