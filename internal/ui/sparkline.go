package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ntnucsie/launchdeck/internal/theme"
)

var sparkLevels = []rune(" ▁▂▃▄▅▆▇█")

// Sparkline renders the most recent samples of a series as block glyphs
type Sparkline struct {
	Width int
	// Max is the value drawn as a full block. Zero scales to the visible maximum.
	Max   uint64
	Theme *theme.Theme
}

// NewSparkline creates a sparkline
func NewSparkline(t *theme.Theme, width int, max uint64) *Sparkline {
	return &Sparkline{Width: width, Max: max, Theme: t}
}

// Render draws the last Width samples, right aligned
func (s *Sparkline) Render(data []uint64) string {
	if s.Width <= 0 {
		return ""
	}
	if len(data) > s.Width {
		data = data[len(data)-s.Width:]
	}

	max := s.Max
	if max == 0 {
		for _, v := range data {
			if v > max {
				max = v
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", s.Width-len(data)))
	for _, v := range data {
		sb.WriteRune(sparkGlyph(v, max))
	}
	return lipgloss.NewStyle().Foreground(s.Theme.Sparkline).Render(sb.String())
}

func sparkGlyph(v, max uint64) rune {
	if max == 0 {
		return sparkLevels[0]
	}
	if v > max {
		v = max
	}
	top := uint64(len(sparkLevels) - 1)
	return sparkLevels[(v*top+max/2)/max]
}
