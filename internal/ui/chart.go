package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ntnucsie/launchdeck/internal/signal"
	"github.com/ntnucsie/launchdeck/internal/theme"
)

// Series is one named line on a chart
type Series struct {
	Name   string
	Points []signal.Point
	Color  lipgloss.Color
}

// Chart plots series on a braille canvas. Each cell holds a 2x4 dot matrix.
type Chart struct {
	Width   int
	Height  int
	XBounds [2]float64
	YBounds [2]float64
	Theme   *theme.Theme
}

// NewChart creates a chart with the given bounds
func NewChart(t *theme.Theme, width, height int, x, y [2]float64) *Chart {
	return &Chart{
		Width:   width,
		Height:  height,
		XBounds: x,
		YBounds: y,
		Theme:   t,
	}
}

// braille dot bits indexed by [row][col] within a cell
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type brailleCell struct {
	bits  rune
	color lipgloss.Color
}

// Dot maps a point to canvas dot coordinates. ok is false for points outside the bounds.
func (c *Chart) Dot(p signal.Point) (dx, dy int, ok bool) {
	xs := c.XBounds[1] - c.XBounds[0]
	ys := c.YBounds[1] - c.YBounds[0]
	if xs <= 0 || ys <= 0 || c.Width <= 0 || c.Height <= 0 {
		return 0, 0, false
	}
	if p.X < c.XBounds[0] || p.X > c.XBounds[1] || p.Y < c.YBounds[0] || p.Y > c.YBounds[1] {
		return 0, 0, false
	}
	w := c.Width*2 - 1
	h := c.Height*4 - 1
	dx = int(math.Round((p.X - c.XBounds[0]) / xs * float64(w)))
	dy = h - int(math.Round((p.Y-c.YBounds[0])/ys*float64(h)))
	return dx, dy, true
}

// Render draws every series, later series over earlier ones, and returns one
// string per row
func (c *Chart) Render(series ...Series) []string {
	if c.Width <= 0 || c.Height <= 0 {
		return nil
	}
	grid := make([][]brailleCell, c.Height)
	for i := range grid {
		grid[i] = make([]brailleCell, c.Width)
	}

	for _, s := range series {
		for _, p := range s.Points {
			dx, dy, ok := c.Dot(p)
			if !ok {
				continue
			}
			cell := &grid[dy/4][dx/2]
			cell.bits |= brailleDots[dy%4][dx%2]
			cell.color = s.Color
		}
	}

	lines := make([]string, c.Height)
	for row := range grid {
		var sb strings.Builder
		for _, cell := range grid[row] {
			if cell.bits == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(cell.color).Render(string(0x2800 + cell.bits)))
		}
		lines[row] = sb.String()
	}
	return lines
}

// Legend renders series names in their colors
func (c *Chart) Legend(series ...Series) string {
	parts := make([]string, 0, len(series))
	for _, s := range series {
		parts = append(parts, lipgloss.NewStyle().Foreground(s.Color).Render("• "+s.Name))
	}
	return strings.Join(parts, "  ")
}

// AxisLabels renders the x bounds as a line the width of the chart
func (c *Chart) AxisLabels() string {
	lo := fmt.Sprintf("%.0f", c.XBounds[0])
	hi := fmt.Sprintf("%.0f", c.XBounds[1])
	pad := c.Width - len(lo) - len(hi)
	if pad < 1 {
		pad = 1
	}
	return lipgloss.NewStyle().Foreground(c.Theme.TextDim).Render(lo + strings.Repeat(" ", pad) + hi)
}
