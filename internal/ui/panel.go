package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ntnucsie/launchdeck/internal/theme"
)

// Panel frames lines in a double-line box with a title in the top border.
// width is the outer width. Lines wider than the interior are truncated.
func Panel(t *theme.Theme, title string, width int, lines []string) string {
	if width < 4 {
		width = 4
	}
	inner := width - 2
	border := lipgloss.NewStyle().Foreground(t.Border)
	heading := lipgloss.NewStyle().Foreground(t.SecondaryBright).Bold(true)

	var sb strings.Builder
	sb.WriteString(border.Render("╔═"))
	used := 1
	if title != "" {
		title = ansi.Truncate(" "+title+" ", inner-1, "…")
		sb.WriteString(heading.Render(title))
		used += ansi.StringWidth(title)
	}
	if rest := inner - used; rest > 0 {
		sb.WriteString(border.Render(strings.Repeat("═", rest)))
	}
	sb.WriteString(border.Render("╗"))

	for _, line := range lines {
		sb.WriteString("\n")
		sb.WriteString(border.Render("║"))
		sb.WriteString(PadRight(line, inner))
		sb.WriteString(border.Render("║"))
	}

	sb.WriteString("\n")
	sb.WriteString(border.Render("╚" + strings.Repeat("═", inner) + "╝"))
	return sb.String()
}

// PadRight truncates or pads a styled string to exactly width cells
func PadRight(s string, width int) string {
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// JoinColumns places blocks side by side separated by gap spaces. Short
// blocks are padded with blank rows.
func JoinColumns(gap int, blocks ...string) string {
	split := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	rows := 0
	for i, b := range blocks {
		split[i] = strings.Split(b, "\n")
		for _, l := range split[i] {
			if w := ansi.StringWidth(l); w > widths[i] {
				widths[i] = w
			}
		}
		if len(split[i]) > rows {
			rows = len(split[i])
		}
	}

	sep := strings.Repeat(" ", gap)
	out := make([]string, rows)
	for r := 0; r < rows; r++ {
		var sb strings.Builder
		for i := range split {
			if i > 0 {
				sb.WriteString(sep)
			}
			line := ""
			if r < len(split[i]) {
				line = split[i][r]
			}
			if i < len(split)-1 {
				line = PadRight(line, widths[i])
			}
			sb.WriteString(line)
		}
		out[r] = sb.String()
	}
	return strings.Join(out, "\n")
}
