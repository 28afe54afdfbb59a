package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ntnucsie/launchdeck/internal/catalog"
	"github.com/ntnucsie/launchdeck/internal/state"
	"github.com/ntnucsie/launchdeck/internal/ui"
	"github.com/ntnucsie/launchdeck/internal/worldmap"
)

// Popup copy
const (
	popupTitle    = "Enter Launch Code"
	popupHint     = "Press <Esc> to exit | <Enter> to launch | <Backspace> to delete"
	codeCorrect   = "Correct Code! Press <Enter> to launch!"
	codeIncorrect = "Incorrect Code!"
)

// Layout constants
const (
	minWidth     = 60
	logRows      = 10
	chartRows    = 8
	packetRows   = 3
	launcherRows = 20
)

// View renders the application
func (m *Model) View() string {
	width := m.width
	if width < minWidth {
		width = minWidth
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader(width))
	sb.WriteString("\n")

	var body string
	switch m.state.TabIndex() {
	case state.TabLaunch:
		body = m.renderLaunchTab(width)
	default:
		body = m.renderMonitorTab(width)
	}
	if m.state.Mode() == state.ModeEnteringCode {
		body = overlay(body, m.renderCodePopup(width), width)
	}
	sb.WriteString(body)
	sb.WriteString("\n")

	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m *Model) renderHeader(width int) string {
	active := lipgloss.NewStyle().Foreground(m.theme.Selected).Bold(true).Underline(true)
	inactive := m.theme.PrimaryStyle()
	sep := m.theme.TextDimStyle().Render(" │ ")

	titles := m.state.TabTitles()
	parts := make([]string, len(titles))
	for i, title := range titles {
		if i == m.state.TabIndex() {
			parts[i] = active.Render(title)
		} else {
			parts[i] = inactive.Render(title)
		}
	}
	return ui.Panel(m.theme, m.state.Title(), width, []string{" " + strings.Join(parts, sep)})
}

// =============================================================================
// System Monitor
// =============================================================================

func (m *Model) renderMonitorTab(width int) string {
	var sb strings.Builder
	sb.WriteString(m.renderHealth(width))
	sb.WriteString("\n")

	left := width * 2 / 5
	right := width - left - 1
	sb.WriteString(ui.JoinColumns(1,
		m.renderTasks(left)+"\n"+m.renderLogs(left),
		m.renderSignals(right),
	))
	sb.WriteString("\n")

	sb.WriteString(m.renderPackets(width))
	return sb.String()
}

func (m *Model) renderHealth(width int) string {
	inner := width - 2
	label := m.theme.SecondaryStyle()
	labelWidth := 28
	barWidth := inner - labelWidth - 6
	if barWidth < 1 {
		barWidth = 1
	}

	gauge := ui.NewGauge(m.theme, barWidth)
	progress := ui.NewProgress(m.theme, barWidth)
	spark := ui.NewSparkline(m.theme, inner-labelWidth, 100)

	lines := []string{
		ui.PadRight(label.Render(" Core Stress:"), labelWidth) + gauge.Render(m.state.Power()/state.PowerMax),
		ui.PadRight(label.Render(" Launch Sequence:"), labelWidth) + progress.Render(m.state.Progress()),
		ui.PadRight(label.Render(" Broadcast Signal Strength:"), labelWidth) + spark.Render(m.state.SignalStrength()),
	}
	return ui.Panel(m.theme, "System Health", width, lines)
}

func (m *Model) renderTasks(width int) string {
	cursor, selected := m.state.TaskCursor()
	tasks := m.state.Tasks()

	lines := make([]string, 0, len(tasks))
	for i, task := range tasks {
		if selected && i == cursor {
			lines = append(lines, m.theme.SelectedStyle().Render("> "+task))
		} else {
			lines = append(lines, m.theme.TextStyle().Render("  "+task))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, m.theme.TextDimStyle().Render("  no tasks"))
	}
	return ui.Panel(m.theme, "Tasks", width, lines)
}

func (m *Model) renderLogs(width int) string {
	logs := m.state.Logs()
	cursor, selected := m.state.LogCursor()

	n := len(logs)
	if n > logRows {
		n = logRows
	}
	lines := make([]string, 0, logRows)
	for i := 0; i < n; i++ {
		entry := logs[i]
		level := m.theme.SeverityStyle(entry.Severity).Render(fmt.Sprintf("%-9s", entry.Severity))
		msg := entry.Message
		if selected && i == cursor {
			msg = m.theme.SelectedStyle().Render(msg)
		}
		lines = append(lines, level+msg)
	}
	for len(lines) < logRows {
		lines = append(lines, "")
	}
	return ui.Panel(m.theme, "System Message", width, lines)
}

func (m *Model) renderSignals(width int) string {
	chart := ui.NewChart(m.theme, width-8, chartRows, m.state.TimeAxis(), [2]float64{-20, 20})
	series := []ui.Series{
		{Name: "CS Wave", Points: m.state.WaveA(), Color: m.theme.WaveA},
		{Name: "IE Wave", Points: m.state.WaveB(), Color: m.theme.WaveB},
	}

	axis := m.theme.TextDimStyle()
	plot := chart.Render(series...)
	lines := make([]string, 0, len(plot)+3)
	lines = append(lines, " "+chart.Legend(series...))
	for i, row := range plot {
		y := "     "
		switch i {
		case 0:
			y = "  20 "
		case len(plot) / 2:
			y = "   0 "
		case len(plot) - 1:
			y = " -20 "
		}
		lines = append(lines, axis.Render(y)+"│"+row)
	}
	lines = append(lines, axis.Render("     └"+strings.Repeat("─", chart.Width)))
	lines = append(lines, "      "+chart.AxisLabels())

	// Match the left column height so both panels line up
	rows := len(m.state.Tasks()) + logRows + 2
	if len(m.state.Tasks()) == 0 {
		rows++
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return ui.Panel(m.theme, "Signals", width, lines)
}

func (m *Model) renderPackets(width int) string {
	chart := ui.NewBarChart(m.theme, width-2, packetRows)
	return ui.Panel(m.theme, "Packets", width, chart.Render(m.state.Packets()))
}

// =============================================================================
// Launch Missile
// =============================================================================

func (m *Model) renderLaunchTab(width int) string {
	left := width * 3 / 10
	if left < 36 {
		left = 36
	}
	right := width - left - 1

	table := m.renderLaunchers(left)
	rows := strings.Count(table, "\n") - 1

	mapLines := worldmap.Draw(m.theme, right-2, rows, m.state.Launchers(), m.state.LaunchConfirmed())
	return ui.JoinColumns(1, table, ui.Panel(m.theme, "World Map", right, mapLines))
}

func (m *Model) renderLaunchers(width int) string {
	header := m.theme.SecondaryStyle().Bold(true)
	lines := []string{
		header.Render(fmt.Sprintf("%-14s %-9s %s", "Launcher", "Location", "Status")),
		"",
	}

	launchers := m.state.Launchers()
	for i, l := range launchers {
		if i == launcherRows {
			more := fmt.Sprintf("… %d more", len(launchers)-launcherRows)
			lines = append(lines, m.theme.TextDimStyle().Render(more))
			break
		}
		lines = append(lines, m.launcherRow(l))
	}
	for len(lines) < launcherRows+3 {
		lines = append(lines, "")
	}
	return ui.Panel(m.theme, "Launchers", width, lines)
}

func (m *Model) launcherRow(l catalog.Launcher) string {
	style := m.theme.StatusStyle(l.Status)
	if !l.IsUp() {
		style = style.Strikethrough(true).Blink(true)
	}
	return style.Render(fmt.Sprintf("%-14s %-9s %s", l.Name, l.Location, l.Status))
}

// =============================================================================
// Code entry popup
// =============================================================================

func (m *Model) renderCodePopup(width int) string {
	w := width * 3 / 5
	if hint := ansi.StringWidth(popupHint) + 4; w < hint {
		w = hint
	}
	if w > width {
		w = width
	}
	inner := w - 2

	hint := lipgloss.NewStyle().Foreground(m.theme.Text).Italic(true)
	code := lipgloss.NewStyle().Foreground(m.theme.Selected).Bold(true)

	verdict := lipgloss.NewStyle().Foreground(m.theme.Critical).Render(codeIncorrect)
	if m.state.CodeMatches() {
		verdict = lipgloss.NewStyle().Foreground(m.theme.Up).Render(codeCorrect)
	}

	lines := []string{
		center(hint.Render(popupHint), inner),
		"",
		center(code.Render(" "+m.state.PendingCode()+" "), inner),
		"",
		center(verdict, inner),
	}
	return ui.Panel(m.theme, popupTitle, w, lines)
}

func center(s string, width int) string {
	pad := (width - ansi.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// overlay draws popup over the vertical middle of base, horizontally centred
func overlay(base, popup string, width int) string {
	baseLines := strings.Split(base, "\n")
	popLines := strings.Split(popup, "\n")

	top := (len(baseLines) - len(popLines)) / 2
	if top < 0 {
		top = 0
	}
	left := (width - ansi.StringWidth(popLines[0])) / 2
	if left < 0 {
		left = 0
	}

	for i, pl := range popLines {
		row := top + i
		if row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		baseLines[row] = ui.PadRight(baseLines[row], left) + pl
	}
	return strings.Join(baseLines, "\n")
}

// =============================================================================
// Footer
// =============================================================================

func (m *Model) renderFooter() string {
	var helpView string
	if m.state.Mode() == state.ModeEnteringCode {
		helpView = m.help.View(m.entryKeys)
	} else {
		helpView = m.help.View(m.normalKeys)
	}

	status := m.theme.TextDimStyle().Render(fmt.Sprintf(" mode: %s  tick: %d ", m.state.Mode(), m.state.TickCount()))
	if m.state.LaunchConfirmed() {
		status += lipgloss.NewStyle().Foreground(m.theme.Critical).Bold(true).Render(" LAUNCHED ")
	}
	if m.notification != "" {
		status += lipgloss.NewStyle().Foreground(m.theme.Selected).Bold(true).Render(" " + m.notification)
	}
	return status + "\n " + helpView
}
