// Package theme provides color schemes for the launch dashboard
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ntnucsie/launchdeck/internal/catalog"
)

// Theme defines a color scheme for the dashboard
type Theme struct {
	Name        string
	Description string

	// Primary colors
	Primary       lipgloss.Color
	PrimaryBright lipgloss.Color
	PrimaryDim    lipgloss.Color

	// Secondary colors
	Secondary       lipgloss.Color
	SecondaryBright lipgloss.Color

	// Log severities
	Info     lipgloss.Color
	Warning  lipgloss.Color
	Error    lipgloss.Color
	Critical lipgloss.Color

	// Launcher status
	Up   lipgloss.Color
	Down lipgloss.Color

	Selected lipgloss.Color

	// UI elements
	Border     lipgloss.Color
	BorderDim  lipgloss.Color
	Text       lipgloss.Color
	TextDim    lipgloss.Color
	Background lipgloss.Color

	// Widgets
	Gauge     lipgloss.Color
	Sparkline lipgloss.Color
	WaveA     lipgloss.Color
	WaveB     lipgloss.Color
	Bar       lipgloss.Color
	Coast     lipgloss.Color
	Satellite lipgloss.Color
}

// themes contains all available theme definitions
var themes = map[string]*Theme{
	"classic": {
		Name:            "Classic Green",
		Description:     "Traditional green phosphor console",
		Primary:         lipgloss.Color("28"),  // green
		PrimaryBright:   lipgloss.Color("46"),  // bright_green
		PrimaryDim:      lipgloss.Color("22"),  // dark_green
		Secondary:       lipgloss.Color("37"),  // cyan
		SecondaryBright: lipgloss.Color("51"),  // bright_cyan
		Info:            lipgloss.Color("37"),  // cyan
		Warning:         lipgloss.Color("226"), // bright_yellow
		Error:           lipgloss.Color("201"), // bright_magenta
		Critical:        lipgloss.Color("196"), // bright_red
		Up:              lipgloss.Color("46"),  // bright_green
		Down:            lipgloss.Color("196"), // bright_red
		Selected:        lipgloss.Color("226"), // bright_yellow
		Border:          lipgloss.Color("28"),  // green
		BorderDim:       lipgloss.Color("22"),  // dark_green
		Text:            lipgloss.Color("46"),  // bright_green
		TextDim:         lipgloss.Color("28"),  // green
		Background:      lipgloss.Color("0"),   // black
		Gauge:           lipgloss.Color("201"), // bright_magenta
		Sparkline:       lipgloss.Color("46"),  // bright_green
		WaveA:           lipgloss.Color("51"),  // bright_cyan
		WaveB:           lipgloss.Color("226"), // bright_yellow
		Bar:             lipgloss.Color("46"),  // bright_green
		Coast:           lipgloss.Color("231"), // white
		Satellite:       lipgloss.Color("226"), // bright_yellow
	},
	"amber": {
		Name:            "Amber",
		Description:     "Vintage amber monochrome console",
		Primary:         lipgloss.Color("178"), // yellow
		PrimaryBright:   lipgloss.Color("226"), // bright_yellow
		PrimaryDim:      lipgloss.Color("130"), // dark_orange
		Secondary:       lipgloss.Color("226"), // bright_yellow
		SecondaryBright: lipgloss.Color("231"), // bright_white
		Info:            lipgloss.Color("178"), // yellow
		Warning:         lipgloss.Color("231"), // bright_white
		Error:           lipgloss.Color("208"), // dark_orange
		Critical:        lipgloss.Color("196"), // bright_red
		Up:              lipgloss.Color("226"), // bright_yellow
		Down:            lipgloss.Color("196"), // bright_red
		Selected:        lipgloss.Color("231"), // bright_white
		Border:          lipgloss.Color("178"), // yellow
		BorderDim:       lipgloss.Color("130"), // dark_orange
		Text:            lipgloss.Color("178"), // yellow
		TextDim:         lipgloss.Color("130"), // dark_orange
		Background:      lipgloss.Color("0"),   // black
		Gauge:           lipgloss.Color("208"), // dark_orange
		Sparkline:       lipgloss.Color("226"), // bright_yellow
		WaveA:           lipgloss.Color("226"), // bright_yellow
		WaveB:           lipgloss.Color("208"), // dark_orange
		Bar:             lipgloss.Color("178"), // yellow
		Coast:           lipgloss.Color("130"), // dark_orange
		Satellite:       lipgloss.Color("231"), // bright_white
	},
	"ice": {
		Name:            "Blue Ice",
		Description:     "Cold blue tactical console",
		Primary:         lipgloss.Color("21"),  // blue
		PrimaryBright:   lipgloss.Color("33"),  // bright_blue
		PrimaryDim:      lipgloss.Color("18"),  // dark_blue
		Secondary:       lipgloss.Color("37"),  // cyan
		SecondaryBright: lipgloss.Color("51"),  // bright_cyan
		Info:            lipgloss.Color("51"),  // bright_cyan
		Warning:         lipgloss.Color("226"), // bright_yellow
		Error:           lipgloss.Color("201"), // bright_magenta
		Critical:        lipgloss.Color("196"), // bright_red
		Up:              lipgloss.Color("51"),  // bright_cyan
		Down:            lipgloss.Color("196"), // bright_red
		Selected:        lipgloss.Color("231"), // bright_white
		Border:          lipgloss.Color("21"),  // blue
		BorderDim:       lipgloss.Color("18"),  // dark_blue
		Text:            lipgloss.Color("33"),  // bright_blue
		TextDim:         lipgloss.Color("21"),  // blue
		Background:      lipgloss.Color("0"),   // black
		Gauge:           lipgloss.Color("33"),  // bright_blue
		Sparkline:       lipgloss.Color("51"),  // bright_cyan
		WaveA:           lipgloss.Color("51"),  // bright_cyan
		WaveB:           lipgloss.Color("231"), // bright_white
		Bar:             lipgloss.Color("33"),  // bright_blue
		Coast:           lipgloss.Color("37"),  // cyan
		Satellite:       lipgloss.Color("231"), // bright_white
	},
	"cyberpunk": {
		Name:            "Cyberpunk",
		Description:     "Neon futuristic console",
		Primary:         lipgloss.Color("165"), // magenta
		PrimaryBright:   lipgloss.Color("201"), // bright_magenta
		PrimaryDim:      lipgloss.Color("90"),  // dark_magenta
		Secondary:       lipgloss.Color("37"),  // cyan
		SecondaryBright: lipgloss.Color("51"),  // bright_cyan
		Info:            lipgloss.Color("51"),  // bright_cyan
		Warning:         lipgloss.Color("226"), // bright_yellow
		Error:           lipgloss.Color("201"), // bright_magenta
		Critical:        lipgloss.Color("196"), // bright_red
		Up:              lipgloss.Color("51"),  // bright_cyan
		Down:            lipgloss.Color("196"), // bright_red
		Selected:        lipgloss.Color("231"), // bright_white
		Border:          lipgloss.Color("201"), // bright_magenta
		BorderDim:       lipgloss.Color("165"), // magenta
		Text:            lipgloss.Color("51"),  // bright_cyan
		TextDim:         lipgloss.Color("37"),  // cyan
		Background:      lipgloss.Color("0"),   // black
		Gauge:           lipgloss.Color("201"), // bright_magenta
		Sparkline:       lipgloss.Color("51"),  // bright_cyan
		WaveA:           lipgloss.Color("201"), // bright_magenta
		WaveB:           lipgloss.Color("226"), // bright_yellow
		Bar:             lipgloss.Color("165"), // magenta
		Coast:           lipgloss.Color("37"),  // cyan
		Satellite:       lipgloss.Color("226"), // bright_yellow
	},
	"military": {
		Name:            "Military",
		Description:     "Tactical military console",
		Primary:         lipgloss.Color("28"),  // green
		PrimaryBright:   lipgloss.Color("46"),  // bright_green
		PrimaryDim:      lipgloss.Color("22"),  // dark_green
		Secondary:       lipgloss.Color("178"), // yellow
		SecondaryBright: lipgloss.Color("226"), // bright_yellow
		Info:            lipgloss.Color("46"),  // bright_green
		Warning:         lipgloss.Color("226"), // bright_yellow
		Error:           lipgloss.Color("208"), // dark_orange
		Critical:        lipgloss.Color("196"), // bright_red
		Up:              lipgloss.Color("46"),  // bright_green
		Down:            lipgloss.Color("196"), // bright_red
		Selected:        lipgloss.Color("231"), // bright_white
		Border:          lipgloss.Color("28"),  // green
		BorderDim:       lipgloss.Color("22"),  // dark_green
		Text:            lipgloss.Color("46"),  // bright_green
		TextDim:         lipgloss.Color("28"),  // green
		Background:      lipgloss.Color("0"),   // black
		Gauge:           lipgloss.Color("178"), // yellow
		Sparkline:       lipgloss.Color("46"),  // bright_green
		WaveA:           lipgloss.Color("46"),  // bright_green
		WaveB:           lipgloss.Color("226"), // bright_yellow
		Bar:             lipgloss.Color("28"),  // green
		Coast:           lipgloss.Color("22"),  // dark_green
		Satellite:       lipgloss.Color("226"), // bright_yellow
	},
}

var order = []string{"classic", "amber", "ice", "cyberpunk", "military"}

// Default is the theme used when none is configured
const Default = "classic"

// Get returns a theme by name, defaults to classic if not found
func Get(name string) *Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[Default]
}

// Exists reports whether name is a known theme
func Exists(name string) bool {
	_, ok := themes[name]
	return ok
}

// List returns all available theme names
func List() []string {
	return append([]string(nil), order...)
}

// ThemeInfo contains theme metadata for display
type ThemeInfo struct {
	Key         string
	Name        string
	Description string
}

// GetInfo returns information about all themes
func GetInfo() []ThemeInfo {
	info := make([]ThemeInfo, 0, len(order))
	for _, key := range order {
		t := themes[key]
		info = append(info, ThemeInfo{
			Key:         key,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return info
}

// SeverityColor maps a log severity to its color
func (t *Theme) SeverityColor(s catalog.Severity) lipgloss.Color {
	switch s {
	case catalog.SeverityWarning:
		return t.Warning
	case catalog.SeverityError:
		return t.Error
	case catalog.SeverityCritical:
		return t.Critical
	default:
		return t.Info
	}
}

// StatusColor maps a launcher status to its color
func (t *Theme) StatusColor(s catalog.Status) lipgloss.Color {
	if s == catalog.StatusUp {
		return t.Up
	}
	return t.Down
}

// Style helpers for creating lipgloss styles

// PrimaryStyle returns a style using the primary color
func (t *Theme) PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary)
}

// PrimaryBrightStyle returns a style using the bright primary color
func (t *Theme) PrimaryBrightStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.PrimaryBright)
}

// SecondaryStyle returns a style using the secondary color
func (t *Theme) SecondaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Secondary)
}

// BorderStyle returns a style using the border color
func (t *Theme) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Border)
}

// TextStyle returns a style using the text color
func (t *Theme) TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

// TextDimStyle returns a style using the dim text color
func (t *Theme) TextDimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TextDim)
}

// SelectedStyle returns the highlight style for the cursor row
func (t *Theme) SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Selected).Bold(true)
}

// SeverityStyle returns a style for a log line of the given severity
func (t *Theme) SeverityStyle(s catalog.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.SeverityColor(s))
}

// StatusStyle returns a style for a launcher status cell
func (t *Theme) StatusStyle(s catalog.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.StatusColor(s))
}
