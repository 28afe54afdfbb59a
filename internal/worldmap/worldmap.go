// Package worldmap draws the launcher map: an equirectangular character
// canvas with a coarse land outline, launcher markers and the satellite
// track shown while a launch is pending.
package worldmap

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ntnucsie/launchdeck/internal/catalog"
	"github.com/ntnucsie/launchdeck/internal/theme"
)

// Glyphs
const (
	LandRune      = '·'
	LauncherRune  = 'x'
	TrackRune     = '∙'
	SatelliteRune = '◆'
)

// Satellite track and footprint, in degrees
var (
	TrackFrom     = [2]float64{-5, -180} // lat, lon
	TrackTo       = [2]float64{25, 180}
	FootprintSW   = [2]float64{7, 90}
	FootprintNE   = [2]float64{27, 110}
	SatelliteAt = [2]float64{17, 100}
)

// cell is a single map cell with character and color
type cell struct {
	char  rune
	color lipgloss.Color
}

// Map is the world map canvas
type Map struct {
	width  int
	height int
	cells  [][]cell
	theme  *theme.Theme
}

// New creates an empty map canvas
func New(t *theme.Theme, width, height int) *Map {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
	}
	m := &Map{width: width, height: height, cells: cells, theme: t}
	m.Clear()
	return m
}

// Clear blanks the canvas
func (m *Map) Clear() {
	for y := range m.cells {
		for x := range m.cells[y] {
			m.cells[y][x] = cell{char: ' '}
		}
	}
}

// Size returns the canvas dimensions
func (m *Map) Size() (width, height int) {
	return m.width, m.height
}

// Project maps a coordinate to a canvas cell. ok is false outside [-90,90]x[-180,180].
func (m *Map) Project(lat, lon float64) (x, y int, ok bool) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	x = int(math.Round((lon + 180) / 360 * float64(m.width-1)))
	y = int(math.Round((90 - lat) / 180 * float64(m.height-1)))
	return x, y, true
}

// unproject returns the coordinate at the centre of a cell
func (m *Map) unproject(x, y int) (lat, lon float64) {
	lon = -180 + (float64(x)+0.5)/float64(m.width)*360
	lat = 90 - (float64(y)+0.5)/float64(m.height)*180
	return lat, lon
}

func (m *Map) set(x, y int, r rune, c lipgloss.Color) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.cells[y][x] = cell{char: r, color: c}
}

// At returns the rune at a canvas cell
func (m *Map) At(x, y int) rune {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.cells[y][x].char
}

// DrawLand shades every land cell
func (m *Map) DrawLand() {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if lat, lon := m.unproject(x, y); IsLand(lat, lon) {
				m.set(x, y, LandRune, m.theme.Coast)
			}
		}
	}
}

// DrawLaunchers marks each launcher, coloured by status
func (m *Map) DrawLaunchers(launchers []catalog.Launcher) {
	for _, l := range launchers {
		if x, y, ok := m.Project(l.Lat, l.Lon); ok {
			m.set(x, y, LauncherRune, m.theme.StatusColor(l.Status))
		}
	}
}

// DrawSatellite draws the satellite track, its footprint box and the satellite itself
func (m *Map) DrawSatellite() {
	c := m.theme.Satellite

	x0, y0, _ := m.Project(TrackFrom[0], TrackFrom[1])
	x1, y1, _ := m.Project(TrackTo[0], TrackTo[1])
	m.line(x0, y0, x1, y1, TrackRune, c)

	left, bottom, _ := m.Project(FootprintSW[0], FootprintSW[1])
	right, top, _ := m.Project(FootprintNE[0], FootprintNE[1])
	for x := left + 1; x < right; x++ {
		m.set(x, top, '─', c)
		m.set(x, bottom, '─', c)
	}
	for y := top + 1; y < bottom; y++ {
		m.set(left, y, '│', c)
		m.set(right, y, '│', c)
	}
	m.set(left, top, '┌', c)
	m.set(right, top, '┐', c)
	m.set(left, bottom, '└', c)
	m.set(right, bottom, '┘', c)

	sx, sy, _ := m.Project(SatelliteAt[0], SatelliteAt[1])
	m.set(sx, sy, SatelliteRune, c)
}

// line draws with Bresenham's algorithm
func (m *Map) line(x0, y0, x1, y1 int, r rune, c lipgloss.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		m.set(x0, y0, r, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Render returns the canvas, one string per row
func (m *Map) Render() []string {
	dim := lipgloss.NewStyle().Foreground(m.theme.TextDim)
	lines := make([]string, m.height)
	for y := range m.cells {
		var sb strings.Builder
		for _, c := range m.cells[y] {
			if c.char == ' ' {
				sb.WriteRune(' ')
				continue
			}
			style := dim
			if c.color != "" {
				style = lipgloss.NewStyle().Foreground(c.color)
			}
			sb.WriteString(style.Render(string(c.char)))
		}
		lines[y] = sb.String()
	}
	return lines
}

// Draw builds the full map for the given launchers. The satellite is shown
// until the launch is confirmed.
func Draw(t *theme.Theme, width, height int, launchers []catalog.Launcher, launched bool) []string {
	m := New(t, width, height)
	m.DrawLand()
	m.DrawLaunchers(launchers)
	if !launched {
		m.DrawSatellite()
	}
	return m.Render()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
