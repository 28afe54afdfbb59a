// Package app is the Bubble Tea driver for the dashboard. It owns the tick
// timer, translates terminal keys into state input and renders the state.
package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ntnucsie/launchdeck/internal/state"
	"github.com/ntnucsie/launchdeck/internal/theme"
)

// Default terminal size used until the first WindowSizeMsg arrives
const (
	DefaultWidth  = 100
	DefaultHeight = 34
)

// DefaultTickRate is how often simulated time advances
const DefaultTickRate = 250 * time.Millisecond

// Options configures the driver
type Options struct {
	Theme    string
	TickRate time.Duration
	Logger   *slog.Logger
}

// Model is the Bubble Tea model wrapping the dashboard state
type Model struct {
	state    *state.State
	theme    *theme.Theme
	tickRate time.Duration
	logger   *slog.Logger

	width  int
	height int

	normalKeys normalKeyMap
	entryKeys  entryKeyMap
	help       help.Model

	notification string
	notifyTicks  int
}

// NewModel creates the driver for st
func NewModel(st *state.State, opts Options) *Model {
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := help.New()
	t := theme.Get(opts.Theme)
	h.Styles.ShortKey = t.PrimaryBrightStyle()
	h.Styles.ShortDesc = t.TextDimStyle()
	h.Styles.ShortSeparator = t.TextDimStyle()

	return &Model{
		state:      st,
		theme:      t,
		tickRate:   opts.TickRate,
		logger:     opts.Logger,
		width:      DefaultWidth,
		height:     DefaultHeight,
		normalKeys: newNormalKeyMap(),
		entryKeys:  newEntryKeyMap(),
		help:       h,
	}
}

// State returns the wrapped state
func (m *Model) State() *state.State {
	return m.state
}

// Init starts the tick timer
func (m *Model) Init() tea.Cmd {
	m.logger.Info("dashboard started",
		"title", m.state.Title(),
		"theme", m.theme.Name,
		"tick_rate", m.tickRate)
	return m.tickCmd()
}

// tickMsg is sent on each simulation tick
type tickMsg time.Time

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates state
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.logger.Info("interrupted")
		return m, tea.Quit
	}

	prevMode := m.state.Mode()
	prevTab := m.state.TabIndex()
	wasLaunched := m.state.LaunchConfirmed()

	for _, k := range translateKey(msg) {
		m.state.DispatchKey(k)
	}

	if mode := m.state.Mode(); mode != prevMode {
		m.logger.Debug("input mode changed", "from", prevMode, "to", mode)
	}
	if tab := m.state.TabIndex(); tab != prevTab {
		m.logger.Debug("tab changed", "tab", m.state.TabTitles()[tab])
	}
	if !wasLaunched && m.state.LaunchConfirmed() {
		m.logger.Warn("launch confirmed", "tick", m.state.TickCount())
		m.notify("LAUNCH CONFIRMED")
	}

	if m.state.QuitRequested() {
		m.logger.Info("quit requested")
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.state.Tick()

	if m.notifyTicks > 0 {
		m.notifyTicks--
		if m.notifyTicks == 0 {
			m.notification = ""
		}
	}

	return m, m.tickCmd()
}

// notify shows a message in the footer for a few seconds
func (m *Model) notify(message string) {
	m.notification = message
	m.notifyTicks = int(3 * time.Second / m.tickRate)
	if m.notifyTicks < 1 {
		m.notifyTicks = 1
	}
}
