package app

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ntnucsie/launchdeck/internal/catalog"
	"github.com/ntnucsie/launchdeck/internal/state"
	"github.com/ntnucsie/launchdeck/internal/testutil"
)

const testCode = "NTNUCSIE"

func newTestModel(t *testing.T) *Model {
	t.Helper()
	st, err := state.New("Missile Launcher", testCode, catalog.Default(), state.WithSeed(7))
	if err != nil {
		t.Fatalf("state.New: %v", err)
	}
	return NewModel(st, Options{Theme: "classic", TickRate: 100 * time.Millisecond})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func special(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// =============================================================================
// Model Lifecycle Tests
// =============================================================================

func TestModel_New(t *testing.T) {
	m := newTestModel(t)

	if m.State() == nil {
		t.Fatal("State() should not be nil")
	}
	if m.width != DefaultWidth || m.height != DefaultHeight {
		t.Errorf("default size = %dx%d", m.width, m.height)
	}
	if m.tickRate != 100*time.Millisecond {
		t.Errorf("tickRate = %v", m.tickRate)
	}
	if m.theme.Name != "Classic Green" {
		t.Errorf("theme = %q", m.theme.Name)
	}
}

func TestModel_NewDefaults(t *testing.T) {
	st, _ := state.New("t", testCode, catalog.Default(), state.WithSeed(1))
	m := NewModel(st, Options{})

	if m.tickRate != DefaultTickRate {
		t.Errorf("tickRate = %v, want %v", m.tickRate, DefaultTickRate)
	}
	if m.logger == nil {
		t.Error("logger should default to a discarding logger")
	}
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Error("Init should schedule a tick")
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	if m.width != 140 || m.height != 50 {
		t.Errorf("size = %dx%d, want 140x50", m.width, m.height)
	}
	if m.help.Width != 140 {
		t.Errorf("help width = %d", m.help.Width)
	}
}

// =============================================================================
// Tick Tests
// =============================================================================

func TestModel_TickAdvancesState(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should reschedule itself")
	}
	if m.State().TickCount() != 1 {
		t.Errorf("TickCount = %d, want 1", m.State().TickCount())
	}
	if m.State().TimeAxis() != [2]float64{1, 21} {
		t.Errorf("TimeAxis = %v", m.State().TimeAxis())
	}
}

func TestModel_NotificationExpires(t *testing.T) {
	m := newTestModel(t)
	m.notify("hello")
	if m.notifyTicks != 30 {
		t.Fatalf("notifyTicks = %d, want 30 at 100ms", m.notifyTicks)
	}
	for i := 0; i < 30; i++ {
		m.Update(tickMsg(time.Now()))
	}
	if m.notification != "" {
		t.Errorf("notification should clear, got %q", m.notification)
	}
}

// =============================================================================
// Key Handling Tests
// =============================================================================

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []state.Key
	}{
		{"single rune", runes("t"), []state.Key{state.RuneKey('t')}},
		{"rune burst", runes("ab"), []state.Key{state.RuneKey('a'), state.RuneKey('b')}},
		{"space", special(tea.KeySpace), []state.Key{state.RuneKey(' ')}},
		{"enter", special(tea.KeyEnter), []state.Key{state.SpecialKey(state.KeyEnter)}},
		{"backspace", special(tea.KeyBackspace), []state.Key{state.SpecialKey(state.KeyBackspace)}},
		{"delete", special(tea.KeyDelete), []state.Key{state.SpecialKey(state.KeyDelete)}},
		{"esc", special(tea.KeyEsc), []state.Key{state.SpecialKey(state.KeyEscape)}},
		{"up", special(tea.KeyUp), []state.Key{state.SpecialKey(state.KeyUp)}},
		{"down", special(tea.KeyDown), []state.Key{state.SpecialKey(state.KeyDown)}},
		{"left", special(tea.KeyLeft), []state.Key{state.SpecialKey(state.KeyLeft)}},
		{"right", special(tea.KeyRight), []state.Key{state.SpecialKey(state.KeyRight)}},
		{"tab", special(tea.KeyTab), []state.Key{state.SpecialKey(state.KeyOther)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateKey(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("key %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if !isQuit(cmd) {
		t.Error("q should quit in normal mode")
	}
}

func TestModel_CtrlCAlwaysQuits(t *testing.T) {
	m := newTestModel(t)
	m.Update(runes("t"))
	_, cmd := m.Update(special(tea.KeyCtrlC))
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit even while entering a code")
	}
}

func TestModel_QInsideEntryDoesNotQuit(t *testing.T) {
	m := newTestModel(t)
	m.Update(runes("t"))
	_, cmd := m.Update(runes("q"))
	if isQuit(cmd) {
		t.Error("q should be typed into the code, not quit")
	}
	if m.State().PendingCode() != "q" {
		t.Errorf("PendingCode = %q", m.State().PendingCode())
	}
}

func TestModel_LaunchSequence(t *testing.T) {
	var logs bytes.Buffer
	st, _ := state.New("Missile Launcher", testCode, catalog.Default(), state.WithSeed(7))
	m := NewModel(st, Options{
		Theme:  "classic",
		Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})

	m.Update(runes("t"))
	if st.Mode() != state.ModeEnteringCode {
		t.Fatalf("mode = %v", st.Mode())
	}
	m.Update(runes(testCode))
	m.Update(special(tea.KeyEnter))

	if !st.LaunchConfirmed() {
		t.Fatal("launch should be confirmed")
	}
	if st.Mode() != state.ModeNormal {
		t.Errorf("mode = %v, want normal", st.Mode())
	}
	if m.notification != "LAUNCH CONFIRMED" {
		t.Errorf("notification = %q", m.notification)
	}

	out := logs.String()
	for _, want := range []string{"input mode changed", "to=entering-code", "launch confirmed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestModel_TabNavigation(t *testing.T) {
	m := newTestModel(t)
	m.Update(special(tea.KeyRight))
	if m.State().TabIndex() != state.TabLaunch {
		t.Errorf("TabIndex = %d", m.State().TabIndex())
	}
	m.Update(special(tea.KeyLeft))
	if m.State().TabIndex() != state.TabSystemMonitor {
		t.Errorf("TabIndex = %d", m.State().TabIndex())
	}
}

// =============================================================================
// View Tests
// =============================================================================

func TestView_MonitorTab(t *testing.T) {
	m := newTestModel(t)
	view := testutil.StripANSI(m.View())

	for _, want := range []string{
		"Missile Launcher",
		"System Monitor",
		"Launch Missile",
		"System Health",
		"Core Stress:",
		"Broadcast Signal Strength:",
		"Tasks",
		"Item1",
		"System Message",
		"TPE launch system",
		"Signals",
		"CS Wave",
		"IE Wave",
		"Packets",
		"enter launch code",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("monitor view missing %q", want)
		}
	}
	if strings.Contains(view, popupTitle) {
		t.Error("popup should be hidden in normal mode")
	}
}

func TestView_TaskCursorMarker(t *testing.T) {
	m := newTestModel(t)
	if strings.Contains(testutil.StripANSI(m.View()), "> Item") {
		t.Error("no task should be selected initially")
	}
	m.Update(special(tea.KeyDown))
	if !strings.Contains(testutil.StripANSI(m.View()), "> Item1") {
		t.Error("first task should be marked after pressing down")
	}
}

func TestView_LaunchTab(t *testing.T) {
	m := newTestModel(t)
	m.Update(special(tea.KeyRight))
	view := testutil.StripANSI(m.View())

	for _, want := range []string{"Launchers", "Location", "Asia-1", "TPE", "World Map"} {
		if !strings.Contains(view, want) {
			t.Errorf("launch view missing %q", want)
		}
	}
	if !strings.Contains(view, "◆") {
		t.Error("satellite should be visible before launch")
	}
}

func TestView_SatelliteHiddenAfterLaunch(t *testing.T) {
	m := newTestModel(t)
	m.Update(runes("t"))
	m.Update(runes(testCode))
	m.Update(special(tea.KeyEnter))
	m.Update(special(tea.KeyRight))

	view := testutil.StripANSI(m.View())
	if strings.Contains(view, "◆") {
		t.Error("satellite should be hidden after launch")
	}
	if !strings.Contains(view, "LAUNCHED") {
		t.Error("status bar should show LAUNCHED")
	}
}

func TestView_CodePopup(t *testing.T) {
	m := newTestModel(t)
	m.Update(runes("t"))
	m.Update(runes("NTNU"))

	view := testutil.StripANSI(m.View())
	for _, want := range []string{popupTitle, popupHint, " NTNU ", codeIncorrect, "esc cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("popup view missing %q", want)
		}
	}

	m.Update(runes("CSIE"))
	view = testutil.StripANSI(m.View())
	if !strings.Contains(view, codeCorrect) {
		t.Error("popup should report a correct code")
	}
}

func TestView_NarrowTerminal(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})

	for _, line := range testutil.Lines(m.View()) {
		if strings.HasPrefix(line, "╔") && len([]rune(line)) != minWidth {
			t.Errorf("panels should render at the minimum width, got %d", len([]rune(line)))
		}
	}
}

func TestView_EmptyCatalog(t *testing.T) {
	st, err := state.New("Empty", testCode, catalog.Catalog{}, state.WithSeed(2))
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(st, Options{})
	for i := 0; i < 50; i++ {
		m.Update(tickMsg(time.Now()))
	}

	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, "no tasks") {
		t.Error("empty task list should say so")
	}
	m.Update(special(tea.KeyRight))
	_ = m.View()
}
