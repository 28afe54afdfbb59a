package state

import (
	"github.com/ntnucsie/launchdeck/internal/catalog"
	"github.com/ntnucsie/launchdeck/internal/signal"
)

// Title returns the dashboard title
func (s *State) Title() string { return s.title }

// TabIndex returns the active tab
func (s *State) TabIndex() int { return s.tabs.Index() }

// TabTitles returns the tab titles
func (s *State) TabTitles() []string { return s.tabs.Titles() }

// Progress returns the confirmation progress in [0, 1)
func (s *State) Progress() float64 {
	return float64(s.cycle) / CycleLength
}

// TickCount returns the number of ticks since construction
func (s *State) TickCount() uint64 { return s.ticks }

// SignalStrength returns the signal-strength window, oldest first
func (s *State) SignalStrength() []uint64 { return s.signalStrength.Points() }

// WaveA returns the first wave window
func (s *State) WaveA() []signal.Point { return s.waveA.Points() }

// WaveB returns the second wave window
func (s *State) WaveB() []signal.Point { return s.waveB.Points() }

// TimeAxis returns the [lo, hi] x bounds both waves are plotted against
func (s *State) TimeAxis() [2]float64 { return s.timeAxis }

// Tasks returns the task items
func (s *State) Tasks() []string { return s.tasks.Items() }

// TaskCursor returns the selected task index
func (s *State) TaskCursor() (int, bool) { return s.tasks.Selected() }

// Logs returns the log feed, newest rotation first
func (s *State) Logs() []catalog.LogEntry { return s.logs.Items() }

// LogCursor returns the selected log line
func (s *State) LogCursor() (int, bool) { return s.logs.Selected() }

// Packets returns the packet feed
func (s *State) Packets() []catalog.Packet { return s.packets }

// Launchers returns the launcher catalog
func (s *State) Launchers() []catalog.Launcher { return s.launchers }

// Power returns the power level in [0, 100]
func (s *State) Power() float64 { return s.power }

// PendingCode returns the code typed so far
func (s *State) PendingCode() string { return s.pendingCode }

// CodeMatches reports whether the pending code equals the required one
func (s *State) CodeMatches() bool { return s.pendingCode == s.requiredCode }

// Mode returns the input mode
func (s *State) Mode() Mode { return s.mode }

// LaunchConfirmed reports whether a correct code has been entered
func (s *State) LaunchConfirmed() bool { return s.launchConfirmed }

// QuitRequested reports whether the driver should stop
func (s *State) QuitRequested() bool { return s.quitRequested }
