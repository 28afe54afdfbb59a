package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ntnucsie/launchdeck/internal/state"
)

// normalKeyMap lists the dashboard bindings for the help footer
type normalKeyMap struct {
	Tabs   key.Binding
	Tasks  key.Binding
	Launch key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k normalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tabs, k.Tasks, k.Launch, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k normalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tabs, k.Tasks},
		{k.Launch, k.Quit},
	}
}

// entryKeyMap lists the bindings active while typing a launch code
type entryKeyMap struct {
	Confirm key.Binding
	Delete  key.Binding
	Cancel  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k entryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Delete, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k entryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newNormalKeyMap() normalKeyMap {
	return normalKeyMap{
		Tabs: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "switch tab"),
		),
		Tasks: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "select task"),
		),
		Launch: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "enter launch code"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newEntryKeyMap() entryKeyMap {
	return entryKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "delete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// translateKey converts a terminal key event into state input events. A
// paste or a burst of typed runes yields one event per rune.
func translateKey(msg tea.KeyMsg) []state.Key {
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]state.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, state.RuneKey(r))
		}
		return keys
	case tea.KeySpace:
		return []state.Key{state.RuneKey(' ')}
	case tea.KeyEnter:
		return []state.Key{state.SpecialKey(state.KeyEnter)}
	case tea.KeyBackspace:
		return []state.Key{state.SpecialKey(state.KeyBackspace)}
	case tea.KeyDelete:
		return []state.Key{state.SpecialKey(state.KeyDelete)}
	case tea.KeyEsc:
		return []state.Key{state.SpecialKey(state.KeyEscape)}
	case tea.KeyUp:
		return []state.Key{state.SpecialKey(state.KeyUp)}
	case tea.KeyDown:
		return []state.Key{state.SpecialKey(state.KeyDown)}
	case tea.KeyLeft:
		return []state.Key{state.SpecialKey(state.KeyLeft)}
	case tea.KeyRight:
		return []state.Key{state.SpecialKey(state.KeyRight)}
	default:
		return []state.Key{state.SpecialKey(state.KeyOther)}
	}
}
