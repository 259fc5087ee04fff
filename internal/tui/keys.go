package tui

import (
	"github.com/akyairhashvil/breathe/internal/models"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the application
type KeyMap struct {
	Toggle   key.Binding
	Sound    key.Binding
	Preset2  key.Binding
	Preset5  key.Binding
	Preset10 key.Binding
	Reset    key.Binding
	Theme    key.Binding
	Limit    key.Binding
	Escape   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sound"),
		),
		Preset2: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "2 min"),
		),
		Preset5: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "5 min"),
		),
		Preset10: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "10 min"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "back to start"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Limit: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "time limit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "tab", "enter"),
			key.WithHelp("enter", "done"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// forStatus returns a copy with only the bindings that act in the given state.
func (k KeyMap) forStatus(status models.Status, editing bool) KeyMap {
	idle := status == models.StatusIdle && !editing
	k.Preset2.SetEnabled(idle)
	k.Preset5.SetEnabled(idle)
	k.Preset10.SetEnabled(idle)
	k.Limit.SetEnabled(idle)
	k.Sound.SetEnabled(!editing && status != models.StatusComplete)
	k.Toggle.SetEnabled(!editing && status != models.StatusComplete)
	k.Escape.SetEnabled(editing)
	k.Help.SetEnabled(!editing)
	k.Theme.SetEnabled(!editing)
	k.Reset.SetEnabled(!editing)
	if status == models.StatusRunning {
		k.Toggle.SetHelp("space", "pause")
	}
	if status == models.StatusComplete {
		k.Reset.SetKeys("r", "enter", " ")
	}
	return k
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Preset2, k.Preset5, k.Preset10, k.Sound, k.Reset, k.Escape, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Sound},
		{k.Preset2, k.Preset5, k.Preset10},
		{k.Limit, k.Escape, k.Theme, k.Help, k.Quit},
	}
}
