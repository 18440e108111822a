package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumpy-jack/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Jump       key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Restart, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("f", "r"),
			key.WithHelp("f", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Event translates a key message into a session input event.
// Returns false for keys that are handled by the platform itself.
func (k KeyMap) Event(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Closed(), true
	case key.Matches(msg, k.Screenshot):
		return core.Event{}, false
	case key.Matches(msg, k.Jump):
		return core.KeyPressed(core.KeyJump), true
	case key.Matches(msg, k.Restart):
		return core.KeyPressed(core.KeyRestart), true
	}
	return core.KeyPressed(core.KeyOther), true
}
