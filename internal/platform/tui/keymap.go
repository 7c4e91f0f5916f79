package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the watch view.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Pause   key.Binding
	Restart key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Save    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Restart, k.Faster, k.Slower},
		{k.Next, k.Prev, k.Save},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart lap"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "right", "l", "tab"),
			key.WithHelp("n", "next area"),
		),
		Prev: key.NewBinding(
			key.WithKeys("b", "left", "h", "shift+tab"),
			key.WithHelp("b", "prev area"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save lap"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
