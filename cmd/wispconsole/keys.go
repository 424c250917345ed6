package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines every keyboard shortcut the console recognizes.
type KeyMap struct {
	Enter  key.Binding
	Up     key.Binding
	Down   key.Binding
	Yank   key.Binding
	Stats  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the console's default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "evaluate"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "scroll down"),
		),
		Yank: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "yank last result"),
		),
		Stats: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "toggle stats sidebar"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
