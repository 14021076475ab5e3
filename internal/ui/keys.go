package ui

import "charm.land/bubbles/v2/key"

// KeyMap defines the widget's keybindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Delete   key.Binding
	MoveDown key.Binding
	MoveUp   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the vim-flavored bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete row")),
		MoveDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move row down")),
		MoveUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move row up")),
		Help:     key.NewBinding(key.WithKeys("?", "f1"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// FunctionKeyMap returns bindings without single-letter shortcuts, for
// users whose terminals swallow them.
func FunctionKeyMap() KeyMap {
	m := DefaultKeyMap()
	m.Up = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up"))
	m.Down = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down"))
	m.Top = key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top"))
	m.Bottom = key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom"))
	m.Delete = key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete row"))
	m.MoveDown = key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "move row down"))
	m.MoveUp = key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "move row up"))
	m.Help = key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help"))
	m.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit"))
	return m
}

// KeyMapForMode maps a config keymap name to bindings; unknown names get
// the default.
func KeyMapForMode(mode string) KeyMap {
	if mode == "function" {
		return FunctionKeyMap()
	}
	return DefaultKeyMap()
}
