package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains all key bindings of the picker. In the time views the
// vertical keys change the hours and the horizontal keys the minutes.
type KeyMap struct {
	// Navigation
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Previous key.Binding
	Next     key.Binding
	DrillUp  key.Binding
	Today    key.Binding
	Reset    key.Binding

	// Selection
	Activate key.Binding
	Time1    key.Binding
	Time2    key.Binding
	Calendar key.Binding
	Edit     key.Binding

	// Session
	Copy    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Help    key.Binding
}

// DefaultKeyMap returns the default Vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Previous: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next"),
		),
		DrillUp: key.NewBinding(
			key.WithKeys("u", "backspace"),
			key.WithHelp("u", "zoom out"),
		),
		Today: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "today"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset view"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Time1: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "time"),
		),
		Time2: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "end time"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "calendar"),
		),
		Edit: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "type value"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Previous, k.Next, k.DrillUp, k.Confirm, k.Cancel, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Previous, k.Next, k.DrillUp, k.Today, k.Reset},
		{k.Activate, k.Time1, k.Time2, k.Calendar, k.Edit},
		{k.Copy, k.Confirm, k.Cancel, k.Help},
	}
}
