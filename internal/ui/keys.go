package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings of the map screen.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Select   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Dismiss  key.Binding
	Journeys key.Binding
	Fit      key.Binding
	Style    key.Binding
	Stats    key.Binding
	ReadMore key.Binding
	TapStop  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "l", "right"),
			key.WithHelp("n/→", "next stop"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "h", "left"),
			key.WithHelp("p/←", "prev stop"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "close"),
		),
		Journeys: key.NewBinding(
			key.WithKeys("m", "tab"),
			key.WithHelp("m", "journeys"),
		),
		Fit: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fit journey"),
		),
		Style: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "map style"),
		),
		Stats: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "stats"),
		),
		ReadMore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "read more"),
		),
		TapStop: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "open stop"),
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

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TapStop, k.Next, k.Prev, k.Journeys, k.Fit, k.Style, k.Stats, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TapStop, k.Next, k.Prev, k.Dismiss, k.ReadMore},
		{k.Journeys, k.Up, k.Down, k.Top, k.Bottom, k.Select},
		{k.Fit, k.Style, k.Stats, k.Help, k.Quit},
	}
}

// sheetKeys returns the bindings shown while the stop sheet is open.
func (k KeyMap) sheetKeys() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.ReadMore, k.Dismiss, k.Help}
}

// drawerKeys returns the bindings shown while the journey drawer is open.
func (k KeyMap) drawerKeys() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Dismiss, k.Quit}
}
