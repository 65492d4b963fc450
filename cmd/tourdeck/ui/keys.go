package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding of the program.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Remove   key.Binding
	Refresh  key.Binding
	Previous key.Binding
	Next     key.Binding
	Surprise key.Binding
	Switch   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "read more"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "not interested"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Surprise: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "surprise me"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch page"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// toursHelp and reviewsHelp adapt KeyMap to help.KeyMap per page.
type toursHelp struct{ k KeyMap }

func (h toursHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Toggle, h.k.Remove, h.k.Switch, h.k.Quit}
}

func (h toursHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down},
		{h.k.Toggle, h.k.Remove, h.k.Refresh},
		{h.k.Switch, h.k.Help, h.k.Quit},
	}
}

type reviewsHelp struct{ k KeyMap }

func (h reviewsHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Previous, h.k.Next, h.k.Surprise, h.k.Switch, h.k.Quit}
}

func (h reviewsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Previous, h.k.Next, h.k.Surprise},
		{h.k.Switch, h.k.Help, h.k.Quit},
	}
}
