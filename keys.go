package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	StartPause key.Binding
	Pause      key.Binding
	Reset      key.Binding
	EditInput  key.Binding
	Preset     key.Binding
	Copy       key.Binding
	OpenHelp   key.Binding
	Quit       key.Binding
}

var Keys = Keymap{
	StartPause: key.NewBinding(
		key.WithKeys("s", " "),
		key.WithHelp("s/space", "start / pause"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset to entered duration"),
	),
	EditInput: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "edit duration"),
	),
	Preset: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6"),
		key.WithHelp("1-6", "presets: 1 5 10 15 30 60 min"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy remaining time"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.StartPause,
		k.Pause,
		k.Reset,
		k.EditInput,
		k.Preset,
		k.Copy,
		k.OpenHelp,
		k.Quit,
	}
}
