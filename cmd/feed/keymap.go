package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Back     key.Binding
	Forward  key.Binding
	PageBack key.Binding
	PageFwd  key.Binding
	First    key.Binding
	Last     key.Binding
	Delete   key.Binding
	Insert   key.Binding
	Grow     key.Binding
	Reload   key.Binding
	Filter   key.Binding
	Accept   key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Back: key.NewBinding(
			key.WithKeys("up", "k", "left", "h"),
			key.WithHelp("↑/k", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("down", "j", "right", "l"),
			key.WithHelp("↓/j", "forward"),
		),
		PageBack: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page back"),
		),
		PageFwd: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page forward"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first item"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last item"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete first visible"),
		),
		Insert: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "insert item"),
		),
		Grow: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand first visible"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
