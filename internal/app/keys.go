package app

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keys the grid responds to. Panes are not interactive;
// the only action is quitting.
type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}
