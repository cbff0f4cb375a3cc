package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings the picker reacts to. Any other key is ignored.
type keyMap struct {
	Quit     key.Binding
	Unselect key.Binding
	Next     key.Binding
	Previous key.Binding
	Ascend   key.Binding
	Activate key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Unselect: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "clear"),
		),
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Ascend: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "parent"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/set"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Activate, k.Ascend, k.Unselect, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Unselect},
		{k.Activate, k.Ascend, k.Quit},
	}
}
