package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Reaction key.Binding
	Aim      key.Binding
	Sequence key.Binding
	Confirm  key.Binding
	Save     key.Binding
	History  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reaction: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "reaction")),
		Aim:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "aim")),
		Sequence: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sequence")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start/retry")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		History:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reaction, k.Aim, k.Sequence, k.Confirm, k.Save, k.History, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
