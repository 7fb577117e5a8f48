package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all playground keybindings.
type keyMap struct {
	Success  key.Binding
	Error    key.Binding
	Warning  key.Binding
	Info     key.Binding
	Sticky   key.Binding
	Actioned key.Binding

	SelectOlder key.Binding
	SelectNewer key.Binding
	Dismiss     key.Binding
	ClearAll    key.Binding
	Detail      key.Binding
	History     key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Success: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "success"),
		),
		Error: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "error"),
		),
		Warning: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "warning"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info"),
		),
		Sticky: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pinned error"),
		),
		Actioned: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "with actions"),
		),
		SelectOlder: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "select older"),
		),
		SelectNewer: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "select newer"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear all"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "detail"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// shortHelp returns the bindings shown in the bottom help line.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{
		k.Success, k.Error, k.Warning, k.Info, k.Sticky, k.Actioned,
		k.SelectOlder, k.SelectNewer,
		k.Dismiss, k.ClearAll, k.Detail, k.History, k.Quit,
	}
}
