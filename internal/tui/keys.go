package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists every binding the visualizer reacts to. It implements
// help.KeyMap.
type keyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Decrease  key.Binding
	Increase  key.Binding
	DecBig    key.Binding
	IncBig    key.Binding
	Min       key.Binding
	Max       key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
	SelectNth key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "previous slider"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "next slider"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("→/l", "increase"),
		),
		DecBig: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←", "decrease ×10"),
		),
		IncBig: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→", "increase ×10"),
		),
		Min: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "minimum"),
		),
		Max: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "maximum"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		SelectNth: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump to slider"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Decrease, k.Increase, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.SelectNth},
		{k.Decrease, k.Increase, k.DecBig, k.IncBig},
		{k.Min, k.Max, k.Reset},
		{k.Help, k.Quit},
	}
}
