package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next          key.Binding
	Prev          key.Binding
	Reveal        key.Binding
	Known         key.Binding
	Filter        key.Binding
	FilterAll     key.Binding
	FilterUnknown key.Binding
	FilterKnown   key.Binding
	Pinyin        key.Binding
	Add           key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "previous"),
		),
		Reveal: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "flip"),
		),
		Known: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark known"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f", "tab"),
			key.WithHelp("f", "cycle filter"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all cards"),
		),
		FilterUnknown: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "unknown"),
		),
		FilterKnown: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "known"),
		),
		Pinyin: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "toggle pinyin"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "+"),
			key.WithHelp("a", "add card"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Reveal, k.Known, k.Filter, k.Add, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Reveal},
		{k.Known, k.Pinyin, k.Add},
		{k.Filter, k.FilterAll, k.FilterUnknown, k.FilterKnown},
		{k.Help, k.Quit},
	}
}
