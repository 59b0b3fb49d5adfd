package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Rotate     key.Binding
	Place      key.Binding
	Remove     key.Binding
	Regenerate key.Binding
	Clear      key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Rotate:     key.NewBinding(key.WithKeys(" ", "o"), key.WithHelp("space/o", "rotate")),
		Place:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "place")),
		Remove:     key.NewBinding(key.WithKeys("x", "backspace", "delete"), key.WithHelp("x", "remove")),
		Regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "regenerate")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Place, k.Remove, k.Regenerate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Rotate, k.Place, k.Remove},
		{k.Regenerate, k.Clear, k.Save},
		{k.Help, k.Quit},
	}
}
