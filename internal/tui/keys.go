package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Move     key.Binding
	Select   key.Binding
	Back     key.Binding
	PrevTeam key.Binding
	NextTeam key.Binding
	Search   key.Binding
	Retry    key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Move:     key.NewBinding(key.WithKeys("up", "down", "left", "right", "k", "j", "h", "l"), key.WithHelp("↑↓←→", "move")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		PrevTeam: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev team")),
		NextTeam: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next team")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) overviewHelp() []key.Binding {
	return []key.Binding{k.Move, k.Select, k.Search, k.Quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Move, k.PrevTeam, k.NextTeam, k.Back, k.Quit}
}

func (k keyMap) errorHelp() []key.Binding {
	return []key.Binding{k.Retry, k.Quit}
}
