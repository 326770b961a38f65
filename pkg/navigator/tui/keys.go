package tui

import (
	"github.com/BrandonKowalski/navigator/pkg/navigator/screens"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newKeyMap(tr screens.Translator) keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑/↓", tr.T("HintMove", nil)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tr.T("HintSelect", nil)),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", tr.T("HintBack", nil)),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", tr.T("HintQuit", nil)),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
