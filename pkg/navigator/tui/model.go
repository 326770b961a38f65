// Package tui renders the navigation demo in a terminal with bubbletea.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/BrandonKowalski/navigator/pkg/navigator/router"
	"github.com/BrandonKowalski/navigator/pkg/navigator/screens"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the bubbletea model driving a screens.Demo.
type Model struct {
	demo   *screens.Demo
	input  textinput.Model
	keys   keyMap
	help   help.Model
	styles Styles
	width  int
	height int
	err    error
}

// New creates a model for demo. tr localizes the key help.
func New(demo *screens.Demo, tr screens.Translator, theme internal.Theme) Model {
	input := textinput.New()
	input.Placeholder = tr.T("TextFieldPlaceholder", nil)
	input.CharLimit = constants.DefaultTextFieldMaxRune
	input.Prompt = ""
	input.SetValue(demo.Text().Value())

	m := Model{
		demo:   demo,
		input:  input,
		keys:   newKeyMap(tr),
		help:   help.New(),
		styles: NewStyles(theme),
	}
	m.syncFocus()
	return m
}

// Run shows the demo until the user quits or ctx is cancelled.
func Run(ctx context.Context, demo *screens.Demo, tr screens.Translator, theme internal.Theme) error {
	p := tea.NewProgram(New(demo, tr, theme), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			return m.back()
		case key.Matches(msg, m.keys.Up):
			return m.moveFocus(-1)
		case key.Matches(msg, m.keys.Down):
			return m.moveFocus(1)
		case key.Matches(msg, m.keys.Select):
			return m.activate()
		}

		if !m.inputFocused() {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != m.demo.Text().Value() {
			m.demo.Text().SetValue(m.input.Value())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) back() (tea.Model, tea.Cmd) {
	if err := m.demo.Back(); err != nil {
		if router.IsEmptyStack(err) {
			return m, tea.Quit
		}
		m.err = err
		return m, nil
	}
	return m, m.syncFocus()
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if _, err := m.demo.MoveFocus(delta); err != nil {
		m.err = err
		return m, nil
	}
	return m, m.syncFocus()
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	if err := m.demo.Activate(); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	return m, m.syncFocus()
}

func (m Model) inputFocused() bool {
	view, err := m.demo.View()
	if err != nil {
		return false
	}
	return view.InputFocused(m.demo.Focus())
}

// syncFocus focuses the text input only while the demo's focus is on it.
func (m *Model) syncFocus() tea.Cmd {
	if m.inputFocused() {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m Model) View() string {
	view, err := m.demo.View()
	if err != nil {
		return m.styles.Error.Render(err.Error())
	}

	focus := m.demo.Focus()
	parts := []string{m.styles.Title.Render(view.Title)}

	for _, line := range view.Lines {
		parts = append(parts, m.styles.Line.Render(line))
	}

	if view.Input != nil {
		style := m.styles.Input
		if view.InputFocused(focus) {
			style = m.styles.InputFocused
		}
		parts = append(parts, style.Render(m.input.View()))
	}

	for i := range view.Buttons {
		idx := i
		if view.Input != nil {
			idx++
		}

		b := view.Buttons[i]
		label := b.Label
		if glyph := b.Icon.Glyph(); glyph != "" {
			label = glyph + " " + label
		}

		style := m.styles.Button
		if idx == focus {
			style = m.styles.ButtonFocused
		}
		parts = append(parts, style.Render(label))
	}

	if m.err != nil {
		parts = append(parts, m.styles.Error.Render(m.err.Error()))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	content = lipgloss.JoinVertical(lipgloss.Center, content, "", m.help.View(m.keys))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return strings.TrimRight(content, "\n") + "\n"
}
