package tui

import (
	"testing"

	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/BrandonKowalski/navigator/pkg/navigator/platform/cannoli"
	"github.com/BrandonKowalski/navigator/pkg/navigator/screens"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Model, *screens.Demo) {
	t.Helper()

	loc, err := internal.NewLocalizer("en")
	require.NoError(t, err)

	demo, err := screens.NewDemo(loc, nil)
	require.NoError(t, err)

	return New(demo, loc, cannoli.InitCannoliTheme(cannoli.DefaultFontPath)), demo
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)

		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_TypeAndSubmit(t *testing.T) {
	m, demo := newTestModel(t)

	m, _ = send(t, m, runes("hello"), enter)

	entry, err := demo.Router().Current()
	require.NoError(t, err)
	assert.Equal(t, "SecondScreen/hello", entry.Path)
	assert.Equal(t, "hello", demo.Text().Value())
	assert.Contains(t, m.View(), "Text from previous screen: hello")
}

func TestModel_SubmitBlank(t *testing.T) {
	m, demo := newTestModel(t)

	m, _ = send(t, m, runes("   "), enter)

	entry, err := demo.Router().Current()
	require.NoError(t, err)
	assert.Equal(t, "SecondScreen/Empty", entry.Path)
	assert.Contains(t, m.View(), "Text from previous screen: Empty")
}

func TestModel_KeysIgnoredWhenButtonFocused(t *testing.T) {
	m, demo := newTestModel(t)

	m, _ = send(t, m, tab, runes("x"))

	assert.Equal(t, 1, demo.Focus())
	assert.Empty(t, demo.Text().Value())
	assert.Empty(t, m.input.Value())
}

func TestModel_FullRoundTrip(t *testing.T) {
	m, demo := newTestModel(t)

	m, _ = send(t, m, runes("abc"), enter)
	require.Equal(t, 2, demo.Router().Depth())

	// second screen: focus the forward button
	m, _ = send(t, m, down, enter)
	require.Equal(t, 3, demo.Router().Depth())
	assert.Contains(t, m.View(), "Third screen")

	// third screen: home button
	m, _ = send(t, m, down, enter)
	assert.Equal(t, 1, demo.Router().Depth())
	assert.Contains(t, m.View(), "First screen")
	assert.Equal(t, "abc", m.input.Value())
	assert.True(t, m.input.Focused())
}

func TestModel_FocusWraps(t *testing.T) {
	m, demo := newTestModel(t)

	m, _ = send(t, m, runes("a"), enter)
	require.Equal(t, 0, demo.Focus())

	m, _ = send(t, m, up)
	assert.Equal(t, 1, demo.Focus())

	_, _ = send(t, m, down)
	assert.Equal(t, 0, demo.Focus())
}

func TestModel_BackPopsThenQuits(t *testing.T) {
	m, demo := newTestModel(t)

	m, _ = send(t, m, enter)
	require.Equal(t, 2, demo.Router().Depth())

	m, _ = send(t, m, esc)
	assert.Equal(t, 1, demo.Router().Depth())
	assert.True(t, m.input.Focused())

	_, cmd := send(t, m, esc)
	assertQuit(t, cmd)
	assert.Equal(t, 1, demo.Router().Depth())
}

func TestModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assertQuit(t, cmd)
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
	assert.Contains(t, m.View(), "First screen")
}

func TestModel_ViewShowsHelp(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Type something")
	assert.Contains(t, view, "Go to second screen")
	assert.Contains(t, view, "Quit")
}
