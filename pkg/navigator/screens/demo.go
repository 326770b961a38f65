package screens

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/BrandonKowalski/navigator/pkg/navigator/router"
)

// Translator looks up a localized string by message id.
type Translator interface {
	T(id string, data map[string]any) string
}

// focusState is the resume state stored on each back stack entry.
type focusState struct {
	index int
}

// Demo is the three-screen navigation sample bound to a started router.
type Demo struct {
	router *router.Router
	text   *TextField
	tr     Translator
	logger *slog.Logger
}

// NewDemo registers the demo screens and starts at FirstScreen.
func NewDemo(tr Translator, logger *slog.Logger) (*Demo, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	d := &Demo{
		router: router.New(router.WithLogger(logger)),
		text:   NewTextField(constants.DefaultTextFieldMaxRune),
		tr:     tr,
		logger: logger,
	}

	routes := []struct {
		pattern string
		render  router.RenderFunc
	}{
		{FirstScreen, d.firstScreen},
		{SecondScreen, d.secondScreen},
		{ThirdScreen, d.thirdScreen},
	}
	for _, route := range routes {
		if err := d.router.Register(route.pattern, route.render); err != nil {
			return nil, err
		}
	}

	d.router.OnDestinationChanged(func(c router.Change) {
		from := ""
		if c.From != nil {
			from = c.From.Path
		}
		d.logger.Info("Destination changed", "op", c.Op, "from", from, "to", c.To.Path)
	})

	if err := d.router.Start(FirstScreen); err != nil {
		return nil, err
	}
	return d, nil
}

// Router returns the demo's router.
func (d *Demo) Router() *router.Router {
	return d.router
}

// Text returns the first screen's text field.
func (d *Demo) Text() *TextField {
	return d.text
}

// View renders the visible screen.
func (d *Demo) View() (*View, error) {
	rendered, err := d.router.Render()
	if err != nil {
		return nil, err
	}
	view, ok := rendered.(*View)
	if !ok {
		return nil, fmt.Errorf("screens: route rendered %T, want *View", rendered)
	}
	return view, nil
}

// Back pops the visible screen. On the start screen it returns an error
// satisfying router.IsEmptyStack, which frontends treat as a request to exit.
func (d *Demo) Back() error {
	return d.router.Pop()
}

// Focus returns the focus index saved on the visible entry.
func (d *Demo) Focus() int {
	entry, err := d.router.Current()
	if err != nil {
		return 0
	}
	if state, ok := entry.Resume.(focusState); ok {
		return state.index
	}
	return 0
}

// SetFocus saves the focus index on the visible entry.
func (d *Demo) SetFocus(index int) error {
	return d.router.SetResume(focusState{index: index})
}

// MoveFocus moves focus by delta, wrapping around the focusable elements.
func (d *Demo) MoveFocus(delta int) (int, error) {
	view, err := d.View()
	if err != nil {
		return 0, err
	}

	n := view.FocusCount()
	if n == 0 {
		return 0, nil
	}

	index := ((d.Focus()+delta)%n + n) % n
	return index, d.SetFocus(index)
}

// Activate presses the focused element. With the input focused the first
// button is pressed, so confirming the text submits it.
func (d *Demo) Activate() error {
	view, err := d.View()
	if err != nil {
		return err
	}

	focus := d.Focus()
	if view.InputFocused(focus) {
		focus++
	}

	button, ok := view.ButtonAt(focus)
	if !ok {
		return nil
	}

	d.logger.Debug("Button pressed", "route", view.Route, "button", button.ID)
	return button.Press()
}

func (d *Demo) firstScreen(router.Params) any {
	return &View{
		Route:       FirstScreen,
		Title:       d.tr.T("FirstScreenTitle", nil),
		Input:       d.text,
		Placeholder: d.tr.T("TextFieldPlaceholder", nil),
		Buttons: []Button{
			{
				ID:    "first.next",
				Label: d.tr.T("GoToSecondScreen", nil),
				Icon:  internal.IconForward,
				Press: func() error {
					return d.router.NavigateTo(SecondScreenPath(d.text.Value()))
				},
			},
		},
	}
}

func (d *Demo) secondScreen(params router.Params) any {
	return &View{
		Route: SecondScreen,
		Title: d.tr.T("SecondScreenTitle", nil),
		Lines: []string{
			d.tr.T("TextFromPreviousScreen", map[string]any{"Text": params[SecondScreenValue]}),
		},
		Buttons: []Button{
			{
				ID:    "second.back",
				Label: d.tr.T("BackToFirstScreen", nil),
				Icon:  internal.IconBack,
				Press: d.router.Pop,
			},
			{
				ID:    "second.next",
				Label: d.tr.T("GoToThirdScreen", nil),
				Icon:  internal.IconForward,
				Press: func() error {
					return d.router.Navigate(ThirdScreen, nil)
				},
			},
		},
	}
}

func (d *Demo) thirdScreen(router.Params) any {
	return &View{
		Route: ThirdScreen,
		Title: d.tr.T("ThirdScreenTitle", nil),
		Buttons: []Button{
			{
				ID:    "third.back",
				Label: d.tr.T("BackToSecondScreen", nil),
				Icon:  internal.IconBack,
				Press: d.router.Pop,
			},
			{
				ID:    "third.home",
				Label: d.tr.T("BackToFirstScreen", nil),
				Icon:  internal.IconHome,
				Press: func() error {
					_, err := d.router.PopTo(FirstScreen, false)
					return err
				},
			},
		},
	}
}
