// Package sdlui renders the navigation demo in an SDL2 window, driven by a
// keyboard, a game controller or a handheld's hardware back button.
package sdlui

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/BrandonKowalski/navigator/pkg/navigator/router"
	"github.com/BrandonKowalski/navigator/pkg/navigator/screens"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Options configures the SDL frontend.
type Options struct {
	Title          string         // Window title displayed in windowed mode
	Width          int32          // Logical width, 0 uses the display size
	Height         int32          // Logical height, 0 uses the display size
	Window         WindowOptions  // SDL window flags
	ShowBackground bool           // Draw the theme background image
	FontSize       int            // Body text point size
	Theme          internal.Theme // Colors and font
	BackDevice     string         // evdev device reporting the hardware back key, empty disables
	BackKeyCode    uint16         // Key code of the hardware back key
}

type app struct {
	demo        *screens.Demo
	window      *Window
	screen      *screenRenderer
	input       *inputProcessor
	directional internal.DirectionalInput
	theme       internal.Theme
	backEvent   uint32

	keyboard      *screens.Keyboard // On-screen keyboard, nil while closed
	generation    uint64
	textInput     bool
	cursorVisible bool
	lastBlink     time.Time
	lastMove      time.Time
}

// Run opens the window and shows the demo until the user backs out of the
// start screen, closes the window or ctx is cancelled.
func Run(ctx context.Context, demo *screens.Demo, tr screens.Translator, opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := initSDL(); err != nil {
		return err
	}
	defer quitSDL()

	window, err := newWindow(opts)
	if err != nil {
		return err
	}
	defer window.Close()

	f, err := openFonts(opts.FontSize, opts.Theme.FontPath)
	if err != nil {
		return err
	}
	defer f.Close()

	a := &app{
		demo:          demo,
		window:        window,
		screen:        newScreenRenderer(window.Renderer, f, opts.Theme, tr),
		input:         newInputProcessor(),
		directional:   internal.NewDirectionalInput(),
		theme:         opts.Theme,
		generation:    demo.Router().Generation(),
		cursorVisible: true,
		lastBlink:     time.Now(),
	}
	defer a.screen.Destroy()
	defer a.input.Close()
	defer sdl.StopTextInput()

	if opts.BackDevice != "" && !constants.IsDevMode() {
		if back := a.watchBackButton(opts.BackDevice, opts.BackKeyCode); back != nil {
			defer back.Close()
		}
	}

	a.loop(ctx)
	return nil
}

func initSDL() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("init ttf: %w", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		internal.GetInternalLogger().Warn("Image support unavailable", "error", err)
	}
	return nil
}

func quitSDL() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

// watchBackButton forwards hardware back presses into the SDL event queue.
func (a *app) watchBackButton(device string, code uint16) *internal.BackButton {
	a.backEvent = sdl.RegisterEvents(1)
	if a.backEvent == ^uint32(0) {
		a.backEvent = 0
		internal.GetInternalLogger().Error("No SDL user events left for the back button")
		return nil
	}

	eventType := a.backEvent
	back, err := internal.OpenBackButton(device, code, func() {
		sdl.PushEvent(&sdl.UserEvent{Type: eventType, Timestamp: sdl.GetTicks()})
	})
	if err != nil {
		internal.GetInternalLogger().Warn("Back button device unavailable", "device", device, "error", err)
		return nil
	}
	return back
}

func (a *app) loop(ctx context.Context) {
	for ctx.Err() == nil {
		if a.handleEvents() {
			return
		}

		a.handleDirectionalRepeats()
		a.syncScreen()
		a.updateCursorBlink()
		a.render()
	}
}

func (a *app) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.UserEvent:
			if a.backEvent == 0 || e.Type != a.backEvent {
				continue
			}
			if a.keyboard != nil {
				a.closeKeyboard()
			} else if a.back() {
				return true
			}

		case *sdl.TextInputEvent:
			if a.inputFocused() {
				a.demo.Text().Insert(e.GetText())
				a.showCursor()
			}

		case *sdl.ControllerDeviceEvent:
			a.input.handleDevice(e)

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent:
			inputEvent := a.input.process(event)
			if inputEvent == nil {
				continue
			}

			if inputEvent.Pressed {
				if a.handleInputEvent(inputEvent) {
					return true
				}
			} else {
				a.directional.SetHeld(inputEvent.Button, false)
			}
		}
	}
	return false
}

// handleInputEvent reacts to a press and reports whether the app should exit.
func (a *app) handleInputEvent(inputEvent *inputEvent) bool {
	if a.keyboard != nil {
		a.handleKeyboardInput(inputEvent)
		return false
	}

	if inputEvent.Edit != editNone && a.inputFocused() {
		a.edit(inputEvent.Edit)
		return false
	}

	switch inputEvent.Button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown:
		if inputEvent.Repeat || !a.debounce() {
			return false
		}
		a.directional.SetHeld(inputEvent.Button, true)
		a.moveFocus(inputEvent.Button)
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		if inputEvent.Repeat {
			return false
		}
		if inputEvent.Controller && inputEvent.Button == constants.VirtualButtonA && a.inputFocused() {
			a.openKeyboard()
			return false
		}
		if err := a.demo.Activate(); err != nil {
			internal.GetInternalLogger().Error("Button press failed", "error", err)
		}
	case constants.VirtualButtonB:
		if inputEvent.Repeat {
			return false
		}
		return a.back()
	}
	return false
}

// handleKeyboardInput drives the on-screen keyboard while it is open.
func (a *app) handleKeyboardInput(inputEvent *inputEvent) {
	if inputEvent.Repeat {
		return
	}

	switch inputEvent.Button {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		if !a.debounce() {
			return
		}
		a.directional.SetHeld(inputEvent.Button, true)
		a.moveKey(inputEvent.Button)
	case constants.VirtualButtonA:
		if a.keyboard.Press() {
			a.closeKeyboard()
			return
		}
		a.showCursor()
	case constants.VirtualButtonB, constants.VirtualButtonStart:
		a.closeKeyboard()
	default:
		if inputEvent.Edit != editNone {
			a.edit(inputEvent.Edit)
		}
	}
}

// debounce reports whether enough time has passed since the last move.
func (a *app) debounce() bool {
	now := time.Now()
	if now.Sub(a.lastMove) < constants.DefaultInputDelay {
		return false
	}
	a.lastMove = now
	return true
}

func (a *app) openKeyboard() {
	a.keyboard = screens.NewKeyboard(a.demo.Text())
	a.directional.Reset()
	a.showCursor()
}

func (a *app) closeKeyboard() {
	a.keyboard = nil
	a.directional.Reset()
}

func (a *app) moveKey(button constants.VirtualButton) {
	switch button {
	case constants.VirtualButtonUp:
		a.keyboard.Move(-1, 0)
	case constants.VirtualButtonDown:
		a.keyboard.Move(1, 0)
	case constants.VirtualButtonLeft:
		a.keyboard.Move(0, -1)
	case constants.VirtualButtonRight:
		a.keyboard.Move(0, 1)
	}
}

// back pops the visible screen and reports whether it was the start screen.
func (a *app) back() bool {
	err := a.demo.Back()
	if err == nil {
		return false
	}
	if router.IsEmptyStack(err) {
		return true
	}
	internal.GetInternalLogger().Error("Back navigation failed", "error", err)
	return false
}

func (a *app) moveFocus(button constants.VirtualButton) {
	delta := 1
	if button == constants.VirtualButtonUp {
		delta = -1
	}
	if _, err := a.demo.MoveFocus(delta); err != nil {
		internal.GetInternalLogger().Error("Focus move failed", "error", err)
	}
}

func (a *app) handleDirectionalRepeats() {
	direction := a.directional.Update()
	if a.keyboard != nil {
		a.moveKey(direction.VirtualButton())
		return
	}

	switch direction {
	case internal.DirectionUp:
		a.moveFocus(constants.VirtualButtonUp)
	case internal.DirectionDown:
		a.moveFocus(constants.VirtualButtonDown)
	}
}

func (a *app) edit(key editKey) {
	field := a.demo.Text()
	switch key {
	case editBackspace:
		field.Backspace()
	case editDelete:
		field.Delete()
	case editLeft:
		field.MoveLeft()
	case editRight:
		field.MoveRight()
	case editHome:
		field.Home()
	case editEnd:
		field.End()
	}
	a.showCursor()
}

func (a *app) inputFocused() bool {
	view, err := a.demo.View()
	if err != nil {
		return false
	}
	return view.InputFocused(a.demo.Focus())
}

// syncScreen resets per-screen input state after navigation and turns SDL
// text input on only while the field has focus.
func (a *app) syncScreen() {
	if generation := a.demo.Router().Generation(); generation != a.generation {
		a.generation = generation
		a.keyboard = nil
		a.directional.Reset()
		a.showCursor()
	}

	focused := a.inputFocused()
	if !focused {
		a.keyboard = nil
	}
	switch {
	case focused && !a.textInput:
		sdl.StartTextInput()
		a.textInput = true
	case !focused && a.textInput:
		sdl.StopTextInput()
		a.textInput = false
	}
}

func (a *app) showCursor() {
	a.cursorVisible = true
	a.lastBlink = time.Now()
}

func (a *app) updateCursorBlink() {
	if time.Since(a.lastBlink) >= constants.DefaultCursorBlinkRate {
		a.cursorVisible = !a.cursorVisible
		a.lastBlink = time.Now()
	}
}

func (a *app) render() {
	a.window.Clear(a.theme.BackgroundColor)
	a.window.RenderBackground()

	view, err := a.demo.View()
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render screen", "error", err)
	} else {
		width, height := a.window.Size()
		if a.keyboard != nil && view.Input != nil {
			a.screen.drawKeyboard(view, a.keyboard, a.cursorVisible, width, height)
		} else {
			a.screen.draw(view, a.demo.Focus(), a.cursorVisible, width, height)
		}
	}

	a.window.Present()
}
