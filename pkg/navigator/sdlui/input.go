package sdlui

import (
	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// editKey is a text field editing action that has no virtual button.
type editKey int

const (
	editNone editKey = iota
	editBackspace
	editDelete
	editLeft
	editRight
	editHome
	editEnd
)

// inputEvent is a key or controller button mapped to a virtual button.
type inputEvent struct {
	Button     constants.VirtualButton
	Edit       editKey
	Pressed    bool
	Repeat     bool
	Controller bool // From a game controller rather than a keyboard
}

func mapKeycode(sym sdl.Keycode, mod uint16) (constants.VirtualButton, editKey) {
	switch sym {
	case sdl.K_UP:
		return constants.VirtualButtonUp, editNone
	case sdl.K_DOWN:
		return constants.VirtualButtonDown, editNone
	case sdl.K_TAB:
		if mod&sdl.KMOD_SHIFT != 0 {
			return constants.VirtualButtonUp, editNone
		}
		return constants.VirtualButtonDown, editNone
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft, editLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight, editRight
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return constants.VirtualButtonA, editNone
	case sdl.K_ESCAPE, sdl.K_AC_BACK:
		return constants.VirtualButtonB, editNone
	case sdl.K_BACKSPACE:
		return constants.VirtualButtonUnassigned, editBackspace
	case sdl.K_DELETE:
		return constants.VirtualButtonUnassigned, editDelete
	case sdl.K_HOME:
		return constants.VirtualButtonUnassigned, editHome
	case sdl.K_END:
		return constants.VirtualButtonUnassigned, editEnd
	default:
		return constants.VirtualButtonUnassigned, editNone
	}
}

func mapControllerButton(button sdl.GameControllerButton) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

// inputProcessor maps SDL events to inputEvents and tracks open controllers.
type inputProcessor struct {
	controllers map[sdl.JoystickID]*sdl.GameController
}

func newInputProcessor() *inputProcessor {
	p := &inputProcessor{controllers: make(map[sdl.JoystickID]*sdl.GameController)}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		p.open(i)
	}
	return p
}

func (p *inputProcessor) open(index int) {
	if !sdl.IsGameController(index) {
		return
	}

	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		internal.GetInternalLogger().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}

	id := controller.Joystick().InstanceID()
	p.controllers[id] = controller
	internal.GetInternalLogger().Debug("Controller connected", "name", controller.Name(), "id", id)
}

func (p *inputProcessor) handleDevice(e *sdl.ControllerDeviceEvent) {
	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		p.open(int(e.Which))
	case sdl.CONTROLLERDEVICEREMOVED:
		if controller, ok := p.controllers[e.Which]; ok {
			controller.Close()
			delete(p.controllers, e.Which)
			internal.GetInternalLogger().Debug("Controller disconnected", "id", e.Which)
		}
	}
}

// process maps event, returning nil for events without a mapping.
func (p *inputProcessor) process(event sdl.Event) *inputEvent {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button, edit := mapKeycode(e.Keysym.Sym, e.Keysym.Mod)
		if button == constants.VirtualButtonUnassigned && edit == editNone {
			return nil
		}
		return &inputEvent{
			Button:  button,
			Edit:    edit,
			Pressed: e.Type == sdl.KEYDOWN,
			Repeat:  e.Repeat != 0,
		}

	case *sdl.ControllerButtonEvent:
		button := mapControllerButton(sdl.GameControllerButton(e.Button))
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &inputEvent{
			Button:     button,
			Pressed:    e.State == sdl.PRESSED,
			Controller: true,
		}
	}
	return nil
}

func (p *inputProcessor) Close() {
	for id, controller := range p.controllers {
		controller.Close()
		delete(p.controllers, id)
	}
}
