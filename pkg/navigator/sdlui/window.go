package sdlui

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions are the window settings taken from the configuration.
type WindowOptions struct {
	Fullscreen bool
	Borderless bool
	Resizable  bool
}

// flags returns the SDL window flags. Development mode always opens a
// decorated, resizable window.
func (wo WindowOptions) flags(devMode bool) uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)
	if devMode {
		return flags | sdl.WINDOW_RESIZABLE
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	return flags
}

// Window wraps the SDL window and renderer.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Background      *sdl.Texture
	width           int32
	height          int32
	hasVSync        bool
	lastPresentTime uint64
}

// resolveSize picks the logical window size. Explicit sizes win, then the
// development mode environment overrides, then the display mode.
func resolveSize(width, height int32, display func() (int32, int32, error)) (int32, int32) {
	if constants.IsDevMode() {
		if width == 0 {
			width = envSize(constants.WindowWidthEnvVar, constants.DefaultWindowWidth)
		}
		if height == 0 {
			height = envSize(constants.WindowHeightEnvVar, constants.DefaultWindowHeight)
		}
	}

	if width > 0 && height > 0 {
		return width, height
	}

	w, h, err := display()
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
		w, h = constants.DefaultWindowWidth, constants.DefaultWindowHeight
	}
	if width <= 0 {
		width = w
	}
	if height <= 0 {
		height = h
	}
	return width, height
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "env", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func displaySize() (int32, int32, error) {
	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		return 0, 0, err
	}
	return mode.W, mode.H, nil
}

func newWindow(opts Options) (*Window, error) {
	width, height := resolveSize(opts.Width, opts.Height, displaySize)

	devMode := constants.IsDevMode()
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if devMode {
		x, y = 50, 50
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title, x, y, width, height, opts.Window.flags(devMode))
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	if err := renderer.SetLogicalSize(width, height); err != nil {
		internal.GetInternalLogger().Warn("Failed to set logical size", "error", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   window,
		Renderer: renderer,
		width:    width,
		height:   height,
		hasVSync: vsync,
	}

	if opts.ShowBackground {
		win.loadBackground(opts.Theme.BackgroundImagePath)
	}

	return win, nil
}

func (w *Window) loadBackground(path string) {
	if v := os.Getenv(constants.BackgroundPathEnvVar); v != "" {
		path = v
	}
	if path == "" {
		return
	}

	texture, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	w.Background = texture
}

// Size returns the logical drawing size.
func (w *Window) Size() (int32, int32) {
	return w.width, w.height
}

// Clear fills the frame with a 0xRRGGBB color.
func (w *Window) Clear(color uint32) {
	r, g, b, a := internal.HexToRGBA(color)
	w.Renderer.SetDrawColor(r, g, b, a)
	w.Renderer.Clear()
}

func (w *Window) RenderBackground() {
	if w.Background != nil {
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{X: 0, Y: 0, W: w.width, H: w.height})
	}
}

// Present swaps the render buffer and holds ~60fps when VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) Close() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}
