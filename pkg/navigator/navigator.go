// Package navigator runs a small three-screen sample that shows stack based
// navigation between screens: forward with an argument, back, and back to
// the start screen.
//
// The router lives in the router package and knows nothing about drawing.
// Run wires it to the demo screens and hands them to one of two frontends,
// an SDL2 window for handheld Linux devices or a terminal UI.
package navigator

import (
	"context"
	"fmt"
	"strings"

	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/BrandonKowalski/navigator/pkg/navigator/platform/cannoli"
	"github.com/BrandonKowalski/navigator/pkg/navigator/screens"
	"github.com/BrandonKowalski/navigator/pkg/navigator/sdlui"
	"github.com/BrandonKowalski/navigator/pkg/navigator/tui"
)

// Frontend selects how screens are drawn.
type Frontend string

const (
	FrontendSDL Frontend = "sdl" // SDL2 window
	FrontendTUI Frontend = "tui" // Terminal UI
)

// ParseFrontend parses a frontend name, ignoring case and surrounding space.
func ParseFrontend(raw string) (Frontend, error) {
	switch f := Frontend(strings.ToLower(strings.TrimSpace(raw))); f {
	case FrontendSDL, FrontendTUI:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFrontend, raw)
	}
}

// Options configures Run.
type Options struct {
	Frontend             Frontend            // Which frontend draws the screens
	Locale               string              // BCP 47 language tag for screen text
	LogLevel             string              // debug, info, warn or error
	LogPath              string              // Full path of the log file, empty logs to stdout only
	WindowTitle          string              // Window title displayed in windowed mode
	Width                int32               // Window width, 0 uses the display size
	Height               int32               // Window height, 0 uses the display size
	WindowOptions        sdlui.WindowOptions // SDL window flags
	ShowBackground       bool                // Whether to render the theme background
	PrimaryThemeColorHex uint32              // Custom accent color
	FontPath             string              // Font file, empty uses the Cannoli font
	FontSize             int                 // Body text point size
	BackDevice           string              // evdev device of the hardware back key, empty disables
	BackKeyCode          uint16              // Key code of the hardware back key
}

// Run shows the demo until the user exits from the first screen or ctx is
// cancelled.
func Run(ctx context.Context, options Options) error {
	frontend, err := ParseFrontend(string(options.Frontend))
	if err != nil {
		return newFrontendError(options.Frontend, "start", err)
	}
	options.Frontend = frontend

	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	// The terminal frontend owns stdout.
	internal.SetConsoleLogging(options.Frontend != FrontendTUI)
	defer internal.CloseLogger()

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
		internal.SetRawInternalLogLevel(options.LogLevel)
	}

	logger := internal.GetLogger()

	localizer, err := internal.NewLocalizer(options.Locale)
	if err != nil {
		return newFrontendError(options.Frontend, "localize", err)
	}

	theme := buildTheme(options)
	internal.SetTheme(theme)

	demo, err := screens.NewDemo(localizer, logger)
	if err != nil {
		return newFrontendError(options.Frontend, "routes", err)
	}

	logger.Info("Starting navigator",
		"frontend", options.Frontend,
		"language", localizer.Language().String(),
		"dev_mode", constants.IsDevMode())

	switch options.Frontend {
	case FrontendSDL:
		err = sdlui.Run(ctx, demo, localizer, sdlui.Options{
			Title:          options.WindowTitle,
			Width:          options.Width,
			Height:         options.Height,
			Window:         options.WindowOptions,
			ShowBackground: options.ShowBackground,
			FontSize:       options.FontSize,
			Theme:          theme,
			BackDevice:     options.BackDevice,
			BackKeyCode:    options.BackKeyCode,
		})
	case FrontendTUI:
		err = tui.Run(ctx, demo, localizer, theme)
	}

	if err != nil {
		return newFrontendError(options.Frontend, "run", err)
	}

	logger.Info("Navigator exited", "depth", demo.Router().Depth())
	return nil
}

// buildTheme builds the Cannoli theme with the font and accent overrides of options.
func buildTheme(options Options) internal.Theme {
	fontPath := options.FontPath
	if fontPath == "" {
		fontPath = cannoli.DefaultFontPath
	}

	theme := cannoli.InitCannoliTheme(fontPath)
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = options.PrimaryThemeColorHex
	}
	return theme
}

// RouteInfo describes one registered demo route.
type RouteInfo struct {
	Pattern string   // Route pattern, e.g. "SecondScreen/{customValue}"
	Slots   []string // Parameter slot names in order
	Start   bool     // Whether the demo starts on this route
}

// Routes lists the demo's route table in pattern order.
func Routes() ([]RouteInfo, error) {
	localizer, err := internal.NewLocalizer("")
	if err != nil {
		return nil, err
	}

	demo, err := screens.NewDemo(localizer, nil)
	if err != nil {
		return nil, err
	}

	start, err := demo.Router().Current()
	if err != nil {
		return nil, err
	}

	var out []RouteInfo
	for _, route := range demo.Router().Routes() {
		out = append(out, RouteInfo{
			Pattern: route.Pattern(),
			Slots:   route.Slots(),
			Start:   route.Pattern() == start.Pattern,
		})
	}
	return out, nil
}
