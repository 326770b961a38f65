package main

import (
	"fmt"

	"github.com/BrandonKowalski/navigator/internal/config"
	"github.com/BrandonKowalski/navigator/pkg/navigator"
	"github.com/BrandonKowalski/navigator/pkg/navigator/sdlui"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

// runFunc starts the demo; tests replace it.
var runFunc = navigator.Run

// NewRootCmd creates the root command, which runs the demo.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "navexample",
		Short: "Navigate between three screens",
		Long: `navexample shows stack based navigation between three screens.

Type a value on the first screen and carry it to the second, continue to the
third, then go back one screen at a time or straight to the first screen.
Backing out of the first screen exits.

Settings come from flags, NAVEXAMPLE_* environment variables and
navexample.yaml, in that order of precedence.`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			opts, err := optionsFromConfig(cfg)
			if err != nil {
				return err
			}
			return runFunc(cmd.Context(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./navexample.yaml)")
	flags.StringP("frontend", "f", config.DefaultFrontend, "Frontend to draw with (sdl|tui)")
	flags.StringP("locale", "l", config.DefaultLocale, "Language of the screen text (e.g. en, es, de)")
	flags.String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	flags.String("log-path", "", "Log file path")
	flags.String("window-title", config.DefaultWindowTitle, "Window title")
	flags.Int("window-width", 0, "Window width in pixels (0 uses the display size)")
	flags.Int("window-height", 0, "Window height in pixels (0 uses the display size)")
	flags.Bool("fullscreen", false, "Open the window fullscreen")
	flags.Bool("borderless", false, "Open the window without decorations")
	flags.Bool("show-background", true, "Draw the theme background image")
	flags.String("accent-color", "", "Accent color as #rrggbb")
	flags.String("font-path", "", "TTF font file")
	flags.Int("font-size", config.DefaultFontSize, "Body text point size")
	flags.String("back-device", "", "evdev device reporting the hardware back key")
	flags.Int("back-key-code", config.DefaultBackKeyCode, "Key code of the hardware back key")

	_ = rootCmd.RegisterFlagCompletionFunc("frontend", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Frontends, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewRoutesCommand())
	rootCmd.AddCommand(NewVersionCommand(Version))

	return rootCmd
}

func optionsFromConfig(cfg *config.Config) (navigator.Options, error) {
	frontend, err := navigator.ParseFrontend(cfg.Frontend)
	if err != nil {
		return navigator.Options{}, err
	}

	accent, err := cfg.AccentColorHex()
	if err != nil {
		return navigator.Options{}, err
	}

	return navigator.Options{
		Frontend:    frontend,
		Locale:      cfg.Locale,
		LogLevel:    cfg.LogLevel,
		LogPath:     cfg.LogPath,
		WindowTitle: cfg.WindowTitle,
		Width:       int32(cfg.WindowWidth),
		Height:      int32(cfg.WindowHeight),
		WindowOptions: sdlui.WindowOptions{
			Borderless: cfg.Borderless,
			Fullscreen: cfg.Fullscreen,
			Resizable:  !cfg.Fullscreen,
		},
		ShowBackground:       cfg.ShowBackground,
		PrimaryThemeColorHex: accent,
		FontPath:             cfg.FontPath,
		FontSize:             cfg.FontSize,
		BackDevice:           cfg.BackDevice,
		BackKeyCode:          uint16(cfg.BackKeyCode),
	}, nil
}
