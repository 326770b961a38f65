// Package config loads navexample settings from defaults, a YAML file,
// NAVEXAMPLE_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "NAVEXAMPLE_"

// DefaultConfigFiles are looked up in the working directory when no
// explicit file is given.
var DefaultConfigFiles = []string{"navexample.yaml", "navexample.yml"}

// Frontends accepted by Validate.
var Frontends = []string{"sdl", "tui"}

// Defaults for settings not given anywhere else.
const (
	DefaultFrontend    = "sdl"
	DefaultLocale      = "en"
	DefaultLogLevel    = "info"
	DefaultWindowTitle = "Navigator"
	DefaultFontSize    = 28
	DefaultBackKeyCode = 158 // Linux KEY_BACK
)

// Config holds all navexample settings.
type Config struct {
	Frontend       string `koanf:"frontend"`
	Locale         string `koanf:"locale"`
	LogLevel       string `koanf:"log_level"`
	LogPath        string `koanf:"log_path"`
	WindowTitle    string `koanf:"window_title"`
	WindowWidth    int    `koanf:"window_width"`
	WindowHeight   int    `koanf:"window_height"`
	Fullscreen     bool   `koanf:"fullscreen"`
	Borderless     bool   `koanf:"borderless"`
	ShowBackground bool   `koanf:"show_background"`
	AccentColor    string `koanf:"accent_color"`
	FontPath       string `koanf:"font_path"`
	FontSize       int    `koanf:"font_size"`
	BackDevice     string `koanf:"back_device"`
	BackKeyCode    int    `koanf:"back_key_code"`

	// File is the config file that was read, empty when none was found.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"frontend":        DefaultFrontend,
		"locale":          DefaultLocale,
		"log_level":       DefaultLogLevel,
		"log_path":        "",
		"window_title":    DefaultWindowTitle,
		"window_width":    0,
		"window_height":   0,
		"fullscreen":      false,
		"borderless":      false,
		"show_background": true,
		"accent_color":    "",
		"font_path":       "",
		"font_size":       DefaultFontSize,
		"back_device":     "",
		"back_key_code":   DefaultBackKeyCode,
	}
}

// findConfigFile returns explicit, or the first default file present.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range DefaultConfigFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: NAVEXAMPLE_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	cfg.Frontend = strings.ToLower(strings.TrimSpace(cfg.Frontend))

	return &cfg, nil
}

// Validate checks the configuration, reporting every problem found.
func (c *Config) Validate() error {
	var errs []error

	if !validFrontend(c.Frontend) {
		errs = append(errs, fmt.Errorf("frontend %q must be one of %s", c.Frontend, strings.Join(Frontends, ", ")))
	}

	if strings.TrimSpace(c.Locale) != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			errs = append(errs, fmt.Errorf("locale %q: %w", c.Locale, err))
		}
	}

	if !validLogLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level %q must be debug, info, warn or error", c.LogLevel))
	}

	switch {
	case c.WindowWidth < 0 || c.WindowHeight < 0:
		errs = append(errs, fmt.Errorf("window size %dx%d must not be negative", c.WindowWidth, c.WindowHeight))
	case int64(c.WindowWidth) > math.MaxInt32 || int64(c.WindowHeight) > math.MaxInt32:
		errs = append(errs, fmt.Errorf("window size %dx%d exceeds %d", c.WindowWidth, c.WindowHeight, math.MaxInt32))
	}

	if c.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font_size %d must be positive", c.FontSize))
	}

	if c.BackKeyCode < 0 || c.BackKeyCode > 0xFFFF {
		errs = append(errs, fmt.Errorf("back_key_code %d out of range", c.BackKeyCode))
	}

	if _, err := c.AccentColorHex(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// AccentColorHex parses AccentColor ("#rrggbb", "rrggbb" or "0xrrggbb").
// An empty value yields 0, meaning the theme default.
func (c *Config) AccentColorHex() (uint32, error) {
	raw := strings.TrimSpace(c.AccentColor)
	if raw == "" {
		return 0, nil
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(raw), "#"), "0x")
	if len(hex) != 6 {
		return 0, fmt.Errorf("accent_color %q must have six hex digits", c.AccentColor)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("accent_color %q: %w", c.AccentColor, err)
	}
	return uint32(v), nil
}

func validFrontend(frontend string) bool {
	for _, f := range Frontends {
		if frontend == f {
			return true
		}
	}
	return false
}

func validLogLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
