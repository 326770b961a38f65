package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.String("frontend", DefaultFrontend, "")
	flags.String("locale", DefaultLocale, "")
	flags.String("log-level", DefaultLogLevel, "")
	flags.Int("window-width", 0, "")
	flags.Bool("fullscreen", false, "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultFrontend, cfg.Frontend)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultWindowTitle, cfg.WindowTitle)
	assert.Equal(t, DefaultFontSize, cfg.FontSize)
	assert.Equal(t, DefaultBackKeyCode, cfg.BackKeyCode)
	assert.True(t, cfg.ShowBackground)
	assert.Empty(t, cfg.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "navexample.yaml", "frontend: tui\nlocale: es\n")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "tui", cfg.Frontend)
	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, "navexample.yaml", cfg.File)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeConfig(t, dir, "custom.yaml", `
frontend: tui
locale: de
log_level: warn
window_width: 640
window_height: 480
accent_color: "#ff8800"
`)

	t.Setenv("NAVEXAMPLE_LOCALE", "es")
	t.Setenv("NAVEXAMPLE_WINDOW_WIDTH", "800")
	t.Setenv("NAVEXAMPLE_FULLSCREEN", "true")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--window-width", "1024", "--log-level", "debug"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "tui", cfg.Frontend, "file beats defaults, unset flag ignored")
	assert.Equal(t, "es", cfg.Locale, "env beats file")
	assert.Equal(t, "debug", cfg.LogLevel, "flag beats file")
	assert.Equal(t, 1024, cfg.WindowWidth, "flag beats env")
	assert.Equal(t, 480, cfg.WindowHeight)
	assert.True(t, cfg.Fullscreen)

	accent, err := cfg.AccentColorHex()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF8800), accent)
}

func TestLoad_FrontendNormalized(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NAVEXAMPLE_FRONTEND", " TUI ")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "tui", cfg.Frontend)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("does-not-exist.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeConfig(t, dir, "bad.yaml", "frontend: [tui\n")

	_, err := Load(path, nil)
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Frontend:    "sdl",
			Locale:      "en",
			LogLevel:    "info",
			FontSize:    DefaultFontSize,
			BackKeyCode: DefaultBackKeyCode,
		}
	}

	tests := []struct {
		name      string
		mutate    func(c *Config)
		errSubstr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty locale", mutate: func(c *Config) { c.Locale = "" }},
		{name: "warning level", mutate: func(c *Config) { c.LogLevel = "WARNING" }},
		{name: "unknown frontend", mutate: func(c *Config) { c.Frontend = "gtk" }, errSubstr: "frontend"},
		{name: "bad locale", mutate: func(c *Config) { c.Locale = "not a locale" }, errSubstr: "locale"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, errSubstr: "log_level"},
		{name: "negative size", mutate: func(c *Config) { c.WindowHeight = -1 }, errSubstr: "window size"},
		{name: "oversized width", mutate: func(c *Config) { c.WindowWidth = int(int64(math.MaxInt32) + 1) }, errSubstr: "window size"},
		{name: "largest size", mutate: func(c *Config) { c.WindowWidth, c.WindowHeight = math.MaxInt32, math.MaxInt32 }},
		{name: "zero font size", mutate: func(c *Config) { c.FontSize = 0 }, errSubstr: "font_size"},
		{name: "key code range", mutate: func(c *Config) { c.BackKeyCode = 70000 }, errSubstr: "back_key_code"},
		{name: "short accent", mutate: func(c *Config) { c.AccentColor = "#fff" }, errSubstr: "accent_color"},
		{name: "non-hex accent", mutate: func(c *Config) { c.AccentColor = "zzzzzz" }, errSubstr: "accent_color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestLoad_OversizedWindowFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NAVEXAMPLE_WINDOW_WIDTH", "4294967936")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
}

func TestConfig_ValidateReportsAll(t *testing.T) {
	cfg := Config{Frontend: "gtk", LogLevel: "loud", FontSize: 0}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frontend")
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "font_size")
}

func TestConfig_AccentColorHex(t *testing.T) {
	tests := []struct {
		raw  string
		want uint32
	}{
		{"", 0},
		{"#008080", 0x008080},
		{"FF8800", 0xFF8800},
		{"0x00ff00", 0x00FF00},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			cfg := Config{AccentColor: tt.raw}
			got, err := cfg.AccentColorHex()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
