package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	// nil args would make cobra read os.Args
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// stubRun records the options the root command would run with.
func stubRun(t *testing.T) *navigator.Options {
	t.Helper()

	got := new(navigator.Options)
	prev := runFunc
	runFunc = func(_ context.Context, opts navigator.Options) error {
		*got = opts
		return nil
	}
	t.Cleanup(func() { runFunc = prev })
	return got
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "navexample v"+Version)
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("test")

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRoutesCommand(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)

	assert.Contains(t, out, "PATTERN")
	assert.Contains(t, out, "FirstScreen")
	assert.Contains(t, out, "SecondScreen/{customValue}")
	assert.Contains(t, out, "customValue")
	assert.Contains(t, out, "ThirdScreen")
	assert.Contains(t, out, "yes")
}

func TestRootCommand_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	got := stubRun(t)

	_, err := execute(t)
	require.NoError(t, err)

	assert.Equal(t, navigator.FrontendSDL, got.Frontend)
	assert.Equal(t, "en", got.Locale)
	assert.Equal(t, "info", got.LogLevel)
	assert.Equal(t, uint16(158), got.BackKeyCode)
	assert.True(t, got.ShowBackground)
	assert.True(t, got.WindowOptions.Resizable)
	assert.Zero(t, got.PrimaryThemeColorHex)
}

func TestRootCommand_Flags(t *testing.T) {
	t.Chdir(t.TempDir())
	got := stubRun(t)

	_, err := execute(t,
		"--frontend", "tui",
		"--locale", "es",
		"--window-width", "640",
		"--window-height", "480",
		"--fullscreen",
		"--accent-color", "#ff8800",
		"--back-device", "/dev/input/event3",
	)
	require.NoError(t, err)

	assert.Equal(t, navigator.FrontendTUI, got.Frontend)
	assert.Equal(t, "es", got.Locale)
	assert.Equal(t, int32(640), got.Width)
	assert.Equal(t, int32(480), got.Height)
	assert.True(t, got.WindowOptions.Fullscreen)
	assert.False(t, got.WindowOptions.Resizable)
	assert.Equal(t, uint32(0xFF8800), got.PrimaryThemeColorHex)
	assert.Equal(t, "/dev/input/event3", got.BackDevice)
}

func TestRootCommand_EnvOverridesDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NAVEXAMPLE_FRONTEND", "tui")
	got := stubRun(t)

	_, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, navigator.FrontendTUI, got.Frontend)
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	got := stubRun(t)

	_, err := execute(t, "--frontend", "gtk", "--font-size", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "frontend")
	assert.Contains(t, err.Error(), "font_size")
	assert.Empty(t, got.Frontend, "demo must not start")
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	stubRun(t)

	_, err := execute(t, "extra")
	require.Error(t, err)
}
