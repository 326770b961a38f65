package navigator

import (
	"context"
	"errors"
	"testing"

	"github.com/BrandonKowalski/navigator/pkg/navigator/platform/cannoli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontend(t *testing.T) {
	tests := []struct {
		raw     string
		want    Frontend
		wantErr bool
	}{
		{raw: "sdl", want: FrontendSDL},
		{raw: " TUI ", want: FrontendTUI},
		{raw: "gtk", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseFrontend(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFrontend)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_UnknownFrontend(t *testing.T) {
	err := Run(context.Background(), Options{Frontend: "gtk"})

	require.Error(t, err)
	assert.True(t, IsFrontendError(err))
	assert.ErrorIs(t, err, ErrUnknownFrontend)

	var frontendErr *FrontendError
	require.ErrorAs(t, err, &frontendErr)
	assert.Equal(t, "start", frontendErr.Op)
}

func TestRun_InvalidLocale(t *testing.T) {
	err := Run(context.Background(), Options{Frontend: FrontendTUI, Locale: "not a locale"})

	var frontendErr *FrontendError
	require.ErrorAs(t, err, &frontendErr)
	assert.Equal(t, FrontendTUI, frontendErr.Frontend)
	assert.Equal(t, "localize", frontendErr.Op)
}

func TestFrontendError(t *testing.T) {
	cause := errors.New("no display")
	err := newFrontendError(FrontendSDL, "run", cause)

	assert.Equal(t, "navigator: sdl: run: no display", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "navigator: sdl: run", newFrontendError(FrontendSDL, "run", nil).Error())
	assert.False(t, IsFrontendError(cause))
}

func TestBuildTheme(t *testing.T) {
	theme := buildTheme(Options{})
	assert.Equal(t, cannoli.DefaultFontPath, theme.FontPath)
	assert.Equal(t, cannoli.InitCannoliTheme(cannoli.DefaultFontPath).AccentColor, theme.AccentColor)

	theme = buildTheme(Options{FontPath: "/fonts/custom.ttf", PrimaryThemeColorHex: 0xFF8800})
	assert.Equal(t, "/fonts/custom.ttf", theme.FontPath)
	assert.Equal(t, uint32(0xFF8800), theme.AccentColor)
}

func TestRoutes(t *testing.T) {
	routes, err := Routes()
	require.NoError(t, err)
	require.Len(t, routes, 3)

	assert.Equal(t, "FirstScreen", routes[0].Pattern)
	assert.Empty(t, routes[0].Slots)
	assert.True(t, routes[0].Start)
	assert.Equal(t, "SecondScreen/{customValue}", routes[1].Pattern)
	assert.Equal(t, []string{"customValue"}, routes[1].Slots)
	assert.False(t, routes[1].Start)
	assert.Equal(t, "ThirdScreen", routes[2].Pattern)
}
