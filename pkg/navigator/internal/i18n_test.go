package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocalizer(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		id     string
		data   map[string]any
		want   string
	}{
		{name: "english default", locale: "", id: "FirstScreenTitle", want: "First screen"},
		{name: "english", locale: "en", id: "GoToSecondScreen", want: "Go to second screen"},
		{name: "template", locale: "en", id: "TextFromPreviousScreen", data: map[string]any{"Text": "hi"}, want: "Text from previous screen: hi"},
		{name: "spanish", locale: "es", id: "ThirdScreenTitle", want: "Tercera pantalla"},
		{name: "spanish region", locale: "es-MX", id: "SecondScreenTitle", want: "Segunda pantalla"},
		{name: "german template", locale: "de", id: "TextFromPreviousScreen", data: map[string]any{"Text": "Empty"}, want: "Text vom vorherigen Bildschirm: Empty"},
		{name: "unsupported falls back to english", locale: "fr", id: "BackToFirstScreen", want: "Back to first screen"},
		{name: "unknown id", locale: "en", id: "NoSuchMessage", want: "NoSuchMessage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := NewLocalizer(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.T(tt.id, tt.data))
		})
	}
}

func TestNewLocalizer_InvalidTag(t *testing.T) {
	_, err := NewLocalizer("not a language!")
	assert.Error(t, err)
}

func TestSupportedLanguages(t *testing.T) {
	tags := SupportedLanguages()
	assert.Contains(t, tags, language.English)
	assert.Contains(t, tags, language.Spanish)
	assert.Contains(t, tags, language.German)
}

func TestLocaleFilesShareKeys(t *testing.T) {
	english, err := NewLocalizer("en")
	require.NoError(t, err)

	ids := []string{
		"FirstScreenTitle", "TextFieldPlaceholder", "GoToSecondScreen",
		"SecondScreenTitle", "BackToFirstScreen", "GoToThirdScreen",
		"ThirdScreenTitle", "BackToSecondScreen",
		"HintSelect", "HintBack", "HintQuit", "HintMove",
		"HintType", "HintDone", "KeyBackspace", "KeyEnter",
		"KeySpace", "KeyShift", "KeySymbols",
	}

	for _, lang := range []string{"es", "de"} {
		loc, err := NewLocalizer(lang)
		require.NoError(t, err)
		for _, id := range ids {
			assert.NotEqual(t, english.T(id, nil), loc.T(id, nil), "%s should be translated to %s", id, lang)
		}
	}
}
