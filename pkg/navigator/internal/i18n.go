package internal

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		paths, err := fs.Glob(localeFS, "locales/*.toml")
		if err != nil {
			bundleErr = err
			return
		}
		for _, path := range paths {
			if _, err := b.LoadMessageFileFS(localeFS, path); err != nil {
				bundleErr = fmt.Errorf("load %s: %w", path, err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// SupportedLanguages returns the languages with an embedded message file.
func SupportedLanguages() []language.Tag {
	b, err := loadBundle()
	if err != nil {
		return []language.Tag{language.English}
	}
	return b.LanguageTags()
}

// Localizer looks up UI strings for one language, falling back to English.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewLocalizer creates a Localizer for a BCP 47 tag such as "en" or "es-MX".
// An empty tag selects English.
func NewLocalizer(lang string) (*Localizer, error) {
	tag := language.English
	if strings.TrimSpace(lang) != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", lang, err)
		}
		tag = parsed
	}

	b, err := loadBundle()
	if err != nil {
		return nil, err
	}

	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(b, tag.String(), language.English.String()),
	}, nil
}

// Language returns the requested language tag.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// T returns the message for id rendered with data. Unknown ids are returned unchanged.
func (l *Localizer) T(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		if msg != "" {
			return msg
		}
		GetInternalLogger().Warn("Missing translation", "id", id, "language", l.tag.String(), "error", err)
		return id
	}
	return msg
}
