// Package text resolves user-facing strings through a message catalog.
// Screens never hard-code UI chrome; they ask the catalog by message ID
// so translations can be added by dropping another locale file in.
package text

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Catalog wraps a localizer over the embedded locale files.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// NewCatalog loads the embedded locales and targets the given language
// tag. Unknown or empty tags fall back to English.
func NewCatalog(lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("reading embedded locales: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("loading locale %s: %w", entry.Name(), err)
		}
	}

	if lang == "" {
		lang = "en"
	}
	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, lang, "en"),
	}, nil
}

// T resolves a message by ID. Unknown IDs return the ID itself so a
// missing translation shows up on screen instead of blanking a label.
func (c *Catalog) T(id string) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Tf resolves a templated message with the given data.
func (c *Catalog) Tf(id string, data map[string]any) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
