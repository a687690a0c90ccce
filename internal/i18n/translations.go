package i18n

import (
	"embed"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Label keys understood by the translation table
const (
	LabelAddress = "address"
	LabelPhone   = "phone"
	LabelNoEnd   = "no_end"
)

// Translator is a read-only label table backed by a go-i18n bundle.
// Unlike a typical go-i18n setup it never falls back to another language:
// a label missing for the requested locale is an error.
type Translator struct {
	bundle *goi18n.Bundle
}

// NewTranslator loads the embedded message files for every supported locale
func NewTranslator() (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, loc := range Supported {
		file := fmt.Sprintf("active.%s.toml", loc)
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, &LookupError{Locale: string(loc), Message: fmt.Sprintf("failed to load %s", file), Cause: err}
		}
	}

	return &Translator{bundle: bundle}, nil
}

// Label returns the display string for key in the given locale
func (t *Translator) Label(key string, locale Locale) (string, error) {
	if !locale.Supported() {
		return "", &LookupError{Key: key, Locale: string(locale), Message: "unsupported locale"}
	}

	localizer := goi18n.NewLocalizer(t.bundle, string(locale))
	msg, tag, err := localizer.LocalizeWithTag(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return "", &LookupError{Key: key, Locale: string(locale), Message: "label not found", Cause: err}
	}

	// go-i18n silently substitutes the bundle's default language when the
	// requested one lacks the message
	if base, _ := tag.Base(); base.String() != string(locale) {
		return "", &LookupError{Key: key, Locale: string(locale), Message: fmt.Sprintf("label only available in %s", tag)}
	}
	return msg, nil
}
