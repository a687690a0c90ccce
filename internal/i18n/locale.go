// Package i18n holds the supported locales and the label translation table.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a language code selecting which localized variant of a field to render
type Locale string

// Supported locales. The set is closed: documents are expected to carry every
// localized field in each of these.
const (
	English Locale = "en"
	German  Locale = "de"
	French  Locale = "fr"
)

// Supported lists the locales in the order a full build renders them
var Supported = []Locale{English, German, French}

// ParseLocale normalizes a locale code ("EN" becomes "en"; regional tags such as "de-DE" are rejected)
// and checks it against the supported set.
func ParseLocale(code string) (Locale, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", &LookupError{Locale: code, Message: "invalid locale code", Cause: err}
	}

	loc := Locale(tag.String())
	if !loc.Supported() {
		return "", &LookupError{Locale: code, Message: fmt.Sprintf("unsupported locale (supported: %s)", joinLocales(Supported))}
	}
	return loc, nil
}

// ParseLocales parses a list of locale codes, rejecting duplicates
func ParseLocales(codes []string) ([]Locale, error) {
	locales := make([]Locale, 0, len(codes))
	seen := make(map[Locale]bool, len(codes))
	for _, code := range codes {
		loc, err := ParseLocale(code)
		if err != nil {
			return nil, err
		}
		if seen[loc] {
			return nil, &LookupError{Locale: code, Message: "locale listed more than once"}
		}
		seen[loc] = true
		locales = append(locales, loc)
	}
	return locales, nil
}

// Supported reports whether the locale belongs to the supported set
func (l Locale) Supported() bool {
	for _, s := range Supported {
		if l == s {
			return true
		}
	}
	return false
}

func (l Locale) String() string {
	return string(l)
}

func joinLocales(locales []Locale) string {
	parts := make([]string, len(locales))
	for i, l := range locales {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}
