package rendering

import (
	"fmt"

	"github.com/jonathan/cv-generator/internal/document"
	"github.com/jonathan/cv-generator/internal/i18n"
)

// checkType verifies the section declares the type tag its kind requires
func checkType(name string, kind SectionKind, body *document.Value) error {
	want := kind.TypeTag()
	tag, ok := body.Get("type")
	if !ok || !tag.IsScalar() || tag.Text != want {
		return schemaErrorf(name, "the type of %s must be %q", kind, want)
	}
	return nil
}

// entryList returns the section's `entries` sequence
func entryList(name string, kind SectionKind, body *document.Value) ([]*document.Value, error) {
	entries, ok := body.Get("entries")
	if !ok || !entries.IsSequence() {
		return nil, schemaErrorf(name, "the %s must contain an %q key", kind, "entries")
	}
	return entries.Items, nil
}

// heading resolves the section's localized `name`
func heading(name string, kind SectionKind, body *document.Value, locale i18n.Locale) (string, error) {
	v, _ := body.Get("name")
	text, ok := localized(v, locale)
	if !ok {
		return "", schemaErrorf(name, "the %s must contain a %q key, in the language %s", kind, "name", locale)
	}
	return text, nil
}

// localized resolves a locale mapping such as {en: ..., de: ...} to the
// scalar stored under locale
func localized(v *document.Value, locale i18n.Locale) (string, bool) {
	text, ok := v.Get(string(locale))
	if !ok || !text.IsScalar() {
		return "", false
	}
	return text.Text, true
}

// scalarField returns the text of a non-null scalar field
func scalarField(v *document.Value, key string) (string, bool) {
	field, ok := v.Get(key)
	if !ok || !field.IsScalar() {
		return "", false
	}
	return field.Text, true
}

// optionalField is like scalarField but distinguishes an absent or null field
// (ok, present=false) from one holding a mapping or sequence (not ok)
func optionalField(v *document.Value, key string) (text string, present bool, ok bool) {
	field, exists := v.Get(key)
	if !exists || field.IsNull() {
		return "", false, true
	}
	if !field.IsScalar() {
		return "", true, false
	}
	return field.Text, true, true
}

// period renders "<start> - <end>" for a dated entry. A missing or null end
// means the entry is ongoing and renders as the locale's "present" label.
// ok is false when start is missing or either bound is not a scalar.
func (r *Renderer) period(entry *document.Value, locale i18n.Locale) (text string, ok bool, err error) {
	start, ok := scalarField(entry, "start")
	if !ok {
		return "", false, nil
	}

	end, present, ok := optionalField(entry, "end")
	if !ok {
		return "", false, nil
	}
	if present {
		end = r.text(end)
	} else {
		end, err = r.labels.Label(i18n.LabelNoEnd, locale)
		if err != nil {
			return "", false, fmt.Errorf("failed to resolve ongoing label: %w", err)
		}
	}

	return r.text(start) + " - " + end, true, nil
}
