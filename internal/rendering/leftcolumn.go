package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-generator/internal/document"
	"github.com/jonathan/cv-generator/internal/i18n"
)

// openLeftColumn validates a leftcolumn section and writes its separator and
// bold heading
func (r *Renderer) openLeftColumn(name string, kind SectionKind, body *document.Value, locale i18n.Locale) ([]*document.Value, *strings.Builder, error) {
	if err := checkType(name, kind, body); err != nil {
		return nil, nil, err
	}
	entries, err := entryList(name, kind, body)
	if err != nil {
		return nil, nil, err
	}
	title, err := heading(name, kind, body, locale)
	if err != nil {
		return nil, nil, err
	}

	b := &strings.Builder{}
	b.WriteString("\\Sep\n")
	fmt.Fprintf(b, "\\textbf{%s}\\\\ \n", r.text(title))
	return entries, b, nil
}

func (r *Renderer) renderLanguages(name string, body *document.Value, locale i18n.Locale) (Fragment, error) {
	entries, b, err := r.openLeftColumn(name, SectionLanguages, body, locale)
	if err != nil {
		return Fragment{}, err
	}

	for _, entry := range entries {
		languageField, _ := entry.Get("language")
		language, okLanguage := localized(languageField, locale)
		proficiencyField, _ := entry.Get("proficiency")
		proficiency, okProficiency := localized(proficiencyField, locale)
		if !okLanguage || !okProficiency {
			return Fragment{}, schemaErrorf(name, "the language entry must contain a %q and %q key", "language", "proficiency")
		}

		fmt.Fprintf(b, "%s (%s)\\\\ \n", r.text(language), r.text(proficiency))
	}

	return Fragment{Left: b.String()}, nil
}

// renderSkills lists programming skills. The entry field is called `language`
// but, unlike in the languages section, it holds a plain unlocalized string.
func (r *Renderer) renderSkills(name string, body *document.Value, locale i18n.Locale) (Fragment, error) {
	kind := SectionSkills
	entries, b, err := r.openLeftColumn(name, kind, body, locale)
	if err != nil {
		return Fragment{}, err
	}

	for _, entry := range entries {
		skill, ok := scalarField(entry, "language")
		if !ok {
			return Fragment{}, schemaErrorf(name, "the %s entry must contain a %q key", kind, "language")
		}

		fmt.Fprintf(b, "%s \\\\ \n", r.text(skill))
	}

	return Fragment{Left: b.String()}, nil
}
