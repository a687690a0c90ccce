package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-generator/internal/document"
	"github.com/jonathan/cv-generator/internal/i18n"
)

// Education, work experience and volunteering share one shape in the right
// column: a section heading, one \CVItem per entry, and a closing separator.

// openTimeline validates the parts shared by all dated sections and returns
// the entries with the opening heading directive
func (r *Renderer) openTimeline(name string, kind SectionKind, body *document.Value, locale i18n.Locale) ([]*document.Value, *strings.Builder, error) {
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
	fmt.Fprintf(b, "\\CVSection{%s}\n", r.text(title))
	return entries, b, nil
}

func closeTimeline(b *strings.Builder) Fragment {
	b.WriteString("\\Sep\n")
	return Fragment{Right: b.String()}
}

func (r *Renderer) renderEducation(name string, body *document.Value, locale i18n.Locale) (Fragment, error) {
	kind := SectionEducation
	entries, b, err := r.openTimeline(name, kind, body, locale)
	if err != nil {
		return Fragment{}, err
	}

	for _, entry := range entries {
		when, okPeriod, err := r.period(entry, locale)
		if err != nil {
			return Fragment{}, err
		}
		school, okSchool := scalarField(entry, "school")
		degreeField, _ := entry.Get("degree")
		degree, okDegree := localized(degreeField, locale)
		if !okPeriod || !okSchool || !okDegree {
			return Fragment{}, schemaErrorf(name, "the %s entry must contain a %q, %q, %q, and %q key", kind, "start", "end", "school", "degree")
		}

		fmt.Fprintf(b, "\\CVItem{%s, %s}{%s}\n \n", when, r.text(school), r.text(degree))
	}

	return closeTimeline(b), nil
}

func (r *Renderer) renderWorkExperience(name string, body *document.Value, locale i18n.Locale) (Fragment, error) {
	kind := SectionWorkExperience
	entries, b, err := r.openTimeline(name, kind, body, locale)
	if err != nil {
		return Fragment{}, err
	}

	for _, entry := range entries {
		when, okPeriod, err := r.period(entry, locale)
		if err != nil {
			return Fragment{}, err
		}
		company, okCompany := scalarField(entry, "company")
		positionField, _ := entry.Get("position")
		position, okPosition := localized(positionField, locale)
		if !okPeriod || !okCompany || !okPosition {
			return Fragment{}, schemaErrorf(name, "the %s entry must contain a %q, %q, %q, and %q key", kind, "start", "end", "company", "position")
		}

		description, ok := r.description(entry, locale)
		if !ok {
			return Fragment{}, schemaErrorf(name, "the %s entry must contain a %q key", kind, "description")
		}

		fmt.Fprintf(b, "\\CVItem{%s, \\textit{%s}, %s}{\n", when, r.text(position), r.text(company))
		b.WriteString(description)
		b.WriteString("}\n\n")
	}

	return closeTimeline(b), nil
}

// description renders a work experience description for locale. A list of
// strings becomes an itemize environment; a single string is used verbatim.
func (r *Renderer) description(entry *document.Value, locale i18n.Locale) (string, bool) {
	field, _ := entry.Get("description")
	value, ok := field.Get(string(locale))
	if !ok {
		return "", false
	}

	switch value.Kind {
	case document.ScalarKind:
		return r.text(value.Text) + "\n", true
	case document.SequenceKind:
		var b strings.Builder
		b.WriteString("\\begin{itemize}\n")
		for _, item := range value.Items {
			if !item.IsScalar() {
				return "", false
			}
			fmt.Fprintf(&b, "\\item %s\n", r.text(item.Text))
		}
		b.WriteString("\\end{itemize}\n")
		return b.String(), true
	default:
		return "", false
	}
}

func (r *Renderer) renderVolunteering(name string, body *document.Value, locale i18n.Locale) (Fragment, error) {
	kind := SectionVolunteering
	entries, b, err := r.openTimeline(name, kind, body, locale)
	if err != nil {
		return Fragment{}, err
	}

	for _, entry := range entries {
		when, okPeriod, err := r.period(entry, locale)
		if err != nil {
			return Fragment{}, err
		}
		organization, okOrganization := scalarField(entry, "organization")
		positionField, _ := entry.Get("position")
		position, okPosition := localized(positionField, locale)
		if !okPeriod || !okOrganization || !okPosition {
			return Fragment{}, schemaErrorf(name, "the %s entry must contain a %q, %q, %q, and %q key", kind, "start", "end", "organization", "position")
		}

		fmt.Fprintf(b, "\\CVItem{%s, %s}{%s}\n \n", when, r.text(organization), r.text(position))
	}

	return closeTimeline(b), nil
}
