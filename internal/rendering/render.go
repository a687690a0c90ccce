package rendering

import (
	"fmt"

	"github.com/jonathan/cv-generator/internal/document"
	"github.com/jonathan/cv-generator/internal/i18n"
)

// RootKey is the single top-level key holding the section map
const RootKey = "cv"

// Labels resolves fixed, translated labels such as "Address"
type Labels interface {
	Label(key string, locale i18n.Locale) (string, error)
}

// Renderer generates LaTeX fragments from a document for one locale at a time.
// It holds no per-render state and can be reused across locales.
type Renderer struct {
	labels Labels
	escape bool
}

// Option configures a Renderer
type Option func(*Renderer)

// WithEscaping escapes LaTeX special characters in text taken from the
// document. Email addresses and picture paths are never escaped.
func WithEscaping(enabled bool) Option {
	return func(r *Renderer) {
		r.escape = enabled
	}
}

// NewRenderer creates a Renderer using labels for translated strings
func NewRenderer(labels Labels, opts ...Option) *Renderer {
	r := &Renderer{labels: labels}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render walks the document's sections in order and returns the merged
// header, left and right streams. The first invalid section aborts the whole
// render; no partial output is returned.
func (r *Renderer) Render(doc *document.Value, locale i18n.Locale) (Fragment, error) {
	if !locale.Supported() {
		return Fragment{}, fmt.Errorf("cannot render locale %q: %w", locale, &i18n.LookupError{Locale: string(locale), Message: "unsupported locale"})
	}

	sections, ok := doc.Get(RootKey)
	if !ok || !sections.IsMapping() {
		return Fragment{}, schemaErrorf("", "the CV data must contain a %q key", RootKey)
	}

	var out Fragment
	for _, name := range sections.Keys {
		body, _ := sections.Get(name)
		frag, err := r.RenderSection(name, body, locale)
		if err != nil {
			return Fragment{}, err
		}
		out = out.Merge(frag)
	}

	return out, nil
}

// RenderSection renders a single top-level section identified by its name
func (r *Renderer) RenderSection(name string, body *document.Value, locale i18n.Locale) (Fragment, error) {
	kind, ok := ParseSectionKind(name)
	if !ok {
		return Fragment{}, schemaErrorf(name, "invalid section name %q", name)
	}

	switch kind {
	case SectionStyling:
		return r.renderStyling(name, body)
	case SectionPersonalInformation:
		return r.renderPersonalInformation(name, body, locale)
	case SectionEducation:
		return r.renderEducation(name, body, locale)
	case SectionWorkExperience:
		return r.renderWorkExperience(name, body, locale)
	case SectionLanguages:
		return r.renderLanguages(name, body, locale)
	case SectionSkills:
		return r.renderSkills(name, body, locale)
	case SectionVolunteering:
		return r.renderVolunteering(name, body, locale)
	default:
		return Fragment{}, schemaErrorf(name, "invalid section name %q", name)
	}
}

// text prepares document text for insertion into LaTeX
func (r *Renderer) text(s string) string {
	if r.escape {
		return EscapeLaTeX(s)
	}
	return s
}
