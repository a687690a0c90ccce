package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-generator/internal/document"
)

// renderStyling emits preamble directives for the optional colors, font size
// and font family switch. Every key is independent and an empty section is valid.
func (r *Renderer) renderStyling(name string, body *document.Value) (Fragment, error) {
	if body.IsNull() {
		return Fragment{}, nil
	}
	if !body.IsMapping() {
		return Fragment{}, schemaErrorf(name, "the %s must be a mapping", SectionStyling)
	}

	var b strings.Builder

	colors := []struct{ key, macro string }{
		{"main color", "MainColor"},
		{"accent color", "AccentColor"},
	}
	for _, c := range colors {
		value, present, ok := optionalField(body, c.key)
		if !ok {
			return Fragment{}, schemaErrorf(name, "the %s %q must be a hex color", SectionStyling, c.key)
		}
		if present {
			fmt.Fprintf(&b, "\\definecolor{%s}{HTML}{%s}\n", c.macro, strings.TrimPrefix(value, "#"))
		}
	}

	size, present, ok := optionalField(body, "font size")
	if !ok {
		return Fragment{}, schemaErrorf(name, "the %s %q must be a number", SectionStyling, "font size")
	}
	if present {
		fmt.Fprintf(&b, "\\renewcommand{\\normalsize}{\\fontsize{%s}{12pt}\\selectfont}\n", size)
	}

	// Only the presence of the key matters, not its value
	if body.Has("font family") {
		b.WriteString("\\renewcommand{\\familydefault}{\\sfdefault}\n")
	}

	return Fragment{Header: b.String()}, nil
}
