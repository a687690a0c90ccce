package rendering

import (
	"github.com/jonathan/cv-generator/internal/document"
	"github.com/jonathan/cv-generator/internal/types"
)

// Outline lists the document's top-level sections in order without
// validating them
func Outline(doc *document.Value) ([]types.SectionSummary, error) {
	sections, ok := doc.Get(RootKey)
	if !ok || !sections.IsMapping() {
		return nil, schemaErrorf("", "the CV data must contain a %q key", RootKey)
	}

	summaries := make([]types.SectionSummary, 0, len(sections.Keys))
	for _, name := range sections.Keys {
		body, _ := sections.Get(name)
		summary := types.SectionSummary{Name: name}

		if kind, known := ParseSectionKind(name); known {
			summary.Known = true
			summary.Kind = kind.String()
		}
		if tag, ok := scalarField(body, "type"); ok {
			summary.Type = tag
		}
		if entries, ok := body.Get("entries"); ok {
			summary.Entries = entries.Len()
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}
