package pipeline

import (
	"fmt"

	"github.com/jonathan/cv-generator/internal/document"
	"github.com/jonathan/cv-generator/internal/i18n"
	"github.com/jonathan/cv-generator/internal/rendering"
)

// Inputs holds everything needed to compose a document for any locale
type Inputs struct {
	Document *document.Value
	Template *rendering.Template
	Renderer *rendering.Renderer
}

// LoadInputs reads the résumé document and template and prepares a renderer
func LoadInputs(inputPath, templatePath string, escapeText bool) (*Inputs, error) {
	doc, err := document.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load input: %w", err)
	}

	tmpl, err := rendering.LoadTemplate(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	translator, err := i18n.NewTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	return &Inputs{
		Document: doc,
		Template: tmpl,
		Renderer: rendering.NewRenderer(translator, rendering.WithEscaping(escapeText)),
	}, nil
}

// Compose renders the document for locale and substitutes it into the template
func (in *Inputs) Compose(locale i18n.Locale) (string, error) {
	frag, err := in.Renderer.Render(in.Document, locale)
	if err != nil {
		return "", err
	}
	return in.Template.Execute(frag), nil
}
