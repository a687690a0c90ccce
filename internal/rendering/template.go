package rendering

import (
	"fmt"
	"os"
	"strings"
)

// Placeholder tokens replaced in the LaTeX template
const (
	HeaderPlaceholder = "##HEADER##"
	LeftPlaceholder   = "##LEFT##"
	RightPlaceholder  = "##RIGHT##"
)

// Placeholders lists every token a template must contain
var Placeholders = []string{HeaderPlaceholder, LeftPlaceholder, RightPlaceholder}

// Template is a LaTeX document with placeholder tokens for the three streams
type Template struct {
	text string
}

// LoadTemplate reads and checks a template file
func LoadTemplate(templatePath string) (*Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	return ParseTemplate(string(content))
}

// ParseTemplate checks that text contains every placeholder at least once
func ParseTemplate(text string) (*Template, error) {
	var missing []string
	for _, p := range Placeholders {
		if !strings.Contains(text, p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return nil, &TemplateError{
			Message: fmt.Sprintf("template is missing placeholder(s) %s", strings.Join(missing, ", ")),
		}
	}

	return &Template{text: text}, nil
}

// Execute substitutes every occurrence of each placeholder with its stream.
// Replacement is a single literal pass: text coming from the fragment is
// never scanned for placeholders again.
func (t *Template) Execute(f Fragment) string {
	replacer := strings.NewReplacer(
		HeaderPlaceholder, f.Header,
		LeftPlaceholder, f.Left,
		RightPlaceholder, f.Right,
	)
	return replacer.Replace(t.text)
}
