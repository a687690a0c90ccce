// Package rendering turns a résumé document into LaTeX fragments and composes
// them into a template.
package rendering

import "fmt"

// SchemaError represents a document that does not have the shape a section
// generator requires: a missing key, a wrong type tag, a localized field
// without the requested locale, or an unknown section name.
type SchemaError struct {
	// Section is the top-level section name, empty for document-level errors
	Section string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: %s", e.Message)
}

// TemplateError represents an error reading or checking a LaTeX template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

func schemaErrorf(section, format string, args ...any) *SchemaError {
	return &SchemaError{Section: section, Message: fmt.Sprintf(format, args...)}
}
