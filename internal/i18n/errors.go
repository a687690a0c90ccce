package i18n

import "fmt"

// LookupError represents an unsupported locale or a label missing for a locale
type LookupError struct {
	Key     string
	Locale  string
	Message string
	Cause   error
}

func (e *LookupError) Error() string {
	subject := fmt.Sprintf("locale %q", e.Locale)
	if e.Key != "" {
		subject = fmt.Sprintf("label %q for locale %q", e.Key, e.Locale)
	}
	if e.Cause != nil {
		return fmt.Sprintf("i18n error: %s: %s: %v", subject, e.Message, e.Cause)
	}
	return fmt.Sprintf("i18n error: %s: %s", subject, e.Message)
}

func (e *LookupError) Unwrap() error {
	return e.Cause
}
