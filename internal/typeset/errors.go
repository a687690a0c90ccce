// Package typeset runs the external LaTeX engine over composed documents and
// tidies up the files it leaves behind.
package typeset

import "fmt"

// RenderError represents a typesetting failure: the engine is missing, a pass
// timed out, or a pass exited with a nonzero status
type RenderError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Tail returns the last n lines of the captured engine output, which is
// usually where LaTeX reports the fatal error
func (e *RenderError) Tail(n int) string {
	return tailLines(e.LogOutput, n)
}

// CleanupError collects the auxiliary files that could not be removed
type CleanupError struct {
	Files []string
	Cause error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("cleanup error: failed to remove %d file(s): %v", len(e.Files), e.Cause)
}

func (e *CleanupError) Unwrap() error {
	return e.Cause
}
