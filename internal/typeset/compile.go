package typeset

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultEngine is the LaTeX engine used when none is configured
	DefaultEngine = "xelatex"
	// DefaultPasses runs the engine twice so cross-references resolve
	DefaultPasses = 2
	// DefaultTimeout bounds a single engine pass
	DefaultTimeout = 120 * time.Second
)

// Compiler invokes a LaTeX engine a fixed number of times on one document
type Compiler struct {
	Engine  string
	Passes  int
	Timeout time.Duration
}

// NewCompiler creates a Compiler, substituting defaults for zero values
func NewCompiler(engine string, passes int, timeout time.Duration) *Compiler {
	if engine == "" {
		engine = DefaultEngine
	}
	if passes <= 0 {
		passes = DefaultPasses
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Compiler{Engine: engine, Passes: passes, Timeout: timeout}
}

// Compile typesets texPath into outputDir and returns the path of the PDF.
// Every pass must succeed; the first failing pass aborts the run.
func (c *Compiler) Compile(ctx context.Context, texPath string, outputDir string) (string, error) {
	if _, err := exec.LookPath(c.Engine); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("%s not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)", c.Engine),
			Cause:   err,
		}
	}

	for pass := 1; pass <= c.Passes; pass++ {
		logOutput, err := c.runPass(ctx, texPath, outputDir)
		if err != nil {
			return "", &RenderError{
				Message:   fmt.Sprintf("%s pass %d/%d on %s failed", c.Engine, pass, c.Passes, filepath.Base(texPath)),
				LogOutput: logOutput,
				Cause:     err,
			}
		}
		log.Printf("[TYPESET] %s pass %d/%d on %s done", c.Engine, pass, c.Passes, filepath.Base(texPath))
	}

	pdfPath := filepath.Join(outputDir, strings.TrimSuffix(filepath.Base(texPath), ".tex")+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("%s finished but no PDF was generated at %s", c.Engine, pdfPath),
			Cause:   err,
		}
	}

	return pdfPath, nil
}

func (c *Compiler) runPass(ctx context.Context, texPath string, outputDir string) (string, error) {
	passCtx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	// The engine expects the directory with a trailing separator
	cmd := exec.CommandContext(passCtx, c.Engine,
		"-output-directory="+filepath.Clean(outputDir)+string(filepath.Separator),
		"-interaction=nonstopmode",
		texPath,
	)
	// Don't wait forever on pipes held open by children of a killed engine
	cmd.WaitDelay = 2 * time.Second

	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	if errors.Is(passCtx.Err(), context.DeadlineExceeded) {
		return output.String(), fmt.Errorf("timed out after %s: %w", c.Timeout, passCtx.Err())
	}
	if err != nil {
		return output.String(), err
	}
	return output.String(), nil
}

func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if n <= 0 || len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
