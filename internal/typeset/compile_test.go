package typeset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeEngine installs a shell script standing in for the LaTeX engine.
// Each invocation appends its arguments to calls.log in dir.
func writeFakeEngine(t *testing.T, dir string, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake engine needs a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping fake engine test")
	}

	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" >> %q\n%s\n", filepath.Join(dir, "calls.log"), body)
	path := filepath.Join(dir, "fake-latex")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

// producesOutputs mimics a successful engine run: it writes the PDF and the
// usual auxiliary files into the -output-directory
const producesOutputs = `out=""
for a; do
  case "$a" in
    -output-directory=*) out="${a#-output-directory=}" ;;
  esac
done
for last; do :; done
base=$(basename "$last" .tex)
for ext in pdf aux log out; do
  : > "$out$base.$ext"
done
echo "Output written on $base.pdf (1 page)."`

func readCalls(t *testing.T, dir string) []string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, "calls.log"))
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(content), "\n"), "\n")
}

func writeTex(t *testing.T, dir string) string {
	t.Helper()
	texPath := filepath.Join(dir, "2024_05_01_CV_en.tex")
	require.NoError(t, os.WriteFile(texPath, []byte("\\documentclass{article}\\begin{document}x\\end{document}"), 0644))
	return texPath
}

func TestNewCompiler_Defaults(t *testing.T) {
	c := NewCompiler("", 0, 0)
	assert.Equal(t, DefaultEngine, c.Engine)
	assert.Equal(t, DefaultPasses, c.Passes)
	assert.Equal(t, DefaultTimeout, c.Timeout)

	c = NewCompiler("lualatex", 3, time.Minute)
	assert.Equal(t, "lualatex", c.Engine)
	assert.Equal(t, 3, c.Passes)
	assert.Equal(t, time.Minute, c.Timeout)
}

func TestCompile_RunsEveryPass(t *testing.T) {
	dir := t.TempDir()
	engine := writeFakeEngine(t, dir, producesOutputs)
	outDir := filepath.Join(dir, "outputs")
	require.NoError(t, os.MkdirAll(outDir, 0755))
	texPath := writeTex(t, outDir)

	c := NewCompiler(engine, 2, 10*time.Second)
	pdfPath, err := c.Compile(context.Background(), texPath, outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "2024_05_01_CV_en.pdf"), pdfPath)
	assert.FileExists(t, pdfPath)

	calls := readCalls(t, dir)
	require.Len(t, calls, 2)
	want := "-output-directory=" + outDir + string(filepath.Separator) + " -interaction=nonstopmode " + texPath
	for _, call := range calls {
		assert.Equal(t, want, call)
	}
}

func TestCompile_NonzeroExit(t *testing.T) {
	dir := t.TempDir()
	engine := writeFakeEngine(t, dir, "echo '! Undefined control sequence.'\nexit 1")
	texPath := writeTex(t, dir)

	c := NewCompiler(engine, 2, 10*time.Second)
	_, err := c.Compile(context.Background(), texPath, dir)
	require.Error(t, err)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Contains(t, renderErr.Message, "pass 1/2")
	assert.Contains(t, renderErr.LogOutput, "Undefined control sequence")

	var exitErr *exec.ExitError
	assert.True(t, errors.As(err, &exitErr))

	// The first failing pass stops the run
	assert.Len(t, readCalls(t, dir), 1)
}

func TestCompile_FailsOnSecondPass(t *testing.T) {
	dir := t.TempDir()
	body := fmt.Sprintf("if [ -f %q ]; then exit 3; fi\n: > %q", filepath.Join(dir, "ran"), filepath.Join(dir, "ran"))
	engine := writeFakeEngine(t, dir, body)
	texPath := writeTex(t, dir)

	_, err := NewCompiler(engine, 2, 10*time.Second).Compile(context.Background(), texPath, dir)
	require.Error(t, err)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Contains(t, renderErr.Message, "pass 2/2")
}

func TestCompile_Timeout(t *testing.T) {
	dir := t.TempDir()
	engine := writeFakeEngine(t, dir, "exec sleep 5")
	texPath := writeTex(t, dir)

	start := time.Now()
	_, err := NewCompiler(engine, 2, 100*time.Millisecond).Compile(context.Background(), texPath, dir)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Contains(t, err.Error(), "timed out")
}

func TestCompile_EngineNotFound(t *testing.T) {
	dir := t.TempDir()
	texPath := writeTex(t, dir)

	_, err := NewCompiler("definitely-not-a-latex-engine", 2, time.Second).Compile(context.Background(), texPath, dir)
	require.Error(t, err)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Contains(t, err.Error(), "not found in PATH")
}

func TestCompile_NoPDFProduced(t *testing.T) {
	dir := t.TempDir()
	engine := writeFakeEngine(t, dir, "exit 0")
	texPath := writeTex(t, dir)

	_, err := NewCompiler(engine, 1, 10*time.Second).Compile(context.Background(), texPath, dir)
	require.Error(t, err)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Contains(t, err.Error(), "no PDF was generated")
}

func TestCompile_RealEngine(t *testing.T) {
	if _, err := exec.LookPath(DefaultEngine); err != nil {
		t.Skip("xelatex not available, skipping compilation test")
	}

	dir := t.TempDir()
	texPath := writeTex(t, dir)

	pdfPath, err := NewCompiler(DefaultEngine, 2, DefaultTimeout).Compile(context.Background(), texPath, dir)
	require.NoError(t, err)
	assert.FileExists(t, pdfPath)
}

func TestRenderErrorTail(t *testing.T) {
	err := &RenderError{Message: "m", LogOutput: "a\nb\nc\nd\n"}
	assert.Equal(t, "c\nd", err.Tail(2))
	assert.Equal(t, "a\nb\nc\nd", err.Tail(10))
	assert.Equal(t, "render error: m", err.Error())
}
