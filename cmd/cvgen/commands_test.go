package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testInput    = filepath.Join("..", "..", "internal", "rendering", "testdata", "full_cv.yaml")
	testTemplate = filepath.Join("..", "..", "templates", "cv_template.tex")
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	clearEnv(t)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestBuildCommand_NoTypeset(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")

	err := execute(t, "build", "--in", testInput, "--template", testTemplate, "--out-dir", outDir, "--locale", "en,de", "--no-typeset")
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(outDir, "*_CV_*.tex"))
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestRenderCommand_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "cv_fr.tex")

	err := execute(t, "render", "--in", testInput, "--template", testTemplate, "--locale", "fr", "--out", out)
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "\\CVItem{2019 - Maintenant, X U}{Licence}")
	assert.NotContains(t, string(content), "##RIGHT##")
}

func TestValidateCommand_ReportsSchemaErrors(t *testing.T) {
	input := filepath.Join(t.TempDir(), "cv.yaml")
	require.NoError(t, os.WriteFile(input, []byte("cv:\n  hobbies: {type: section}\n"), 0644))

	err := execute(t, "validate", "--in", input, "--template", testTemplate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestInspectCommand(t *testing.T) {
	err := execute(t, "inspect", "--in", testInput, "--dump")
	assert.NoError(t, err)
}

func TestInspectCommand_MissingInput(t *testing.T) {
	err := execute(t, "inspect", "--in", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
