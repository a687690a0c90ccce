package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"input": "cv/me.yaml",
		"output_dir": "build",
		"locales": ["de", "en"],
		"passes": 3,
		"escape_text": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "cv/me.yaml", cfg.Input)
	assert.Equal(t, "build", cfg.OutputDir)
	assert.Equal(t, []string{"de", "en"}, cfg.Locales)
	assert.Equal(t, 3, cfg.Passes)
	assert.True(t, cfg.EscapeText)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.Template)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		EnvInput:  "/data/cv.yaml",
		EnvEngine: "lualatex",
	}

	cfg := FromEnv(func(key string) string { return env[key] })
	assert.Equal(t, "/data/cv.yaml", cfg.Input)
	assert.Equal(t, "lualatex", cfg.Engine)
	assert.Empty(t, cfg.Template)
	assert.Empty(t, cfg.OutputDir)
}

func TestMergeWithDefaults_Layering(t *testing.T) {
	env := FromEnv(func(key string) string {
		if key == EnvOutputDir {
			return "env-out"
		}
		if key == EnvInput {
			return "env.yaml"
		}
		return ""
	})
	file := Config{Input: "file.yaml", Locales: []string{"fr"}, KeepAux: true}

	base := env.MergeWithDefaults(Defaults())
	merged := file.MergeWithDefaults(base)

	assert.Equal(t, "file.yaml", merged.Input, "file beats environment")
	assert.Equal(t, "env-out", merged.OutputDir, "environment beats defaults")
	assert.Equal(t, filepath.Join("templates", "cv_template.tex"), merged.Template)
	assert.Equal(t, []string{"fr"}, merged.Locales)
	assert.Equal(t, "xelatex", merged.Engine)
	assert.Equal(t, 2, merged.Passes)
	assert.Equal(t, 120, merged.TimeoutSeconds)
	assert.True(t, merged.KeepAux)
	assert.False(t, merged.EscapeText)
}

func TestMergeWithDefaults_DoesNotAliasLocales(t *testing.T) {
	defaults := Defaults()
	empty := Config{}
	merged := empty.MergeWithDefaults(defaults)

	merged.Locales[0] = "xx"
	assert.Equal(t, "en", defaults.Locales[0])
}

func validConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "cv.yaml")
	template := filepath.Join(dir, "cv_template.tex")
	require.NoError(t, os.WriteFile(input, []byte("cv: {}\n"), 0644))
	require.NoError(t, os.WriteFile(template, []byte("##HEADER####LEFT####RIGHT##"), 0644))

	empty := Config{Input: input, Template: template}
	return empty.MergeWithDefaults(Defaults())
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unsupported locale", func(c *Config) { c.Locales = []string{"en", "es"} }, "config error: 'locales[1]' must be one of [en de fr]"},
		{"duplicate locale", func(c *Config) { c.Locales = []string{"en", "en"} }, "'locales' must not list a value twice"},
		{"no locales", func(c *Config) { c.Locales = []string{} }, "'locales' must be at least 1"},
		{"too many passes", func(c *Config) { c.Passes = 6 }, "'passes' must be at most 5"},
		{"zero timeout", func(c *Config) { c.TimeoutSeconds = 0 }, "'timeout_seconds' must be at least 1"},
		{"empty engine", func(c *Config) { c.Engine = "" }, "'engine' is required"},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, "'output_dir' is required"},
		{"missing input", func(c *Config) { c.Input = "/nonexistent/cv.yaml" }, "input file not found"},
		{"missing template", func(c *Config) { c.Template = "/nonexistent/t.tex" }, "template file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTimeout(t *testing.T) {
	cfg := Config{TimeoutSeconds: 90}
	assert.Equal(t, 90*time.Second, cfg.Timeout())
}
