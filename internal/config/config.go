// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment variables read by FromEnv
const (
	EnvInput     = "CVGEN_INPUT"
	EnvTemplate  = "CVGEN_TEMPLATE"
	EnvOutputDir = "CVGEN_OUTPUT_DIR"
	EnvEngine    = "CVGEN_ENGINE"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional in the file; missing values come from the
// environment, then from Defaults.
type Config struct {
	// Paths
	Input     string `json:"input,omitempty" validate:"required"`      // Path to the YAML résumé document
	Template  string `json:"template,omitempty" validate:"required"`   // Path to the LaTeX template
	OutputDir string `json:"output_dir,omitempty" validate:"required"` // Directory for .tex and .pdf output

	// Locales to build, in order
	Locales []string `json:"locales,omitempty" validate:"min=1,unique,dive,oneof=en de fr"`

	// Typesetter
	Engine         string `json:"engine,omitempty" validate:"required"`
	Passes         int    `json:"passes,omitempty" validate:"min=1,max=5"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"min=1,max=3600"`

	// Behavior
	KeepAux    bool `json:"keep_aux,omitempty"`    // Leave .aux/.log/.out files in place
	EscapeText bool `json:"escape_text,omitempty"` // Escape LaTeX special characters in document text
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// Defaults returns the configuration used when nothing else is set
func Defaults() Config {
	return Config{
		Input:          filepath.Join("inputs", "cv.yaml"),
		Template:       filepath.Join("templates", "cv_template.tex"),
		OutputDir:      "outputs",
		Locales:        []string{"en", "de", "fr"},
		Engine:         "xelatex",
		Passes:         2,
		TimeoutSeconds: 120,
	}
}

// FromEnv reads path and engine overrides from the environment.
// Unset variables leave the corresponding field empty.
func FromEnv(getenv func(string) string) Config {
	return Config{
		Input:     getenv(EnvInput),
		Template:  getenv(EnvTemplate),
		OutputDir: getenv(EnvOutputDir),
		Engine:    getenv(EnvEngine),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON name so messages match the config file
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks a fully merged configuration. It reports the first failing
// field only.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("config error: %s", describe(fieldErrs[0]))
		}
		return fmt.Errorf("config error: %w", err)
	}

	if _, err := os.Stat(c.Input); os.IsNotExist(err) {
		return fmt.Errorf("config error: input file not found: %s", c.Input)
	}
	if _, err := os.Stat(c.Template); os.IsNotExist(err) {
		return fmt.Errorf("config error: template file not found: %s", c.Template)
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("'%s' must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("'%s' must be at most %s", fe.Field(), fe.Param())
	case "unique":
		return fmt.Sprintf("'%s' must not list a value twice", fe.Field())
	default:
		return fmt.Sprintf("'%s' failed the %q check", fe.Field(), fe.Tag())
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file values over the environment and the
// built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Engine == "" {
		result.Engine = defaults.Engine
	}

	if len(result.Locales) == 0 {
		result.Locales = append([]string(nil), defaults.Locales...)
	}

	// Int fields: use default if zero
	if result.Passes == 0 {
		result.Passes = defaults.Passes
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so a true anywhere wins
	result.KeepAux = result.KeepAux || defaults.KeepAux
	result.EscapeText = result.EscapeText || defaults.EscapeText
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Timeout returns the per-pass typesetter timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
