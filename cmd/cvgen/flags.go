package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/cv-generator/internal/config"
	"github.com/jonathan/cv-generator/internal/i18n"
	"github.com/spf13/cobra"
)

// configFlags are the flags shared by every command that reads the
// configuration. Each command owns its own instance.
type configFlags struct {
	configPath string
	input      string
	template   string
	outputDir  string
	locales    []string
	engine     string
	passes     int
	timeout    int
	keepAux    bool
	escape     bool
	verbose    bool
}

// registerInputs adds the flags needed to load and render a document
func (f *configFlags) registerInputs(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVarP(&f.input, "in", "i", "", "Path to the YAML résumé (default inputs/cv.yaml, env CVGEN_INPUT)")
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "Path to the LaTeX template (default templates/cv_template.tex, env CVGEN_TEMPLATE)")
	cmd.Flags().BoolVar(&f.escape, "escape", false, "Escape LaTeX special characters in document text")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
}

// registerBuild adds the output, locale and typesetter flags
func (f *configFlags) registerBuild(cmd *cobra.Command) {
	f.registerInputs(cmd)
	cmd.Flags().StringVarP(&f.outputDir, "out-dir", "o", "", "Output directory (default outputs, env CVGEN_OUTPUT_DIR)")
	cmd.Flags().StringSliceVarP(&f.locales, "locale", "l", nil, "Locale(s) to build, repeatable (default en,de,fr)")
	cmd.Flags().StringVar(&f.engine, "engine", "", "LaTeX engine (default xelatex, env CVGEN_ENGINE)")
	cmd.Flags().IntVar(&f.passes, "passes", 0, "Number of engine passes per locale (default 2)")
	cmd.Flags().IntVar(&f.timeout, "timeout", 0, "Timeout per engine pass in seconds (default 120)")
	cmd.Flags().BoolVar(&f.keepAux, "keep-aux", false, "Keep .aux, .log and .out files after typesetting")
}

// resolve merges defaults < environment < config file < explicitly set flags.
// The result has normalized locales but is not yet validated.
func (f *configFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	defaults := config.Defaults()
	base := config.FromEnv(os.Getenv)
	base = base.MergeWithDefaults(defaults)

	cfg := base
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(base)
	}

	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("in") {
		cfg.Input = f.input
	}
	if flags.Changed("template") {
		cfg.Template = f.template
	}
	if flags.Changed("out-dir") {
		cfg.OutputDir = f.outputDir
	}
	if flags.Changed("locale") {
		cfg.Locales = f.locales
	}
	if flags.Changed("engine") {
		cfg.Engine = f.engine
	}
	if flags.Changed("passes") {
		cfg.Passes = f.passes
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = f.timeout
	}
	if flags.Changed("keep-aux") {
		cfg.KeepAux = f.keepAux
	}
	if flags.Changed("escape") {
		cfg.EscapeText = f.escape
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	for i, code := range cfg.Locales {
		cfg.Locales[i] = strings.ToLower(strings.TrimSpace(code))
	}

	if cfg.Verbose && f.configPath != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", f.configPath)
	}
	return cfg, nil
}

// resolveValid is resolve followed by validation and locale parsing
func (f *configFlags) resolveValid(cmd *cobra.Command) (config.Config, []i18n.Locale, error) {
	cfg, err := f.resolve(cmd)
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}
	locales, err := i18n.ParseLocales(cfg.Locales)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, locales, nil
}
