package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-generator/internal/i18n"
	"github.com/jonathan/cv-generator/internal/pipeline"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one locale to LaTeX without typesetting",
	Long:  "Renders the YAML résumé for a single locale and writes the composed LaTeX document to --out, or to stdout when --out is not set.",
	RunE:  runRender,
}

var (
	renderFlags  configFlags
	renderLocale string
	renderOut    string
)

func init() {
	renderFlags.registerInputs(renderCmd)
	renderCmd.Flags().StringVarP(&renderLocale, "locale", "l", string(i18n.English), "Locale to render")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Path to output .tex file (default stdout)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := renderFlags.resolve(cmd)
	if err != nil {
		return err
	}
	locale, err := i18n.ParseLocale(renderLocale)
	if err != nil {
		return err
	}

	inputs, err := pipeline.LoadInputs(cfg.Input, cfg.Template, cfg.EscapeText)
	if err != nil {
		return err
	}
	latex, err := inputs.Compose(locale)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", locale, err)
	}

	if renderOut == "" {
		_, _ = fmt.Fprint(os.Stdout, latex)
		return nil
	}

	if dir := filepath.Dir(renderOut); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(renderOut, []byte(latex), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if cfg.Verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", renderOut)
	}
	return nil
}
