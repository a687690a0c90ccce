package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jonathan/cv-generator/internal/observability"
	"github.com/jonathan/cv-generator/internal/pipeline"
	"github.com/jonathan/cv-generator/internal/typeset"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the résumé for every configured locale",
	Long: `Renders the YAML résumé for each locale, writes <out-dir>/<YYYY_MM_DD>_CV_<locale>.tex,
typesets it with the LaTeX engine and removes auxiliary files.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBuild,
}

var (
	buildFlags     configFlags
	buildNoTypeset bool
)

func init() {
	buildFlags.registerBuild(buildCmd)
	buildCmd.Flags().BoolVar(&buildNoTypeset, "no-typeset", false, "Only write the .tex files")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, locales, err := buildFlags.resolveValid(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := pipeline.RunOptions{
		InputPath:    cfg.Input,
		TemplatePath: cfg.Template,
		OutputDir:    cfg.OutputDir,
		Locales:      locales,
		EscapeText:   cfg.EscapeText,
		Typeset:      !buildNoTypeset,
		Typesetter:   typeset.NewCompiler(cfg.Engine, cfg.Passes, cfg.Timeout()),
		KeepAux:      cfg.KeepAux,
		Verbose:      cfg.Verbose,
		OnProgress: func(e pipeline.ProgressEvent) {
			if cfg.Verbose || e.Step == pipeline.StepWrite {
				_, _ = fmt.Fprintf(os.Stdout, "[%s] %s\n", e.Locale, e.Message)
			}
		},
	}

	report, err := pipeline.RunPipeline(ctx, opts)
	if report != nil {
		observability.NewPrinter(os.Stdout).PrintBuildReport(report)
	}
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	return nil
}
