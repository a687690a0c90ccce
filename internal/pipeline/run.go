// Package pipeline provides the high-level orchestration for building résumés
// in every configured locale.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cv-generator/internal/i18n"
	"github.com/jonathan/cv-generator/internal/typeset"
	"github.com/jonathan/cv-generator/internal/types"
)

// DateLayout formats the run date used in output file names
const DateLayout = "2006_01_02"

// Pipeline steps reported through ProgressEvent
const (
	StepRender  = "render"
	StepWrite   = "write"
	StepTypeset = "typeset"
	StepCleanup = "cleanup"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Locale  string `json:"locale,omitempty"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Typesetter turns a composed .tex file into a PDF inside outputDir
type Typesetter interface {
	Compile(ctx context.Context, texPath string, outputDir string) (string, error)
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	InputPath    string
	TemplatePath string
	OutputDir    string
	Locales      []i18n.Locale
	EscapeText   bool

	// Typeset runs Typesetter on every written document
	Typeset    bool
	Typesetter Typesetter
	// KeepAux skips removal of the typesetter's auxiliary files
	KeepAux bool
	// CountPages reads the page count of a produced PDF; failures are ignored.
	// Defaults to typeset.CountPDFPages.
	CountPages func(pdfPath string) (int, error)

	// Now supplies the run date; defaults to time.Now
	Now        func() time.Time
	Verbose    bool
	OnProgress ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step string, locale i18n.Locale, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Locale:  string(locale),
			Message: message,
			RunID:   runID,
		})
	}
}

// OutputPath returns <outputDir>/<date>_CV_<locale>.tex
func OutputPath(outputDir, date string, locale i18n.Locale) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s_CV_%s.tex", date, locale))
}

// RunPipeline renders the document for every locale, writes one .tex file per
// locale and, when enabled, typesets each and removes auxiliary files.
// Every locale is rendered before anything is written, so an invalid document
// leaves the output directory untouched.
func RunPipeline(ctx context.Context, opts RunOptions) (*types.BuildReport, error) {
	if len(opts.Locales) == 0 {
		return nil, fmt.Errorf("no locales to build")
	}
	if opts.Typeset && opts.Typesetter == nil {
		return nil, fmt.Errorf("typesetting enabled but no typesetter configured")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	countPages := opts.CountPages
	if countPages == nil {
		countPages = typeset.CountPDFPages
	}

	runID := uuid.New().String()
	// The date is fixed once so every locale of a run shares the same stamp
	date := now().Format(DateLayout)
	log.Printf("[BUILD] run %s: %s -> %s (%d locale(s))", runID, opts.InputPath, opts.OutputDir, len(opts.Locales))

	inputs, err := LoadInputs(opts.InputPath, opts.TemplatePath, opts.EscapeText)
	if err != nil {
		return nil, err
	}

	documents := make([]string, len(opts.Locales))
	for i, locale := range opts.Locales {
		emitProgress(&opts, runID, StepRender, locale, fmt.Sprintf("Rendering %s...", locale))
		documents[i], err = inputs.Compose(locale)
		if err != nil {
			return nil, fmt.Errorf("rendering %s failed: %w", locale, err)
		}
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", opts.OutputDir, err)
	}

	report := &types.BuildReport{
		RunID:     runID,
		Date:      date,
		InputPath: opts.InputPath,
		OutputDir: opts.OutputDir,
	}

	for i, locale := range opts.Locales {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result, err := buildLocale(ctx, &opts, runID, date, locale, documents[i], countPages)
		if result != nil {
			report.Results = append(report.Results, *result)
		}
		if err != nil {
			return report, fmt.Errorf("building %s failed: %w", locale, err)
		}
	}

	log.Printf("[BUILD] run %s: done", runID)
	return report, nil
}

func buildLocale(ctx context.Context, opts *RunOptions, runID, date string, locale i18n.Locale, content string, countPages func(string) (int, error)) (*types.LocaleResult, error) {
	start := time.Now()
	texPath := OutputPath(opts.OutputDir, date, locale)

	if err := os.WriteFile(texPath, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", texPath, err)
	}
	emitProgress(opts, runID, StepWrite, locale, fmt.Sprintf("Wrote %s", texPath))

	result := &types.LocaleResult{Locale: string(locale), TexPath: texPath}
	if !opts.Typeset {
		result.Duration = time.Since(start)
		return result, nil
	}

	emitProgress(opts, runID, StepTypeset, locale, fmt.Sprintf("Typesetting %s...", filepath.Base(texPath)))
	pdfPath, compileErr := opts.Typesetter.Compile(ctx, texPath, opts.OutputDir)

	// Auxiliary files are removed whether or not the engine succeeded
	if !opts.KeepAux {
		removed, err := typeset.CleanupAuxFiles(opts.OutputDir, typeset.AuxPatterns)
		if err != nil {
			log.Printf("[CLEANUP] run %s: %v", runID, err)
		}
		result.Removed = removed
		emitProgress(opts, runID, StepCleanup, locale, fmt.Sprintf("Removed %d auxiliary file(s)", removed))
	}

	if compileErr != nil {
		var renderErr *typeset.RenderError
		if errors.As(compileErr, &renderErr) && renderErr.LogOutput != "" {
			log.Printf("[TYPESET] run %s: engine output (tail):\n%s", runID, renderErr.Tail(20))
		}
		result.Duration = time.Since(start)
		return result, compileErr
	}

	result.Typeset = true
	result.PDFPath = pdfPath
	if pages, err := countPages(pdfPath); err == nil {
		result.Pages = pages
	} else if opts.Verbose {
		log.Printf("[TYPESET] run %s: page count unavailable: %v", runID, err)
	}
	result.Duration = time.Since(start)

	return result, nil
}
