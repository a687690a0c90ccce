// Package types provides type definitions for structured data used throughout the cv-generator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// BuildReport summarizes one run of the build pipeline
type BuildReport struct {
	RunID     string         `json:"run_id"`
	Date      string         `json:"date"` // YYYY_MM_DD stamp used in output names
	InputPath string         `json:"input_path"`
	OutputDir string         `json:"output_dir"`
	Results   []LocaleResult `json:"results"`
}

// LocaleResult describes the artifacts produced for a single locale
type LocaleResult struct {
	Locale   string        `json:"locale"`
	TexPath  string        `json:"tex_path"`
	PDFPath  string        `json:"pdf_path,omitempty"`
	Pages    int           `json:"pages,omitempty"` // 0 when unknown
	Typeset  bool          `json:"typeset"`
	Removed  int           `json:"removed_aux_files"`
	Duration time.Duration `json:"duration_ns"`
}
