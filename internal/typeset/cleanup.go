package typeset

import (
	"errors"
	"log"
	"os"
	"path/filepath"
)

// AuxPatterns matches the auxiliary files the engine leaves next to the PDF
var AuxPatterns = []string{"*.aux", "*.log", "*.out"}

// CleanupAuxFiles removes every file in dir matching one of patterns and
// returns how many were removed. No matches is not an error. Files that could
// not be removed are reported together in a CleanupError after all others
// have been attempted.
func CleanupAuxFiles(dir string, patterns []string) (int, error) {
	removed := 0
	var failed []string
	var errs []error

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return removed, err
		}
		for _, path := range matches {
			if err := os.Remove(path); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				log.Printf("[CLEANUP] failed to remove %s: %v", path, err)
				failed = append(failed, path)
				errs = append(errs, err)
				continue
			}
			removed++
		}
	}

	if len(failed) > 0 {
		return removed, &CleanupError{Files: failed, Cause: errors.Join(errs...)}
	}
	return removed, nil
}
