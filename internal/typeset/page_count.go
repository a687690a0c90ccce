package typeset

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// CountPDFPages counts the pages of a PDF file.
// It tries pdfinfo first, then falls back to ghostscript.
func CountPDFPages(pdfPath string) (int, error) {
	if count, err := countPagesWithPdfinfo(pdfPath); err == nil {
		return count, nil
	}

	if count, err := countPagesWithGhostscript(pdfPath); err == nil {
		return count, nil
	}

	return 0, fmt.Errorf("failed to count PDF pages of %s: neither pdfinfo nor ghostscript succeeded", pdfPath)
}

func countPagesWithPdfinfo(pdfPath string) (int, error) {
	output, err := exec.Command("pdfinfo", pdfPath).Output()
	if err != nil {
		return 0, fmt.Errorf("pdfinfo command failed: %w", err)
	}
	return parsePdfinfoPages(string(output))
}

// parsePdfinfoPages extracts N from the "Pages: N" line of pdfinfo output
func parsePdfinfoPages(output string) (int, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "Pages:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 2 {
			if count, err := strconv.Atoi(parts[1]); err == nil {
				return count, nil
			}
		}
	}
	return 0, fmt.Errorf("could not parse page count from pdfinfo output")
}

func countPagesWithGhostscript(pdfPath string) (int, error) {
	script := fmt.Sprintf("(%s) (r) file runpdfbegin pdfpagecount = quit", pdfPath)
	output, err := exec.Command("gs", "-q", "-dNODISPLAY", "-dNOSAFER", "-c", script).Output()
	if err != nil {
		return 0, fmt.Errorf("ghostscript command failed: %w", err)
	}

	trimmed := strings.TrimSpace(string(output))
	count, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("could not parse page count from ghostscript output: %s", trimmed)
	}
	return count, nil
}
