// Package observability provides formatted terminal summaries for the CLI.
package observability

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/cv-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
)

// Printer handles formatted output for summaries and verbose mode
type Printer struct {
	out   io.Writer
	title lipgloss.Style
	box   lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
}

// NewPrinter creates a new Printer that writes to the given writer.
// Colors are only emitted when out is a color-capable terminal.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:   out,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Width(boxWidth),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#5FD787")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		muted: r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// printBox prints a bordered box with a title line followed by content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	body := lipgloss.JoinVertical(lipgloss.Left, p.title.Render(title), "", content)
	fmt.Fprintln(p.out, p.box.Render(body))
}

// PrintBuildReport outputs the artifacts produced for each locale
func (p *Printer) PrintBuildReport(report *types.BuildReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:     %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Date:    %s\n", report.Date))
	sb.WriteString(fmt.Sprintf("Input:   %s\n", report.InputPath))
	sb.WriteString(fmt.Sprintf("Output:  %s\n", report.OutputDir))

	for _, res := range report.Results {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s  %s\n", p.ok.Render("✓"), strings.ToUpper(res.Locale)))
		sb.WriteString(fmt.Sprintf("    tex:   %s\n", filepath.Base(res.TexPath)))
		if !res.Typeset {
			sb.WriteString(p.muted.Render("    typesetting skipped") + "\n")
			continue
		}
		pdf := filepath.Base(res.PDFPath)
		if res.Pages > 0 {
			pdf = fmt.Sprintf("%s (%d %s)", pdf, res.Pages, plural(res.Pages, "page", "pages"))
		}
		sb.WriteString(fmt.Sprintf("    pdf:   %s\n", pdf))
		sb.WriteString(p.muted.Render(fmt.Sprintf("    %s, %d auxiliary %s removed",
			res.Duration.Round(time.Millisecond), res.Removed, plural(res.Removed, "file", "files"))) + "\n")
	}

	p.printBox("BUILD SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOutline outputs the top-level sections of a document in order
func (p *Printer) PrintOutline(inputPath string, sections []types.SectionSummary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Input: %s\n\n", inputPath))

	if len(sections) == 0 {
		sb.WriteString(p.muted.Render("(no sections)"))
	}
	for i, s := range sections {
		kind := s.Kind
		if !s.Known {
			kind = p.fail.Render("unknown")
		}
		line := fmt.Sprintf("%d. %-22s %-16s", i+1, s.Name, kind)
		if s.Entries > 0 {
			line += fmt.Sprintf(" %d %s", s.Entries, plural(s.Entries, "entry", "entries"))
		}
		sb.WriteString(line + "\n")
	}

	p.printBox("DOCUMENT OUTLINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCheck outputs one pass/fail line for a named check
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCheck(name string, err error) {
	if err == nil {
		fmt.Fprintf(p.out, "%s %s\n", p.ok.Render("✓"), name)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.fail.Render("✗"), name)
	for _, line := range strings.Split(strings.TrimRight(err.Error(), "\n"), "\n") {
		fmt.Fprintf(p.out, "    %s\n", line)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
