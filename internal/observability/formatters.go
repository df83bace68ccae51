// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobshield/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxFlagsToShow is the default number of flags to display
	maxFlagsToShow = 6
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPosting outputs a short summary of the posting under analysis.
func (p *Printer) PrintPosting(posting *types.JobPosting) {
	if posting == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", posting.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", posting.Company))
	if posting.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", posting.Location))
	}
	if posting.SalaryText != "" {
		sb.WriteString(fmt.Sprintf("Salary:   %s\n", posting.SalaryText))
	}
	sb.WriteString(fmt.Sprintf("Fingerprint: %s", posting.Fingerprint()))

	p.printBox("JOB POSTING", sb.String())
}

// PrintAnalysisResult outputs the composite verdict with its sub-signals
// and evidence flags.
func (p *Printer) PrintAnalysisResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Risk:       %.2f\n", result.Risk))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))
	if result.AnalysisFailed {
		sb.WriteString(fmt.Sprintf("ANALYSIS FAILED: %s\n", result.Error))
	}
	sb.WriteString("\n")

	sb.WriteString("Sub-scores:\n")
	sb.WriteString(fmt.Sprintf("  text:     %.2f\n", result.SubScores.Text.Score))
	sb.WriteString(fmt.Sprintf("  company:  verified=%t generic=%t\n",
		result.SubScores.Company.Verified, result.SubScores.Company.IsGeneric))
	sb.WriteString(fmt.Sprintf("  salary:   realistic=%t\n", result.SubScores.Salary.Realistic))
	sb.WriteString(fmt.Sprintf("  external: %.2f", result.SubScores.External.RiskScore))
	if result.SubScores.External.Error != "" {
		sb.WriteString(" (degraded)")
	}
	sb.WriteString("\n")

	if len(result.Flags) > 0 {
		sb.WriteString("\nFlags:\n")
		count := min(len(result.Flags), maxFlagsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Flags[i]))
		}
		if len(result.Flags) > maxFlagsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Flags)-maxFlagsToShow))
		}
	}

	p.printBox("ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
