// Package observability provides CLI output and diagnostic logging.
package observability

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/jonathan/docs-lint/internal/types"
)

// Printer writes the human-readable lint transcript. Errors and the failure
// banner go to errOut, everything else to out.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// NewPrinter creates a new Printer that writes to the given writers
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// PrintFound announces how many files were discovered
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFound(count int) {
	fmt.Fprintf(p.out, "Found %d markdown files to validate\n", count)
}

// PrintValidating marks the start of a file's findings
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidating(path string) {
	fmt.Fprintf(p.out, "\nValidating %s...\n", path)
}

// PrintFileReport outputs every finding of one file. A file without errors
// also gets a pass line, after any warnings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFileReport(report types.FileReport) {
	for _, v := range report.Violations() {
		if v.IsError() {
			fmt.Fprintf(p.errOut, "❌ %s: %s\n", v.Location(), v.Details)
		} else {
			fmt.Fprintf(p.out, "⚠️ %s: %s\n", v.Location(), v.Details)
		}
	}

	if report.Valid() {
		fmt.Fprintf(p.out, "✅ %s: All checks passed\n", report.File)
	}
}

// PrintResult outputs the final verdict for a run
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResult(result *types.RunResult) {
	if result.Valid() {
		fmt.Fprintln(p.out, "\n✅ All markdown files validated successfully")
		return
	}
	fmt.Fprintln(p.errOut, "\n❌ Validation failed")
}

// PrintSummary renders the per-check error and warning counts as a table
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(result *types.RunResult) {
	summary := result.Summary()

	fmt.Fprintln(p.out)
	if len(summary) == 0 {
		fmt.Fprintln(p.out, "No files validated")
		return
	}

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Check", "Errors", "Warnings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	totalErrors, totalWarnings := 0, 0
	for _, s := range summary {
		table.Append([]string{s.Check, strconv.Itoa(s.Errors), strconv.Itoa(s.Warnings)})
		totalErrors += s.Errors
		totalWarnings += s.Warnings
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d files", len(result.Files)),
		strconv.Itoa(totalErrors),
		strconv.Itoa(totalWarnings),
	})
	table.Render()
}
