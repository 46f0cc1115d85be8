// Package types provides type definitions for structured data used throughout the docs-lint system.
package types

import "sort"

// CheckResult holds the findings of one validator over one document
type CheckResult struct {
	Check      string      `json:"check"`
	Violations []Violation `json:"violations"`
}

// Valid reports whether the check produced no error-severity violations.
// Warnings never affect validity.
func (r CheckResult) Valid() bool {
	for _, v := range r.Violations {
		if v.IsError() {
			return false
		}
	}
	return true
}

// FileReport aggregates every check result for a single file
type FileReport struct {
	File    string        `json:"file"`
	Results []CheckResult `json:"results"`
}

// Valid reports whether every check over the file is valid
func (f FileReport) Valid() bool {
	for _, r := range f.Results {
		if !r.Valid() {
			return false
		}
	}
	return true
}

// Violations flattens the file's findings in check order
func (f FileReport) Violations() []Violation {
	var out []Violation
	for _, r := range f.Results {
		out = append(out, r.Violations...)
	}
	return out
}

// RunResult aggregates the reports for all discovered files
type RunResult struct {
	RunID string       `json:"run_id"`
	Root  string       `json:"root"`
	Files []FileReport `json:"files"`
}

// Valid reports whether every file passed
func (r *RunResult) Valid() bool {
	for _, f := range r.Files {
		if !f.Valid() {
			return false
		}
	}
	return true
}

// ExitCode maps the run outcome to a process exit status
func (r *RunResult) ExitCode() int {
	if r.Valid() {
		return 0
	}
	return 1
}

// CheckSummary counts findings for one check across the run
type CheckSummary struct {
	Check    string `json:"check"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
}

// Summary returns per-check error and warning counts, sorted by check name.
// Checks that ran but found nothing are included with zero counts.
func (r *RunResult) Summary() []CheckSummary {
	byCheck := make(map[string]*CheckSummary)
	for _, f := range r.Files {
		for _, res := range f.Results {
			s, ok := byCheck[res.Check]
			if !ok {
				s = &CheckSummary{Check: res.Check}
				byCheck[res.Check] = s
			}
			for _, v := range res.Violations {
				if v.IsError() {
					s.Errors++
				} else {
					s.Warnings++
				}
			}
		}
	}

	out := make([]CheckSummary, 0, len(byCheck))
	for _, s := range byCheck {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Check < out[j].Check })
	return out
}

// Report is the JSON document written by --out
type Report struct {
	RunID      string         `json:"run_id"`
	Root       string         `json:"root"`
	Valid      bool           `json:"valid"`
	FileCount  int            `json:"file_count"`
	Violations []Violation    `json:"violations"`
	Summary    []CheckSummary `json:"summary"`
}

// NewReport builds the serialisable report for a run
func NewReport(r *RunResult) Report {
	violations := []Violation{}
	for _, f := range r.Files {
		violations = append(violations, f.Violations()...)
	}
	return Report{
		RunID:      r.RunID,
		Root:       r.Root,
		Valid:      r.Valid(),
		FileCount:  len(r.Files),
		Violations: violations,
		Summary:    r.Summary(),
	}
}
