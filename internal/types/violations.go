// Package types provides type definitions for structured data used throughout the docs-lint system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Severity classifies a violation. Only errors affect validity.
type Severity string

const (
	// SeverityError marks a structural violation that fails the file
	SeverityError Severity = "error"
	// SeverityWarning marks an advisory finding that never fails the file
	SeverityWarning Severity = "warning"
)

// Violation represents a single validation finding
type Violation struct {
	File       string   `json:"file"`
	LineNumber *int     `json:"line_number,omitempty"`
	Check      string   `json:"check"`
	Type       string   `json:"type"`
	Severity   Severity `json:"severity"`
	Details    string   `json:"details"`
}

// IsError reports whether the violation affects validity
func (v Violation) IsError() bool {
	return v.Severity == SeverityError
}

// Location renders "path:line" or just "path" for file-level findings
func (v Violation) Location() string {
	if v.LineNumber == nil {
		return v.File
	}
	return fmt.Sprintf("%s:%d", v.File, *v.LineNumber)
}

// LineNumber returns a pointer to a copy of n, for populating Violation.LineNumber.
func LineNumber(n int) *int {
	return &n
}
