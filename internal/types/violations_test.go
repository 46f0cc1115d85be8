// Package types provides type definitions for structured data used throughout the docs-lint system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_JSONMarshaling(t *testing.T) {
	violation := Violation{
		File:       "docs/intro.md",
		LineNumber: LineNumber(10),
		Check:      "headers",
		Type:       "header_level_skipped",
		Severity:   SeverityError,
		Details:    "Header level skipped from 2 to 4",
	}

	jsonBytes, err := json.MarshalIndent(violation, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"file": "docs/intro.md"`)
	assert.Contains(t, string(jsonBytes), `"line_number": 10`)
	assert.Contains(t, string(jsonBytes), `"check": "headers"`)
	assert.Contains(t, string(jsonBytes), `"severity": "error"`)
}

func TestViolation_OptionalLineNumber(t *testing.T) {
	violation := Violation{
		File:     "README.md",
		Check:    "whitespace",
		Type:     "trailing_newline",
		Severity: SeverityError,
		Details:  "File should end with a single newline character",
	}

	jsonBytes, err := json.Marshal(violation)
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), "line_number")
	assert.Equal(t, "README.md", violation.Location())
}

func TestViolation_Location(t *testing.T) {
	v := Violation{File: "a.md", LineNumber: LineNumber(3)}
	assert.Equal(t, "a.md:3", v.Location())
}

func TestViolation_IsError(t *testing.T) {
	assert.True(t, Violation{Severity: SeverityError}.IsError())
	assert.False(t, Violation{Severity: SeverityWarning}.IsError())
}

func TestLineNumber_ReturnsDistinctPointers(t *testing.T) {
	a := LineNumber(1)
	b := LineNumber(1)
	require.NotNil(t, a)
	assert.NotSame(t, a, b)
	assert.Equal(t, *a, *b)
}
