package validation

import (
	"regexp"
	"strings"

	"github.com/jonathan/docs-lint/internal/markdown"
	"github.com/jonathan/docs-lint/internal/types"
)

var (
	trailingWhitespacePattern = regexp.MustCompile(`\s+$`)
	extraSpacesPattern        = regexp.MustCompile(`\S\s{2,}\S`)
	listItemPattern           = regexp.MustCompile(`^\s*-\s`)
)

// ValidateWhitespace flags trailing whitespace, runs of interior spaces in
// prose, and files that do not end with exactly one newline. The leading
// front-matter block is exempt from the per-line rules.
func ValidateWhitespace(doc *markdown.Document, _ *Context) []types.Violation {
	var violations []types.Violation

	for i := bodyStart(doc); i < len(doc.Lines); i++ {
		line := doc.Lines[i]
		lineNum := i + 1

		if trailingWhitespacePattern.MatchString(line) {
			violations = append(violations, newViolation(doc, CheckWhitespace, "trailing_whitespace", types.SeverityError, lineNum,
				"Line has trailing whitespace: %q", line))
		}

		if !exemptFromSpacing(line) && extraSpacesPattern.MatchString(line) {
			violations = append(violations, newViolation(doc, CheckWhitespace, "extra_spaces", types.SeverityError, lineNum,
				"Line has extra spaces: %q", line))
		}
	}

	if !strings.HasSuffix(doc.Content, "\n") || strings.HasSuffix(doc.Content, "\n\n") {
		violations = append(violations, newViolation(doc, CheckWhitespace, "trailing_newline", types.SeverityError, 0,
			"File should end with a single newline character"))
	}

	return violations
}

// exemptFromSpacing covers indented code, fence lines, headers, list items and table rows
func exemptFromSpacing(line string) bool {
	return strings.HasPrefix(line, "    ") ||
		strings.HasPrefix(line, fenceMarker) ||
		headerFormatPattern.MatchString(line) ||
		listItemPattern.MatchString(line) ||
		strings.HasPrefix(line, "|")
}
