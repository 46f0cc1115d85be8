package validation

import (
	"regexp"
	"strings"

	"github.com/jonathan/docs-lint/internal/markdown"
	"github.com/jonathan/docs-lint/internal/types"
)

var (
	headerPrefixPattern  = regexp.MustCompile(`^#+`)
	headerFormatPattern  = regexp.MustCompile(`^#+\s`)
	headerExtraSpPattern = regexp.MustCompile(`^#+\s\s+`)
)

// ValidateHeaders enforces the header hierarchy: the first header is level 1
// or 2, levels never increase by more than one, and exactly one space follows
// the # run. Every line that is exactly --- toggles front matter, and lines
// inside it are not scanned. Fenced code is scanned like any other text.
func ValidateHeaders(doc *markdown.Document, _ *Context) []types.Violation {
	var violations []types.Violation
	var levels []int
	inFrontMatter := false

	for i, line := range doc.Lines {
		lineNum := i + 1

		if line == markdown.Delimiter {
			inFrontMatter = !inFrontMatter
			continue
		}
		if inFrontMatter || !strings.HasPrefix(line, "#") {
			continue
		}

		level := len(headerPrefixPattern.FindString(line))

		if len(levels) == 0 && level > 2 {
			violations = append(violations, newViolation(doc, CheckHeaders, "first_header_level", types.SeverityError, lineNum,
				"First header should be level 1 or 2, found level %d", level))
		}

		if len(levels) > 0 {
			previous := levels[len(levels)-1]
			if level > previous+1 {
				violations = append(violations, newViolation(doc, CheckHeaders, "header_level_skipped", types.SeverityError, lineNum,
					"Header level skipped from %d to %d", previous, level))
			}
		}

		if !headerFormatPattern.MatchString(line) || headerExtraSpPattern.MatchString(line) {
			violations = append(violations, newViolation(doc, CheckHeaders, "header_format", types.SeverityError, lineNum,
				"Header format error: should have exactly one space after #: %q", line))
		}

		levels = append(levels, level)
	}

	return violations
}
