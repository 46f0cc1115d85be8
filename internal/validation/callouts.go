package validation

import (
	"strings"

	"github.com/jonathan/docs-lint/internal/markdown"
	"github.com/jonathan/docs-lint/internal/types"
)

// CalloutMarker opens (`<$>[note]`) and closes (`<$>`) a callout block
const CalloutMarker = "<$>"

// ValidateCallouts reports a callout still open at the end of the document
func ValidateCallouts(doc *markdown.Document, _ *Context) []types.Violation {
	open := false
	startLine := 0

	for i, line := range doc.Lines {
		if !strings.HasPrefix(strings.TrimSpace(line), CalloutMarker) {
			continue
		}

		open = !open
		if open {
			startLine = i + 1
		}
	}

	if !open {
		return nil
	}

	return []types.Violation{newViolation(doc, CheckCallouts, "unclosed_callout", types.SeverityError, startLine,
		"Unclosed callout starting at line %d: %q", startLine, strings.TrimSpace(doc.Lines[startLine-1]))}
}
