package validation

import (
	"strings"

	"github.com/jonathan/docs-lint/internal/markdown"
	"github.com/jonathan/docs-lint/internal/types"
)

// ValidateCodeBlocks reports fences left open at the end of the document and
// warns about opening fences that declare no language.
func ValidateCodeBlocks(doc *markdown.Document, _ *Context) []types.Violation {
	var violations []types.Violation

	inFence := false
	startLine := 0
	language := ""

	for i, line := range doc.Lines {
		if !isFence(line) {
			continue
		}

		if inFence {
			inFence = false
			continue
		}

		inFence = true
		startLine = i + 1
		language = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fenceMarker))

		if language == "" {
			violations = append(violations, newViolation(doc, CheckCodeBlocks, "code_block_language", types.SeverityWarning, startLine,
				"Code block is missing a language specifier"))
		}
	}

	if inFence {
		shown := language
		if shown == "" {
			shown = "none"
		}
		violations = append(violations, newViolation(doc, CheckCodeBlocks, "unclosed_code_block", types.SeverityError, startLine,
			"Unclosed code block starting at line %d (language: %s)", startLine, shown))
	}

	return violations
}
