package validation

import (
	"regexp"
	"strings"

	"github.com/jonathan/docs-lint/internal/markdown"
	"github.com/jonathan/docs-lint/internal/types"
)

// secondaryLabelPattern matches `[secondary_label Output]`
var secondaryLabelPattern = regexp.MustCompile(`\[secondary_label(?:\s([^\]]*))?\]`)

// ValidateSecondaryLabels reports secondary labels without content
func ValidateSecondaryLabels(doc *markdown.Document, _ *Context) []types.Violation {
	var violations []types.Violation

	for _, m := range secondaryLabelPattern.FindAllStringSubmatchIndex(doc.Content, -1) {
		content := ""
		if m[2] >= 0 {
			content = doc.Content[m[2]:m[3]]
		}
		if strings.TrimSpace(content) != "" {
			continue
		}
		violations = append(violations, newViolation(doc, CheckSecondaryLabels, "empty_secondary_label", types.SeverityError, doc.LineAt(m[0]),
			"Secondary label is empty: %q", doc.Content[m[0]:m[1]]))
	}

	return violations
}
