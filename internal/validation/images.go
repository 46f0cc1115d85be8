package validation

import (
	"regexp"
	"strings"

	"github.com/jonathan/docs-lint/internal/markdown"
	"github.com/jonathan/docs-lint/internal/types"
)

var markdownImagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)

// ValidateImages checks markdown ![alt](url) and HTML <img> images. Missing
// alt text is only a warning; a missing local file is an error.
func ValidateImages(doc *markdown.Document, ctx *Context) []types.Violation {
	var violations []types.Violation

	for _, m := range markdownImagePattern.FindAllStringSubmatchIndex(doc.Content, -1) {
		line := doc.LineAt(m[0])
		alt := doc.Content[m[2]:m[3]]
		target := cleanURL(doc.Content[m[4]:m[5]])

		if strings.TrimSpace(alt) == "" {
			violations = append(violations, newViolation(doc, CheckImages, "missing_alt_text", types.SeverityWarning, line,
				"Image is missing alt text: %q", target))
		}

		if v, broken := checkLocalTarget(doc, ctx, CheckImages, "broken_image", "Broken image", target, line); broken {
			violations = append(violations, v)
		}
	}

	for _, tag := range findHTMLTags(doc.Content, htmlImagePattern, "img") {
		line := doc.LineAt(tag.offset)
		src, _ := tag.attr("src")
		src = strings.TrimSpace(src)

		if alt, ok := tag.attr("alt"); !ok || strings.TrimSpace(alt) == "" {
			violations = append(violations, newViolation(doc, CheckImages, "missing_alt_text", types.SeverityWarning, line,
				"Image is missing alt text: %q", src))
		}

		if v, broken := checkLocalTarget(doc, ctx, CheckImages, "broken_image", "Broken image", src, line); broken {
			violations = append(violations, v)
		}
	}

	return violations
}
