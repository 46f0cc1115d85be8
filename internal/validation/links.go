package validation

import (
	"regexp"
	"strings"

	"github.com/jonathan/docs-lint/internal/markdown"
	"github.com/jonathan/docs-lint/internal/types"
)

var markdownLinkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)

// ValidateLinks checks markdown [text](url) and HTML <a href> links: link
// text must not be empty and local targets must exist on disk.
func ValidateLinks(doc *markdown.Document, ctx *Context) []types.Violation {
	var violations []types.Violation

	for _, m := range markdownLinkPattern.FindAllStringSubmatchIndex(doc.Content, -1) {
		start := m[0]
		if start > 0 && doc.Content[start-1] == '!' {
			// image, handled by ValidateImages
			continue
		}

		line := doc.LineAt(start)
		text := doc.Content[m[2]:m[3]]
		target := cleanURL(doc.Content[m[4]:m[5]])

		if strings.TrimSpace(text) == "" {
			violations = append(violations, newViolation(doc, CheckLinks, "empty_link_text", types.SeverityError, line,
				"Link text is empty for URL %q", target))
		}

		if v, broken := checkLocalTarget(doc, ctx, CheckLinks, "broken_link", "Broken link", target, line); broken {
			violations = append(violations, v)
		}
	}

	for _, tag := range findHTMLTags(doc.Content, htmlAnchorPattern, "a") {
		href, ok := tag.attr("href")
		if !ok {
			continue
		}
		if v, broken := checkLocalTarget(doc, ctx, CheckLinks, "broken_link", "Broken link", strings.TrimSpace(href), doc.LineAt(tag.offset)); broken {
			violations = append(violations, v)
		}
	}

	return violations
}

// checkLocalTarget returns a violation when target is local and does not exist
func checkLocalTarget(doc *markdown.Document, ctx *Context, check, kind, label, target string, line int) (types.Violation, bool) {
	if !isLocalURL(target) {
		return types.Violation{}, false
	}

	resolved := resolveLocalPath(doc, ctx, target)
	if ctx.pathExists(resolved) {
		return types.Violation{}, false
	}

	return newViolation(doc, check, kind, types.SeverityError, line,
		"%s: %q (resolved to %s)", label, target, resolved), true
}
