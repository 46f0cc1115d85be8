package validation

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jonathan/docs-lint/internal/markdown"
)

// isLocalURL reports whether target names a file in the repository:
// "./x", "../x" or "/x", excluding protocol-relative "//host" and "/#anchor".
func isLocalURL(target string) bool {
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/#") {
		return false
	}
	return strings.HasPrefix(target, "./") ||
		strings.HasPrefix(target, "../") ||
		strings.HasPrefix(target, "/")
}

// cleanURL strips angle brackets and an optional link title: `<./a b.md>`, `./a.md "Title"`.
func cleanURL(raw string) string {
	target := strings.TrimSpace(raw)
	if strings.HasPrefix(target, "<") {
		if end := strings.Index(target, ">"); end > 0 {
			return target[1:end]
		}
	}
	if fields := strings.Fields(target); len(fields) > 0 {
		return fields[0]
	}
	return target
}

// resolveLocalPath maps a local URL to a filesystem path. "/x" is anchored at
// the repository root, anything else at the document's directory. Fragment
// and query are dropped and percent-escapes decoded.
func resolveLocalPath(doc *markdown.Document, ctx *Context, target string) string {
	p := target
	if idx := strings.IndexAny(p, "#?"); idx >= 0 {
		p = p[:idx]
	}
	if unescaped, err := url.PathUnescape(p); err == nil {
		p = unescaped
	}

	if strings.HasPrefix(p, "/") {
		root := "."
		if ctx != nil && ctx.RepoRoot != "" {
			root = ctx.RepoRoot
		}
		return filepath.Join(root, filepath.FromSlash(p))
	}
	return filepath.Join(doc.Dir(), filepath.FromSlash(p))
}
