// Package validation provides the structural checks applied to markdown documents.
package validation

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/docs-lint/internal/markdown"
	"github.com/jonathan/docs-lint/internal/schemas"
	"github.com/jonathan/docs-lint/internal/types"
)

// Check names, used as Violation.Check and in summaries
const (
	CheckFrontMatter     = "front_matter"
	CheckHeaders         = "headers"
	CheckWhitespace      = "whitespace"
	CheckCodeBlocks      = "code_blocks"
	CheckLinks           = "links"
	CheckImages          = "images"
	CheckTables          = "tables"
	CheckCallouts        = "callouts"
	CheckSecondaryLabels = "secondary_labels"
	CheckFile            = "file"
)

// Context carries the configuration shared by every check. It is read-only
// during validation, so one Context may serve concurrent documents.
type Context struct {
	// RepoRoot anchors absolute-style local links ("/docs/x.md")
	RepoRoot string
	// RequiredFrontMatterFields must be present and non-empty in front matter
	RequiredFrontMatterFields []string
	// FrontMatterSchema is applied to decoded front matter when set
	FrontMatterSchema *schemas.Schema
	// PathExists overrides the filesystem lookup used by link and image checks
	PathExists func(path string) bool
}

func (c *Context) pathExists(path string) bool {
	if c != nil && c.PathExists != nil {
		return c.PathExists(path)
	}
	// any stat failure (missing, permission, bad name) is reported as missing
	_, err := os.Stat(path)
	return err == nil
}

// CheckFunc is a pure function from a document to its findings
type CheckFunc func(doc *markdown.Document, ctx *Context) []types.Violation

// Check pairs a CheckFunc with its name
type Check struct {
	Name string
	Run  CheckFunc
}

// DefaultChecks is every check, in reporting order
var DefaultChecks = []Check{
	{Name: CheckFrontMatter, Run: ValidateFrontMatter},
	{Name: CheckHeaders, Run: ValidateHeaders},
	{Name: CheckWhitespace, Run: ValidateWhitespace},
	{Name: CheckCodeBlocks, Run: ValidateCodeBlocks},
	{Name: CheckLinks, Run: ValidateLinks},
	{Name: CheckImages, Run: ValidateImages},
	{Name: CheckTables, Run: ValidateTables},
	{Name: CheckCallouts, Run: ValidateCallouts},
	{Name: CheckSecondaryLabels, Run: ValidateSecondaryLabels},
}

// ValidateDocument runs every check against doc. Checks are independent: a
// failing check never prevents the others from running.
func ValidateDocument(doc *markdown.Document, ctx *Context) types.FileReport {
	return ValidateDocumentWith(doc, ctx, DefaultChecks)
}

// ValidateDocumentWith runs the given checks against doc
func ValidateDocumentWith(doc *markdown.Document, ctx *Context, checks []Check) types.FileReport {
	report := types.FileReport{
		File:    doc.Path,
		Results: make([]types.CheckResult, 0, len(checks)),
	}

	for _, check := range checks {
		violations := check.Run(doc, ctx)
		if violations == nil {
			violations = []types.Violation{}
		}
		report.Results = append(report.Results, types.CheckResult{
			Check:      check.Name,
			Violations: violations,
		})
	}

	return report
}

// ReadDocument loads a markdown file from disk
func ReadDocument(path string) (*markdown.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{
			Message: fmt.Sprintf("failed to read markdown file: %s", path),
			Cause:   err,
		}
	}
	return markdown.NewDocument(path, string(content)), nil
}

// ValidateFile reads path and validates it. A read failure is reported as a
// single file-level violation rather than returned.
func ValidateFile(path string, ctx *Context) types.FileReport {
	doc, err := ReadDocument(path)
	if err != nil {
		return types.FileReport{
			File: path,
			Results: []types.CheckResult{{
				Check: CheckFile,
				Violations: []types.Violation{{
					File:     path,
					Check:    CheckFile,
					Type:     "file_read",
					Severity: types.SeverityError,
					Details:  err.Error(),
				}},
			}},
		}
	}
	return ValidateDocument(doc, ctx)
}

// newViolation builds a finding for doc. line is 1-based; 0 marks a file-level finding.
func newViolation(doc *markdown.Document, check, kind string, severity types.Severity, line int, format string, args ...any) types.Violation {
	v := types.Violation{
		File:     doc.Path,
		Check:    check,
		Type:     kind,
		Severity: severity,
		Details:  fmt.Sprintf(format, args...),
	}
	if line > 0 {
		v.LineNumber = types.LineNumber(line)
	}
	return v
}

// bodyStart returns the index of the first line after the leading
// front-matter block, or 0 when there is no terminated block.
func bodyStart(doc *markdown.Document) int {
	return doc.FrontMatterEnd() + 1
}

const fenceMarker = "```"

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), fenceMarker)
}
