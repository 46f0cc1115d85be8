package validation

import (
	"errors"

	"github.com/jonathan/docs-lint/internal/markdown"
	"github.com/jonathan/docs-lint/internal/schemas"
	"github.com/jonathan/docs-lint/internal/types"
)

// ValidateFrontMatter parses the leading front-matter block and checks the
// configured required fields and, when present, the JSON schema. A malformed
// block is reported as one violation and never propagated.
func ValidateFrontMatter(doc *markdown.Document, ctx *Context) []types.Violation {
	var violations []types.Violation

	meta, _, err := markdown.ParseFrontMatter(doc.Content)
	if err != nil {
		return append(violations, newViolation(doc, CheckFrontMatter, "front_matter_parse", types.SeverityError, 1,
			"Front matter could not be parsed: %v", err))
	}

	var required []string
	var schema *schemas.Schema
	if ctx != nil {
		required = ctx.RequiredFrontMatterFields
		schema = ctx.FrontMatterSchema
	}

	if !markdown.HasFrontMatter(doc.Content) {
		if len(required) > 0 {
			violations = append(violations, newViolation(doc, CheckFrontMatter, "missing_front_matter", types.SeverityError, 0,
				"Missing front matter (required fields: %v)", required))
		}
		return violations
	}

	for _, field := range required {
		if !meta.Has(field) {
			violations = append(violations, newViolation(doc, CheckFrontMatter, "missing_front_matter_field", types.SeverityError, 1,
				"Missing required front matter field: %s", field))
		}
	}

	if schema != nil {
		violations = append(violations, schemaViolations(doc, schema, meta)...)
	}

	return violations
}

func schemaViolations(doc *markdown.Document, schema *schemas.Schema, meta markdown.FrontMatter) []types.Violation {
	err := schema.ValidateValue(map[string]any(meta))
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	if !errors.As(err, &validationErr) {
		return []types.Violation{newViolation(doc, CheckFrontMatter, "front_matter_schema", types.SeverityError, 1,
			"Front matter could not be checked against schema: %v", err)}
	}

	violations := make([]types.Violation, 0, len(validationErr.Errors))
	for _, fieldErr := range validationErr.Errors {
		violations = append(violations, newViolation(doc, CheckFrontMatter, "front_matter_schema", types.SeverityError, 1,
			"Front matter field %s: %s", fieldErr.Field, fieldErr.Message))
	}
	return violations
}
