package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/docs-lint/internal/schemas"
)

func TestValidateFrontMatter_RequiredFields(t *testing.T) {
	ctx := &Context{RequiredFrontMatterFields: []string{"title", "description"}}

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "all present",
			lines: []string{"---", "title: Intro", "description: Getting started", "---", "## Intro"},
			want:  []string{},
		},
		{
			name:  "one missing",
			lines: []string{"---", "title: Intro", "---", "## Intro"},
			want:  []string{"missing_front_matter_field"},
		},
		{
			name:  "blank value counts as missing",
			lines: []string{"---", "title: Intro", `description: ""`, "---"},
			want:  []string{"missing_front_matter_field"},
		},
		{
			name:  "no front matter",
			lines: []string{"## Intro"},
			want:  []string{"missing_front_matter"},
		},
		{
			name:  "unterminated",
			lines: []string{"---", "title: Intro", "## Intro"},
			want:  []string{"front_matter_parse"},
		},
		{
			name:  "invalid yaml",
			lines: []string{"---", "title: [unclosed", "---"},
			want:  []string{"front_matter_parse"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(ValidateFrontMatter(doc(tt.lines...), ctx)))
		})
	}
}

func TestValidateFrontMatter_MissingFieldDetails(t *testing.T) {
	ctx := &Context{RequiredFrontMatterFields: []string{"title", "description"}}
	d := doc("---", "tags: [go]", "---")

	violations := ValidateFrontMatter(d, ctx)
	require.Len(t, violations, 2)
	assert.Equal(t, "Missing required front matter field: title", violations[0].Details)
	assert.Equal(t, "Missing required front matter field: description", violations[1].Details)
	assert.Equal(t, 1, *violations[0].LineNumber)
}

func TestValidateFrontMatter_NothingRequired(t *testing.T) {
	assert.Empty(t, ValidateFrontMatter(doc("## Intro"), nil))
	assert.Empty(t, ValidateFrontMatter(doc("## Intro"), &Context{}))
}

func TestValidateFrontMatter_MissingBlockIsFileLevel(t *testing.T) {
	violations := ValidateFrontMatter(doc("text"), &Context{RequiredFrontMatterFields: []string{"title"}})
	require.Len(t, violations, 1)
	assert.Nil(t, violations[0].LineNumber)
}

func TestValidateFrontMatter_Schema(t *testing.T) {
	schema, err := schemas.LoadSchema("../schemas/testdata/front_matter.schema.json")
	require.NoError(t, err)
	ctx := &Context{FrontMatterSchema: schema}

	valid := doc("---", "title: Intro", "description: Getting started", "tags: [go, cli]", "draft: false", "---")
	assert.Empty(t, ValidateFrontMatter(valid, ctx))

	invalid := doc("---", "title: Intro", "tags: go", "---")
	violations := ValidateFrontMatter(invalid, ctx)
	assert.Equal(t, []string{"front_matter_schema", "front_matter_schema"}, kinds(violations))
	for _, v := range violations {
		assert.Equal(t, 1, *v.LineNumber)
		assert.Contains(t, v.Details, "Front matter field")
	}
}
