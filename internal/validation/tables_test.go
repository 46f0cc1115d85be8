package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTables_Valid(t *testing.T) {
	d := doc(
		"## Options",
		"",
		"| Name | Description |",
		"|------|:-----------:|",
		"| a    | first       |",
		"| b    | second      |",
	)
	assert.Empty(t, ValidateTables(d, nil))
}

func TestValidateTables_ColumnMismatch(t *testing.T) {
	d := doc(
		"| Name | Description |",
		"| --- | --- |",
		"| a | first | extra |",
	)

	violations := ValidateTables(d, nil)
	require.Len(t, violations, 1)
	assert.Equal(t, "table_column_count", violations[0].Type)
	assert.Equal(t, "Table row has 3 columns, expected 2", violations[0].Details)
	assert.Equal(t, 3, *violations[0].LineNumber)
}

func TestValidateTables_MissingSeparator(t *testing.T) {
	d := doc(
		"text",
		"| Name | Description |",
		"| a | first |",
		"",
		"after",
	)

	violations := ValidateTables(d, nil)
	require.Len(t, violations, 1)
	assert.Equal(t, "table_missing_separator", violations[0].Type)
	assert.Equal(t, 2, *violations[0].LineNumber)
}

func TestValidateTables_MissingSeparatorAtEOF(t *testing.T) {
	violations := ValidateTables(doc("| only | header |"), nil)
	assert.Equal(t, []string{"table_missing_separator"}, kinds(violations))
}

func TestValidateTables_BadSeparatorCell(t *testing.T) {
	d := doc(
		"| A | B |",
		"| -:- | --- |",
		"| 1 | 2 |",
	)

	violations := ValidateTables(d, nil)
	require.Len(t, violations, 1)
	assert.Equal(t, "table_separator_format", violations[0].Type)
	assert.Contains(t, violations[0].Details, `"-:-"`)
	assert.Equal(t, 2, *violations[0].LineNumber)
}

func TestValidateTables_EmptySeparatorCell(t *testing.T) {
	d := doc("| A | B |", "| --- | |", "| 1 | 2 |")
	assert.Equal(t, []string{"table_separator_format"}, kinds(ValidateTables(d, nil)))
}

func TestValidateTables_EscapedPipe(t *testing.T) {
	d := doc(
		"| Expr | Meaning |",
		"| --- | --- |",
		`| a \| b | either |`,
	)
	assert.Empty(t, ValidateTables(d, nil))
}

func TestValidateTables_SeparateBlocks(t *testing.T) {
	d := doc(
		"| A | B |",
		"| --- | --- |",
		"",
		"| A | B | C |",
		"| --- | --- | --- |",
		"| 1 | 2 | 3 |",
	)
	assert.Empty(t, ValidateTables(d, nil))
}

func TestValidateTables_NonTableLineDoesNotEndTable(t *testing.T) {
	d := doc("|A|B|", "|---|---|", "text line", "|1|2|3|")

	violations := ValidateTables(d, nil)
	require.Len(t, violations, 1)
	assert.Equal(t, "table_column_count", violations[0].Type)
	assert.Equal(t, 4, *violations[0].LineNumber)
}

func TestValidateTables_FencedRowsAreScanned(t *testing.T) {
	d := doc("```text", "| not | a table |", "```")
	assert.Equal(t, []string{"table_missing_separator"}, kinds(ValidateTables(d, nil)))
}
