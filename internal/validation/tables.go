package validation

import (
	"regexp"
	"strings"

	"github.com/jonathan/docs-lint/internal/markdown"
	"github.com/jonathan/docs-lint/internal/types"
)

var (
	separatorCellPattern = regexp.MustCompile(`^:?-+:?$`)
	separatorStripper    = strings.NewReplacer("|", "", "-", "", ":", "", " ", "", "\t", "")
)

// tableScan is the state of the table currently being read
type tableScan struct {
	startLine     int
	columns       int
	separatorSeen bool
}

// ValidateTables checks each contiguous block of table rows: it must have a
// well-formed separator row and every row must match the first row's column
// count. A blank line or the end of the document ends the block; other
// non-table lines inside a block are passed over.
func ValidateTables(doc *markdown.Document, _ *Context) []types.Violation {
	var violations []types.Violation
	var table *tableScan

	endTable := func() {
		if table != nil && !table.separatorSeen {
			violations = append(violations, newViolation(doc, CheckTables, "table_missing_separator", types.SeverityError, table.startLine,
				"Table starting at line %d is missing a header separator row", table.startLine))
		}
		table = nil
	}

	for i, line := range doc.Lines {
		lineNum := i + 1

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			endTable()
			continue
		}
		if !isTableRow(trimmed) {
			continue
		}

		if table == nil {
			table = &tableScan{startLine: lineNum, columns: countColumns(trimmed)}
			continue
		}

		if isSeparatorRow(trimmed) {
			table.separatorSeen = true
			for _, cell := range splitCells(trimmed) {
				if !separatorCellPattern.MatchString(cell) {
					violations = append(violations, newViolation(doc, CheckTables, "table_separator_format", types.SeverityError, lineNum,
						"Invalid table separator cell %q: expected ---, :---, ---: or :---:", cell))
				}
			}
			continue
		}

		if columns := countColumns(trimmed); columns != table.columns {
			violations = append(violations, newViolation(doc, CheckTables, "table_column_count", types.SeverityError, lineNum,
				"Table row has %d columns, expected %d", columns, table.columns))
		}
	}

	endTable()

	return violations
}

func isTableRow(trimmed string) bool {
	return strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

func isSeparatorRow(trimmed string) bool {
	return separatorStripper.Replace(trimmed) == ""
}

// countColumns is the number of unescaped pipes minus one
func countColumns(trimmed string) int {
	return len(pipeIndexes(trimmed)) - 1
}

func pipeIndexes(s string) []int {
	var idx []int
	for i := 0; i < len(s); i++ {
		if s[i] == '|' && (i == 0 || s[i-1] != '\\') {
			idx = append(idx, i)
		}
	}
	return idx
}

// splitCells returns the trimmed cells between the outer pipes
func splitCells(trimmed string) []string {
	pipes := pipeIndexes(trimmed)
	cells := make([]string, 0, len(pipes))
	for k := 0; k+1 < len(pipes); k++ {
		cells = append(cells, strings.TrimSpace(trimmed[pipes[k]+1:pipes[k+1]]))
	}
	return cells
}
