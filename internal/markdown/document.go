// Package markdown models markdown source documents and extracts their front matter.
package markdown

import (
	"path/filepath"
	"sort"
	"strings"
)

// Document is the immutable raw text of one markdown file
type Document struct {
	// Path is the path used for reporting (as discovered)
	Path string
	// Content is the full raw text
	Content string
	// Lines is Content split on "\n"; Lines[i] is reported as line i+1
	Lines []string

	lineStarts []int
}

// NewDocument builds a Document and indexes its line offsets
func NewDocument(path, content string) *Document {
	lines := strings.Split(content, "\n")

	starts := make([]int, 0, len(lines))
	offset := 0
	for _, line := range lines {
		starts = append(starts, offset)
		offset += len(line) + 1
	}

	return &Document{
		Path:       path,
		Content:    content,
		Lines:      lines,
		lineStarts: starts,
	}
}

// Dir returns the directory containing the document
func (d *Document) Dir() string {
	return filepath.Dir(d.Path)
}

// LineAt maps a byte offset in Content to its 1-based line number
func (d *Document) LineAt(offset int) int {
	if offset <= 0 || len(d.lineStarts) == 0 {
		return 1
	}
	// first line start strictly greater than offset, minus one
	idx := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	})
	return idx
}

// FrontMatterEnd returns the 0-based index of the closing delimiter of the
// leading front-matter block, or -1 if the document has no terminated block.
func (d *Document) FrontMatterEnd() int {
	if len(d.Lines) == 0 || d.Lines[0] != Delimiter {
		return -1
	}
	for i := 1; i < len(d.Lines); i++ {
		if d.Lines[i] == Delimiter {
			return i
		}
	}
	return -1
}
