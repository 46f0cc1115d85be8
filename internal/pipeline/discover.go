package pipeline

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// MarkdownExt is the extension of files picked up by discovery
const MarkdownExt = ".md"

// DiscoverFiles walks root and returns every markdown file in lexical path
// order. Directories whose base name is in excluded are not descended into;
// the root itself is always scanned.
func DiscoverFiles(root string, excluded []string) ([]string, error) {
	skip := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		skip[name] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == MarkdownExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return files, nil
}
