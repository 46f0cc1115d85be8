package markdown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Delimiter is the line that opens and closes a front-matter block
const Delimiter = "---"

// ErrUnterminatedFrontMatter is returned when a document opens a front-matter
// block that is never closed.
var ErrUnterminatedFrontMatter = errors.New("front matter block is not terminated by a closing ---")

// FrontMatterError wraps a decoding failure of the front-matter block
type FrontMatterError struct {
	Message string
	Cause   error
}

func (e *FrontMatterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid front matter: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid front matter: %s", e.Message)
}

func (e *FrontMatterError) Unwrap() error {
	return e.Cause
}

// FrontMatter is the decoded key/value mapping of a front-matter block
type FrontMatter map[string]any

// Has reports whether key is present with a non-empty value.
// A null value or a blank string counts as absent.
func (fm FrontMatter) Has(key string) bool {
	value, ok := fm[key]
	if !ok || value == nil {
		return false
	}
	if s, isString := value.(string); isString {
		return strings.TrimSpace(s) != ""
	}
	return true
}

var yamlFormat = frontmatter.NewFormat(Delimiter, Delimiter, yaml.Unmarshal)

// HasFrontMatter reports whether the content opens with a front-matter delimiter line
func HasFrontMatter(content string) bool {
	first, _, _ := strings.Cut(content, "\n")
	return first == Delimiter
}

// ParseFrontMatter extracts the leading front-matter block and returns the
// decoded mapping together with the remaining body. Content without a leading
// delimiter yields an empty mapping and the full text as body.
func ParseFrontMatter(content string) (FrontMatter, string, error) {
	if !HasFrontMatter(content) {
		return FrontMatter{}, content, nil
	}

	if NewDocument("", content).FrontMatterEnd() < 0 {
		return nil, "", ErrUnterminatedFrontMatter
	}

	meta := map[string]any{}
	body, err := frontmatter.Parse(strings.NewReader(content), &meta, yamlFormat)
	if err != nil {
		return nil, "", &FrontMatterError{Message: "failed to decode YAML", Cause: err}
	}

	return FrontMatter(meta), string(body), nil
}
