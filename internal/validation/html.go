package validation

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlAnchorPattern = regexp.MustCompile(`(?is)<a\s[^>]*>`)
	htmlImagePattern  = regexp.MustCompile(`(?is)<img\s[^>]*>`)
)

// htmlTag is one HTML element found in markdown text
type htmlTag struct {
	offset int
	attrs  map[string]string
}

func (t htmlTag) attr(name string) (string, bool) {
	v, ok := t.attrs[name]
	return v, ok
}

// findHTMLTags locates opening tags with pattern and decodes their attributes
// with an HTML parser, so quoting styles and entities are handled properly.
func findHTMLTags(content string, pattern *regexp.Regexp, element string) []htmlTag {
	var tags []htmlTag

	for _, loc := range pattern.FindAllStringIndex(content, -1) {
		fragment := content[loc[0]:loc[1]]

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
		if err != nil {
			continue
		}

		sel := doc.Find(element).First()
		if sel.Length() == 0 {
			continue
		}

		attrs := make(map[string]string)
		for _, a := range sel.Nodes[0].Attr {
			attrs[strings.ToLower(a.Key)] = a.Val
		}
		tags = append(tags, htmlTag{offset: loc[0], attrs: attrs})
	}

	return tags
}
