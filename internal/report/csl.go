package report

import (
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-reviewer/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-YAML schema so that
// output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID       string    `yaml:"id"`
	Type     string    `yaml:"type"`
	Title    string    `yaml:"title"`
	Author   []CSLName `yaml:"author,omitempty"`
	Abstract string    `yaml:"abstract,omitempty"`
	Issued   *CSLDate  `yaml:"issued,omitempty"`
	URL      string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes the reviewed papers as a CSL-YAML list to w.
func FormatCSL(result *types.AggregatedResult, w io.Writer) error {
	items := make([]CSLItem, len(result.Papers))
	for i, p := range result.Papers {
		items[i] = toCSLItem(p.PaperRecord)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a PaperRecord to a CSLItem. The item ID is the last
// path segment of the link (the arXiv ID for arXiv papers).
func toCSLItem(r types.PaperRecord) CSLItem {
	item := CSLItem{
		ID:       linkID(r.Link),
		Type:     "article",
		Title:    r.Title,
		Abstract: r.Abstract,
		URL:      r.Link,
	}

	for _, a := range r.Authors {
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if parts := dateParts(r.Published); parts != nil {
		item.Issued = &CSLDate{DateParts: [][]int{parts}}
	}

	return item
}

// linkID extracts the trailing path segment of a URL for use as a citation key.
func linkID(link string) string {
	trimmed := strings.TrimSuffix(link, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// dateParts converts a YYYY-MM-DD string to CSL date-parts, or nil when the
// date is absent or malformed.
func dateParts(published string) []int {
	fields := strings.SplitN(published, "-", 3)
	if len(fields) != 3 {
		return nil
	}
	parts := make([]int, 0, 3)
	for _, f := range fields {
		n := 0
		for _, c := range f {
			if c < '0' || c > '9' {
				return nil
			}
			n = n*10 + int(c-'0')
		}
		parts = append(parts, n)
	}
	return parts
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
