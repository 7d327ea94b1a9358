// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-reviewer/pkg/types"
)

func TestToCSLItem(t *testing.T) {
	r := types.PaperRecord{
		Title:     "Attention Is All You Need",
		Authors:   []string{"Ashish Vaswani", "Noam Shazeer"},
		Abstract:  "The dominant sequence transduction models.",
		Link:      "https://arxiv.org/abs/1706.03762v5",
		Published: "2017-06-12",
	}

	item := toCSLItem(r)

	if item.ID != "1706.03762v5" {
		t.Errorf("ID = %q, want the trailing link segment", item.ID)
	}
	if item.Type != "article" {
		t.Errorf("Type = %q, want %q", item.Type, "article")
	}
	if len(item.Author) != 2 {
		t.Fatalf("len(Author) = %d, want 2", len(item.Author))
	}
	if item.Author[0].Given != "Ashish" || item.Author[0].Family != "Vaswani" {
		t.Errorf("Author[0] = %+v, want given/family split", item.Author[0])
	}
	if item.Issued == nil || len(item.Issued.DateParts) != 1 {
		t.Fatalf("Issued = %+v, want one date-parts entry", item.Issued)
	}
	got := item.Issued.DateParts[0]
	if len(got) != 3 || got[0] != 2017 || got[1] != 6 || got[2] != 12 {
		t.Errorf("DateParts = %v, want [2017 6 12]", got)
	}
}

func TestToCSLItemMissingDate(t *testing.T) {
	item := toCSLItem(types.PaperRecord{Title: "Undated", Link: "https://example.org/x"})
	if item.Issued != nil {
		t.Errorf("Issued = %+v, want nil for missing date", item.Issued)
	}
}

func TestFormatCSL(t *testing.T) {
	result := sampleResult()

	var buf bytes.Buffer
	if err := FormatCSL(result, &buf); err != nil {
		t.Fatalf("FormatCSL: %v", err)
	}

	var items []CSLItem
	if err := yaml.Unmarshal(buf.Bytes(), &items); err != nil {
		t.Fatalf("output is not valid CSL-YAML: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Title != "Neural Networks and Physical Systems" {
		t.Errorf("Title = %q", items[0].Title)
	}

	// Summaries are pipeline output, not bibliographic data.
	if strings.Contains(buf.String(), "Associative memory") {
		t.Error("CSL output should not contain summary text")
	}
}

func TestParseAuthorName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  CSLName
	}{
		{"given and family", "Grace Hopper", CSLName{Given: "Grace", Family: "Hopper"}},
		{"middle names join given", "John J. Hopfield", CSLName{Given: "John J.", Family: "Hopfield"}},
		{"single token is literal", "Aristotle", CSLName{Literal: "Aristotle"}},
		{"empty", "", CSLName{}},
		{"surrounding whitespace", "  Alan Turing  ", CSLName{Given: "Alan", Family: "Turing"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseAuthorName(tt.input); got != tt.want {
				t.Errorf("parseAuthorName(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateParts(t *testing.T) {
	tests := []struct {
		name      string
		published string
		want      []int
	}{
		{"full date", "2020-08-05", []int{2020, 8, 5}},
		{"empty", "", nil},
		{"year only", "2019", nil},
		{"garbage", "not-a-date", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dateParts(tt.published)
			if len(got) != len(tt.want) {
				t.Fatalf("dateParts(%q) = %v, want %v", tt.published, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("dateParts(%q) = %v, want %v", tt.published, got, tt.want)
				}
			}
		})
	}
}
