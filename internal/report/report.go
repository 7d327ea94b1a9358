// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders an AggregatedResult for humans and files: a
// terminal table, indented JSON, a YAML report file, and a CSL-YAML
// bibliography of the reviewed papers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-reviewer/pkg/types"
)

// FormatTable writes the result as a human-readable table followed by the
// per-paper summaries.
func FormatTable(result *types.AggregatedResult, w io.Writer) {
	if len(result.Papers) == 0 {
		fmt.Fprintf(w, "No papers found for %q.\n", result.Topic)
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-20s  %-10s  %s\n",
		"Rank", "Title", "Authors", "Published", "Summary")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, p := range result.Papers {
		status := "ok"
		if p.Summary.IsDegraded() {
			status = types.Unavailable
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-20s  %-10s  %s\n",
			i+1, truncate(p.Title, 60), formatAuthors(p.Authors), p.Published, status)
	}

	for i, p := range result.Papers {
		fmt.Fprintf(w, "\n[%d] %s\n", i+1, p.Title)
		fmt.Fprintf(w, "    %s\n", p.Link)
		fmt.Fprintf(w, "    Problem:     %s\n", p.Summary.Problem)
		fmt.Fprintf(w, "    Methodology: %s\n", p.Summary.Methodology)
		fmt.Fprintf(w, "    Findings:    %s\n", p.Summary.Findings)
		fmt.Fprintf(w, "    Limitations: %s\n", p.Summary.Limitations)
	}

	fmt.Fprintf(w, "\n%d paper(s), model %s", len(result.Papers), result.Model)
	if n := result.DegradedCount(); n > 0 {
		fmt.Fprintf(w, " (%d summary/ies unavailable)", n)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the result as indented JSON to w.
func FormatJSON(result *types.AggregatedResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// ReportFile is the on-disk representation of one pipeline run.
type ReportFile struct {
	Topic   string                `yaml:"topic"`
	Model   string                `yaml:"model"`
	Papers  []types.AnalyzedPaper `yaml:"papers"`
	Summary RunSummary            `yaml:"summary"`
}

// RunSummary stores result statistics and a timestamp.
type RunSummary struct {
	Total     int       `yaml:"total"`
	Degraded  int       `yaml:"degraded"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteReport saves the aggregated result to a YAML file.
func WriteReport(path string, result *types.AggregatedResult) error {
	rf := ReportFile{
		Topic:  result.Topic,
		Model:  result.Model,
		Papers: result.Papers,
		Summary: RunSummary{
			Total:     len(result.Papers),
			Degraded:  result.DegradedCount(),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
