// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-reviewer pipeline.
package types

// PaperRecord holds the metadata of one candidate paper as returned by a
// search provider. The Link doubles as the record's identity within a result
// set. Records are immutable once fetched.
type PaperRecord struct {
	// Title is the paper title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order. May be empty.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract or summary. May be empty.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Link is the canonical URL of the paper (e.g. an arXiv abs page).
	Link string `json:"link" yaml:"link"`

	// Published is the publication date formatted as YYYY-MM-DD, or empty
	// when the source did not report one.
	Published string `json:"published,omitempty" yaml:"published,omitempty"`
}

// Unavailable is the sentinel placed in a SummaryResult field when the
// generative model could not extract it. It is distinct from the empty
// string so callers can tell "not extracted" from "extracted as empty".
const Unavailable = "unavailable"

// SummaryResult is the structured analytical summary of one paper.
type SummaryResult struct {
	// Problem states the research problem the paper addresses.
	Problem string `json:"problem" yaml:"problem"`

	// Methodology describes the approach or techniques used.
	Methodology string `json:"methodology" yaml:"methodology"`

	// Findings captures the main results.
	Findings string `json:"findings" yaml:"findings"`

	// Limitations lists caveats and open issues the paper acknowledges.
	Limitations string `json:"limitations" yaml:"limitations"`
}

// UnavailableSummary returns a SummaryResult with every field set to the
// Unavailable sentinel. Degraded records carry this after summarization fails.
func UnavailableSummary() SummaryResult {
	return SummaryResult{
		Problem:     Unavailable,
		Methodology: Unavailable,
		Findings:    Unavailable,
		Limitations: Unavailable,
	}
}

// IsDegraded reports whether every field carries the Unavailable sentinel,
// i.e. summarization failed outright for the paper.
func (s SummaryResult) IsDegraded() bool {
	return s == UnavailableSummary()
}

// AnalyzedPaper pairs one PaperRecord with exactly one SummaryResult. It is
// created once per paper and never mutated afterwards.
type AnalyzedPaper struct {
	PaperRecord `yaml:",inline"`

	// Summary is the structured summary, possibly degraded.
	Summary SummaryResult `json:"summary" yaml:"summary"`
}

// AggregatedResult is the response of one pipeline invocation. Papers keep
// the search provider's return order regardless of summarization timing.
type AggregatedResult struct {
	// Topic echoes the caller's research topic.
	Topic string `json:"topic" yaml:"topic"`

	// Model names the generative model that produced the summaries.
	Model string `json:"model" yaml:"model"`

	// Papers is the ordered sequence of analyzed papers.
	Papers []AnalyzedPaper `json:"papers" yaml:"papers"`
}

// DegradedCount returns the number of papers whose summarization failed.
func (r *AggregatedResult) DegradedCount() int {
	n := 0
	for _, p := range r.Papers {
		if p.Summary.IsDegraded() {
			n++
		}
	}
	return n
}
