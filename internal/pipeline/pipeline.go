// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline coordinates the paper-discovery-and-summarization flow:
// one search call fans out into per-paper summarization and folds back into
// a single ordered result. Summarization failures degrade individual papers;
// only validation and search failures abort a request.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pdiddy/paper-reviewer/internal/search"
	"github.com/pdiddy/paper-reviewer/internal/summary"
	"github.com/pdiddy/paper-reviewer/pkg/types"
)

// ErrInvalidRequest indicates a malformed topic or top-n. It is raised
// before either provider is contacted.
var ErrInvalidRequest = errors.New("invalid request")

const (
	defaultMaxTopN       = 25
	defaultMaxConcurrent = 3
)

// Orchestrator runs the pipeline: validate, search once, summarize each
// paper concurrently, and assemble the aggregated result in search order.
type Orchestrator struct {
	search        search.Provider
	summary       summary.Provider
	maxTopN       int
	maxConcurrent int

	// w receives progress and per-paper failure warnings. The pipeline's
	// return value never depends on it.
	w io.Writer
}

// New builds an Orchestrator from constructed providers and the pipeline
// configuration. Progress output goes to w (use io.Discard to silence it).
func New(searchProvider search.Provider, summaryProvider summary.Provider, cfg types.PipelineConfig, w io.Writer) *Orchestrator {
	maxTopN := cfg.Search.MaxTopN
	if maxTopN <= 0 {
		maxTopN = defaultMaxTopN
	}
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	if w == nil {
		w = io.Discard
	}
	return &Orchestrator{
		search:        searchProvider,
		summary:       summaryProvider,
		maxTopN:       maxTopN,
		maxConcurrent: maxConcurrent,
		w:             w,
	}
}

// Run executes one pipeline invocation for the topic. It returns the
// aggregated result, or an error wrapping ErrInvalidRequest or
// search.ErrUnavailable. Per-paper summarization failures never surface
// here: the affected papers carry all-sentinel summaries instead.
func (o *Orchestrator) Run(ctx context.Context, topic string, topN int) (*types.AggregatedResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic must not be empty", ErrInvalidRequest)
	}
	if topN < 1 || topN > o.maxTopN {
		return nil, fmt.Errorf("%w: top_n must be between 1 and %d, got %d", ErrInvalidRequest, o.maxTopN, topN)
	}

	papers, err := o.search.Search(ctx, topic, topN)
	if err != nil {
		return nil, err
	}

	result := &types.AggregatedResult{
		Topic:  topic,
		Model:  o.summary.Model(),
		Papers: make([]types.AnalyzedPaper, len(papers)),
	}

	if len(papers) == 0 {
		fmt.Fprintf(o.w, "no papers found for %q\n", topic)
		return result, nil
	}

	fmt.Fprintf(o.w, "summarizing %d paper(s) for %q\n", len(papers), topic)

	// One goroutine per paper, bounded by a semaphore. Each writes only its
	// own slot in result.Papers, so search order survives any completion
	// order and no lock is needed.
	sem := make(chan struct{}, o.maxConcurrent)
	var wg sync.WaitGroup

	for i, paper := range papers {
		wg.Add(1)
		go func(i int, paper types.PaperRecord) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			result.Papers[i] = o.summarizeOne(ctx, paper)
		}(i, paper)
	}
	wg.Wait()

	// A cancelled run returns no partial result.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return result, nil
}
