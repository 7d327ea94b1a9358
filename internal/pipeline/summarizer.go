// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/pdiddy/paper-reviewer/pkg/types"
)

// retryDelay is the fixed backoff before the single summarization retry.
// Tests override this to avoid real sleeps.
var retryDelay = 2 * time.Second

// summarizeOne turns one PaperRecord into one AnalyzedPaper. A failed call
// is retried exactly once after a short fixed backoff; if the retry also
// fails the paper is kept with an all-sentinel summary. No failure escapes
// this boundary, so one bad paper cannot abort the rest of the batch.
func (o *Orchestrator) summarizeOne(ctx context.Context, paper types.PaperRecord) types.AnalyzedPaper {
	result, err := o.summary.SummarizeOne(ctx, paper.Title, paper.Abstract)
	if err != nil {
		select {
		case <-ctx.Done():
			return degraded(paper)
		case <-time.After(retryDelay):
		}

		result, err = o.summary.SummarizeOne(ctx, paper.Title, paper.Abstract)
		if err != nil {
			fmt.Fprintf(o.w, "warning: summarization failed for %q: %v\n", paper.Title, err)
			return degraded(paper)
		}
	}

	return types.AnalyzedPaper{PaperRecord: paper, Summary: result}
}

// degraded builds the placeholder record for a paper whose summarization failed.
func degraded(paper types.PaperRecord) types.AnalyzedPaper {
	return types.AnalyzedPaper{PaperRecord: paper, Summary: types.UnavailableSummary()}
}
