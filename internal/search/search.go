// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries academic indexes for candidate papers. Each provider
// is a thin I/O boundary: it trusts the index's ordering and performs no
// deduplication or re-ranking of its own.
package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pdiddy/paper-reviewer/pkg/types"
)

// ErrUnavailable indicates the external index could not be reached or
// returned a malformed response. It is fatal to the request: without any
// papers there is nothing to degrade gracefully.
var ErrUnavailable = errors.New("search unavailable")

// Provider searches a single academic index. Each provider (arXiv, Semantic
// Scholar) implements this interface per the Strategy pattern.
type Provider interface {
	Name() string
	Search(ctx context.Context, topic string, topN int) ([]types.PaperRecord, error)
}

// Backend identifiers accepted in SearchConfig.Backend.
const (
	BackendArxiv           = "arxiv"
	BackendSemanticScholar = "semantic_scholar"
)

// New constructs the provider selected by cfg.Backend. An empty backend
// defaults to arXiv.
func New(cfg types.SearchConfig) (Provider, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Backend {
	case "", BackendArxiv:
		return &ArxivProvider{Client: client, UserAgent: cfg.UserAgent}, nil
	case BackendSemanticScholar:
		return &SemanticScholarProvider{
			Client:    client,
			UserAgent: cfg.UserAgent,
			APIKey:    cfg.SemanticScholarAPIKey,
		}, nil
	default:
		return nil, fmt.Errorf("unknown search backend %q: use %s or %s",
			cfg.Backend, BackendArxiv, BackendSemanticScholar)
	}
}
