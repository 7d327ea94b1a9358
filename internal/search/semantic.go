// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/paper-reviewer/internal/httputil"
	"github.com/pdiddy/paper-reviewer/pkg/types"
)

// semanticAPIBase is the Semantic Scholar paper search endpoint. Declared
// as a var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"

const semanticFields = "title,abstract,authors,url,year,publicationDate"

// SemanticScholarProvider queries the Semantic Scholar Graph API.
type SemanticScholarProvider struct {
	Client    *http.Client
	UserAgent string
	APIKey    string
}

// Name returns the provider identifier.
func (p *SemanticScholarProvider) Name() string { return BackendSemanticScholar }

// Search queries Semantic Scholar for up to topN papers about the topic.
func (p *SemanticScholarProvider) Search(ctx context.Context, topic string, topN int) ([]types.PaperRecord, error) {
	params := url.Values{
		"query":  {topic},
		"limit":  {fmt.Sprintf("%d", topN)},
		"fields": {semanticFields},
	}

	reqURL := semanticAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.UserAgent)
	if p.APIKey != "" {
		req.Header.Set("x-api-key", p.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, p.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: Semantic Scholar API request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: Semantic Scholar API returned HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("%w: parsing Semantic Scholar response: %v", ErrUnavailable, err)
	}

	var records []types.PaperRecord
	for _, paper := range sr.Data {
		link := paper.URL
		if link == "" {
			link = "https://www.semanticscholar.org/paper/" + paper.PaperID
		}

		r := types.PaperRecord{
			Title:    paper.Title,
			Abstract: paper.Abstract,
			Link:     link,
		}

		for _, a := range paper.Authors {
			r.Authors = append(r.Authors, a.Name)
		}

		if paper.PublicationDate != "" {
			if t, parseErr := time.Parse(publishedFmt, paper.PublicationDate); parseErr == nil {
				r.Published = t.Format(publishedFmt)
			}
		} else if paper.Year > 0 {
			r.Published = fmt.Sprintf("%d-01-01", paper.Year)
		}

		records = append(records, r)
		if len(records) == topN {
			break
		}
	}
	return records, nil
}

// Semantic Scholar API JSON structures.
type semanticResponse struct {
	Total  int             `json:"total"`
	Offset int             `json:"offset"`
	Data   []semanticPaper `json:"data"`
}

type semanticPaper struct {
	PaperID         string           `json:"paperId"`
	URL             string           `json:"url"`
	Title           string           `json:"title"`
	Abstract        string           `json:"abstract"`
	Year            int              `json:"year"`
	PublicationDate string           `json:"publicationDate"`
	Authors         []semanticAuthor `json:"authors"`
}

type semanticAuthor struct {
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
}
