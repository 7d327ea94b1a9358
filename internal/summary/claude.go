// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/paper-reviewer/pkg/types"
)

// claudeAPIURL is the Claude API endpoint. Package-level var for test substitution.
var claudeAPIURL = "https://api.anthropic.com/v1/messages"

// ClaudeProvider calls the Claude Messages API with the shared extraction
// prompt. Claude has no schema-constrained mode, so the prompt's JSON-only
// instruction plus decodeSummary's fence stripping carry the contract.
type ClaudeProvider struct {
	APIKey    string
	ModelID   string
	MaxTokens int
	Client    *http.Client
}

// Model returns the model identifier.
func (p *ClaudeProvider) Model() string { return p.ModelID }

// claudeRequest is the request body for the Claude Messages API.
type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// claudeResponse is the response body from the Claude Messages API.
type claudeResponse struct {
	Content []claudeContent `json:"content"`
}

type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SummarizeOne sends the extraction prompt for one paper and decodes the
// JSON in the first text block of the response.
func (p *ClaudeProvider) SummarizeOne(ctx context.Context, title, abstract string) (types.SummaryResult, error) {
	prompt, err := renderPrompt(title, abstract)
	if err != nil {
		return types.SummaryResult{}, fmt.Errorf("rendering prompt: %w", err)
	}

	reqBody := claudeRequest{
		Model:     p.ModelID,
		MaxTokens: p.MaxTokens,
		Messages: []claudeMessage{
			{Role: "user", Content: prompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return types.SummaryResult{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, claudeAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return types.SummaryResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return types.SummaryResult{}, fmt.Errorf("%w: calling Claude API: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return types.SummaryResult{}, fmt.Errorf("%w: Claude API returned %d: %s",
			ErrGenerationFailed, resp.StatusCode, string(body))
	}

	var cResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return types.SummaryResult{}, fmt.Errorf("%w: decoding Claude response: %v", ErrGenerationFailed, err)
	}

	for _, block := range cResp.Content {
		if block.Type != "text" {
			continue
		}
		return decodeSummary(block.Text)
	}

	return types.SummaryResult{}, fmt.Errorf("%w: no text content in Claude API response", ErrGenerationFailed)
}
