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

// geminiAPIBase is the Gemini generateContent endpoint base. Package-level
// var for test substitution.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiProvider calls the Gemini API with a schema-constrained JSON
// response, so the model replies with the four summary fields directly
// instead of free text.
type GeminiProvider struct {
	APIKey    string
	ModelID   string
	MaxTokens int
	Client    *http.Client
}

// Model returns the model identifier.
func (p *GeminiProvider) Model() string { return p.ModelID }

// geminiRequest is the generateContent request body.
type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature      float64       `json:"temperature"`
	MaxOutputTokens  int           `json:"maxOutputTokens"`
	ResponseMIMEType string        `json:"responseMimeType"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

// geminiSchema is the OpenAPI-subset schema Gemini accepts for constrained
// output. Type names are uppercase per the API ("OBJECT", "STRING").
type geminiSchema struct {
	Type       string                  `json:"type"`
	Properties map[string]geminiSchema `json:"properties,omitempty"`
}

// summarySchema constrains the response to an object with the four summary keys.
var summarySchema = &geminiSchema{
	Type: "OBJECT",
	Properties: map[string]geminiSchema{
		"problem":     {Type: "STRING"},
		"methodology": {Type: "STRING"},
		"findings":    {Type: "STRING"},
		"limitations": {Type: "STRING"},
	},
}

// geminiResponse is the generateContent response body.
type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

// SummarizeOne sends the extraction prompt for one paper and decodes the
// structured response.
func (p *GeminiProvider) SummarizeOne(ctx context.Context, title, abstract string) (types.SummaryResult, error) {
	prompt, err := renderPrompt(title, abstract)
	if err != nil {
		return types.SummaryResult{}, fmt.Errorf("rendering prompt: %w", err)
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      0.2,
			MaxOutputTokens:  p.MaxTokens,
			ResponseMIMEType: "application/json",
			ResponseSchema:   summarySchema,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return types.SummaryResult{}, fmt.Errorf("marshaling request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s:generateContent", geminiAPIBase, p.ModelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return types.SummaryResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.APIKey)

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return types.SummaryResult{}, fmt.Errorf("%w: calling Gemini API: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return types.SummaryResult{}, fmt.Errorf("%w: Gemini API returned %d: %s",
			ErrGenerationFailed, resp.StatusCode, string(body))
	}

	var gResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return types.SummaryResult{}, fmt.Errorf("%w: decoding Gemini response: %v", ErrGenerationFailed, err)
	}

	if len(gResp.Candidates) == 0 || len(gResp.Candidates[0].Content.Parts) == 0 {
		return types.SummaryResult{}, fmt.Errorf("%w: Gemini API returned no candidates", ErrGenerationFailed)
	}

	return decodeSummary(gResp.Candidates[0].Content.Parts[0].Text)
}
