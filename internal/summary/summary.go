// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summary turns a paper's title and abstract into a structured
// four-field summary via a generative model API. Providers are stateless:
// retry policy belongs to the pipeline's per-paper summarizer, not here.
package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"text/template"

	"github.com/pdiddy/paper-reviewer/pkg/types"
)

// ErrGenerationFailed indicates the model call failed or its output could
// not be coerced into the summary shape at all. The caller decides whether
// to retry or degrade; a provider never does either on its own.
var ErrGenerationFailed = errors.New("generation failed")

// Provider produces one structured summary per call. Each provider (Gemini,
// Claude) implements this interface per the Strategy pattern.
type Provider interface {
	// Model returns the model identifier echoed in the aggregated result.
	Model() string
	SummarizeOne(ctx context.Context, title, abstract string) (types.SummaryResult, error)
}

// Provider identifiers accepted in SummaryConfig.Provider.
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
)

const defaultMaxTokens = 1024

// New constructs the provider selected by cfg.Provider. An empty provider
// defaults to Gemini. A leading "models/" prefix on the model id is stripped
// so both "gemini-2.5-flash" and "models/gemini-2.5-flash" work.
func New(cfg types.SummaryConfig) (Provider, error) {
	model := strings.TrimPrefix(cfg.Model, "models/")
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	client := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case "", ProviderGemini:
		if model == "" {
			model = "gemini-2.5-flash"
		}
		return &GeminiProvider{APIKey: cfg.APIKey, ModelID: model, MaxTokens: maxTokens, Client: client}, nil
	case ProviderClaude:
		if model == "" {
			return nil, fmt.Errorf("claude provider requires an explicit model id")
		}
		return &ClaudeProvider{APIKey: cfg.APIKey, ModelID: model, MaxTokens: maxTokens, Client: client}, nil
	default:
		return nil, fmt.Errorf("unknown summary provider %q: use %s or %s",
			cfg.Provider, ProviderGemini, ProviderClaude)
	}
}

// summaryPromptTmpl is the fixed extraction prompt sent for each paper. It
// asks for strict JSON with exactly the four summary keys.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(`Summarize the following paper metadata into strict JSON with keys: problem, methodology, findings, limitations.

- problem: the research problem the paper addresses
- methodology: the approach, techniques, or experimental setup
- findings: the main results and what they show
- limitations: caveats, assumptions, or open issues the paper acknowledges

Base every field on the abstract only; do not invent details. Respond with JSON only, no text outside the JSON object.

Title: {{.Title}}
Abstract: {{.Abstract}}
`))

// renderPrompt executes the summary prompt template for one paper.
func renderPrompt(title, abstract string) (string, error) {
	var buf bytes.Buffer
	err := summaryPromptTmpl.Execute(&buf, struct{ Title, Abstract string }{title, abstract})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rawSummary mirrors the model's JSON response. Pointer fields distinguish
// a missing key from an empty value.
type rawSummary struct {
	Problem     *string `json:"problem"`
	Methodology *string `json:"methodology"`
	Findings    *string `json:"findings"`
	Limitations *string `json:"limitations"`
}

// decodeSummary parses model output into a SummaryResult. Output that is not
// JSON at all fails; valid JSON missing some of the four keys is accepted
// with the missing fields set to the Unavailable sentinel. Valid JSON that
// carries none of the four keys also fails: nothing usable was extracted.
func decodeSummary(text string) (types.SummaryResult, error) {
	cleaned := stripCodeFences(text)

	var raw rawSummary
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return types.SummaryResult{}, fmt.Errorf("%w: unparseable model output: %v", ErrGenerationFailed, err)
	}

	result := types.SummaryResult{
		Problem:     fieldOrSentinel(raw.Problem),
		Methodology: fieldOrSentinel(raw.Methodology),
		Findings:    fieldOrSentinel(raw.Findings),
		Limitations: fieldOrSentinel(raw.Limitations),
	}

	if result.IsDegraded() {
		return types.SummaryResult{}, fmt.Errorf("%w: model output carried no summary fields", ErrGenerationFailed)
	}
	return result, nil
}

// fieldOrSentinel maps a missing or blank model field to the sentinel.
func fieldOrSentinel(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return types.Unavailable
	}
	return strings.TrimSpace(*s)
}

// stripCodeFences removes a surrounding Markdown code fence (``` or ```json)
// that some models wrap around JSON despite instructions.
func stripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
