package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout applied to every provider call.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-reviewer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the paper search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Backend selects the search provider: "arxiv" (default) or "semantic_scholar".
	Backend string `json:"backend" yaml:"backend"`

	// MaxTopN caps the number of papers a single request may ask for (default 25).
	MaxTopN int `json:"max_top_n" yaml:"max_top_n"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`
}

// SummaryConfig holds settings for the summarization stage.
type SummaryConfig struct {
	HTTPConfig `yaml:",inline"`

	// Provider selects the generative backend: "gemini" (default) or "claude".
	Provider string `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "gemini-2.5-flash"). A leading
	// "models/" prefix is stripped.
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the generative API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens bounds the model response length (default 1024).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// PipelineConfig groups the stage configurations for one pipeline instance.
type PipelineConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Summary SummaryConfig `json:"summary" yaml:"summary"`

	// MaxConcurrent bounds the number of in-flight summarization calls
	// (default 3). A value of 1 degrades to sequential execution.
	MaxConcurrent int `json:"max_concurrent" yaml:"max_concurrent"`
}
