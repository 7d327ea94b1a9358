// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-reviewer/pkg/types"
)

// Config defaults; each can be overridden via paper-reviewer.yaml, the
// PAPER_REVIEWER_* environment, or command flags.
const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "paper-reviewer/0.1"
)

func init() {
	viper.SetDefault("search.backend", "arxiv")
	viper.SetDefault("search.max_top_n", 25)
	viper.SetDefault("summary.provider", "gemini")
	viper.SetDefault("summary.model", "gemini-2.5-flash")
	viper.SetDefault("summary.max_tokens", 1024)
	viper.SetDefault("max_concurrent", 3)
}

// pipelineConfig assembles the pipeline configuration from viper settings,
// command flags, and loaded secrets. Flags win over config-file values.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Search: types.SearchConfig{
			HTTPConfig: httpConfig(),
			Backend:    viper.GetString("search.backend"),
			MaxTopN:    viper.GetInt("search.max_top_n"),
			SemanticScholarAPIKey: loadedSecrets.Get("semantic-scholar-api-key",
				viper.GetString("search.semantic_scholar_api_key")),
		},
		Summary: types.SummaryConfig{
			HTTPConfig: httpConfig(),
			Provider:   viper.GetString("summary.provider"),
			Model:      viper.GetString("summary.model"),
			MaxTokens:  viper.GetInt("summary.max_tokens"),
		},
		MaxConcurrent: viper.GetInt("max_concurrent"),
	}

	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.Search.Backend = backend
	}
	if provider, _ := cmd.Flags().GetString("provider"); provider != "" {
		cfg.Summary.Provider = provider
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Summary.Model = model
	}

	// The API key file depends on the chosen provider.
	keyFile := "gemini-api-key"
	if cfg.Summary.Provider == "claude" {
		keyFile = "anthropic-api-key"
	}
	cfg.Summary.APIKey = loadedSecrets.Get(keyFile, viper.GetString("summary.api_key"))

	return cfg
}

func httpConfig() types.HTTPConfig {
	timeout := viper.GetDuration("http.timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := viper.GetString("http.user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return types.HTTPConfig{Timeout: timeout, UserAgent: userAgent}
}
