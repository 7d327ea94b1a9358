// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-reviewer/internal/pipeline"
	"github.com/pdiddy/paper-reviewer/internal/report"
	"github.com/pdiddy/paper-reviewer/internal/search"
	"github.com/pdiddy/paper-reviewer/internal/summary"
)

var reviewCmd = &cobra.Command{
	Use:   "review [topic]",
	Short: "Search for papers on a topic and summarize each one",
	Long: `Review runs the pipeline once: it queries the configured academic index
for papers matching the topic, summarizes each paper with the configured
generative model, and prints the aggregated result. Papers whose
summarization fails are kept with "unavailable" summary fields.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
	topic := strings.Join(args, " ")
	topN, _ := cmd.Flags().GetInt("top-n")

	orch, err := buildOrchestrator(cmd)
	if err != nil {
		return err
	}

	result, err := orch.Run(context.Background(), topic, topN)
	if err != nil {
		return err
	}

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := report.WriteReport(outPath, result); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outPath)
	}

	if csl, _ := cmd.Flags().GetBool("csl"); csl {
		return report.FormatCSL(result, os.Stdout)
	}
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return report.FormatJSON(result, os.Stdout)
	}
	report.FormatTable(result, os.Stdout)
	return nil
}

// buildOrchestrator wires providers and pipeline from the effective config.
func buildOrchestrator(cmd *cobra.Command) (*pipeline.Orchestrator, error) {
	cfg := pipelineConfig(cmd)

	searchProvider, err := search.New(cfg.Search)
	if err != nil {
		return nil, err
	}
	summaryProvider, err := summary.New(cfg.Summary)
	if err != nil {
		return nil, err
	}

	return pipeline.New(searchProvider, summaryProvider, cfg, os.Stderr), nil
}

func init() {
	reviewCmd.Flags().Int("top-n", 5, "number of papers to review")
	reviewCmd.Flags().String("backend", "", "search backend: arxiv or semantic_scholar")
	reviewCmd.Flags().String("provider", "", "summary provider: gemini or claude")
	reviewCmd.Flags().String("model", "", "generative model identifier")
	reviewCmd.Flags().Bool("json", false, "output the result as JSON")
	reviewCmd.Flags().Bool("csl", false, "output the papers as a CSL-YAML bibliography")
	reviewCmd.Flags().String("out", "", "also write a YAML report to this path")

	rootCmd.AddCommand(reviewCmd)
}
