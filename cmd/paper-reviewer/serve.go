// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-reviewer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the review pipeline over HTTP",
	Long: `Serve starts an HTTP server with two routes: POST /api/summarize runs
the pipeline for a {"topic": ..., "top_n": ...} request body, and
GET /api/health reports liveness.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")

	orch, err := buildOrchestrator(cmd)
	if err != nil {
		return err
	}

	srv := server.New(orch, os.Stderr)
	fmt.Fprintf(os.Stderr, "Listening on %s\n", addr)
	return http.ListenAndServe(addr, srv.Handler())
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("backend", "", "search backend: arxiv or semantic_scholar")
	serveCmd.Flags().String("provider", "", "summary provider: gemini or claude")
	serveCmd.Flags().String("model", "", "generative model identifier")

	rootCmd.AddCommand(serveCmd)
}
