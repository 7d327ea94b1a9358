// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server is the HTTP request boundary: it translates an inbound
// summarize request into a pipeline run and the result into a JSON payload.
// No pipeline logic lives here.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/paper-reviewer/internal/pipeline"
	"github.com/pdiddy/paper-reviewer/internal/search"
	"github.com/pdiddy/paper-reviewer/pkg/types"
)

// defaultTopN applies when a request omits top_n.
const defaultTopN = 5

// Runner is the pipeline operation the server fronts. Satisfied by
// *pipeline.Orchestrator; tests supply a stub.
type Runner interface {
	Run(ctx context.Context, topic string, topN int) (*types.AggregatedResult, error)
}

// Server routes HTTP requests to the pipeline.
type Server struct {
	runner Runner
	w      io.Writer
}

// New builds a Server. Request logs go to w (use io.Discard to silence them).
func New(runner Runner, w io.Writer) *Server {
	if w == nil {
		w = io.Discard
	}
	return &Server{runner: runner, w: w}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/summarize", s.handleSummarize)
	return mux
}

// summarizeRequest is the inbound request payload.
type summarizeRequest struct {
	Topic string `json:"topic"`
	TopN  int    `json:"top_n"`
}

// errorResponse is the error payload shape.
type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	// Permissive CORS for the local frontend.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: "use POST"})
		return
	}

	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if req.TopN == 0 {
		req.TopN = defaultTopN
	}

	fmt.Fprintf(s.w, "summarize request: topic=%q top_n=%d\n", req.Topic, req.TopN)

	result, err := s.runner.Run(r.Context(), req.Topic, req.TopN)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Detail: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// statusFor maps pipeline error kinds to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, search.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
