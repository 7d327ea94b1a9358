package search

import (
	"strings"
	"testing"

	"github.com/pdiddy/paper-reviewer/pkg/types"
)

func TestNewSelectsBackend(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		wantName string
	}{
		{"default is arxiv", "", BackendArxiv},
		{"explicit arxiv", BackendArxiv, BackendArxiv},
		{"semantic scholar", BackendSemanticScholar, BackendSemanticScholar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(types.SearchConfig{Backend: tt.backend})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(types.SearchConfig{Backend: "google_scholar"})
	if err == nil || !strings.Contains(err.Error(), "unknown search backend") {
		t.Errorf("expected unknown backend error, got: %v", err)
	}
}
