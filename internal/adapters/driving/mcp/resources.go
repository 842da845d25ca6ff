package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bookscan/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for bookscan resources.
	uriScheme = "bookscan://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Stored conversion runs, newest first",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run-outline",
		Description: "Books, years and counts of a stored run",
		MIMEType:    "application/json",
	}, s.handleRunResource)
}

type runInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	Books      int       `json:"books"`
	Chapters   int       `json:"chapters"`
	Paragraphs int       `json:"paragraphs"`
	Sentences  int       `json:"sentences"`
	Words      int       `json:"words"`
}

type bookInfo struct {
	Number     int         `json:"number"`
	Year       domain.Year `json:"year"`
	Chapters   int         `json:"chapters"`
	Paragraphs int         `json:"paragraphs"`
}

// handleRunsResource lists the stored runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Runs == nil {
		return jsonResult(req.Params.URI, []runInfo{})
	}

	runs, err := s.ports.Runs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	infos := make([]runInfo, len(runs))
	for i, run := range runs {
		infos[i] = runInfo{
			ID:         run.ID,
			Name:       run.Name,
			CreatedAt:  run.CreatedAt,
			Books:      run.Stats.Books,
			Chapters:   run.Stats.Chapters,
			Paragraphs: run.Stats.Paragraphs,
			Sentences:  run.Stats.Sentences,
			Words:      run.Stats.Words,
		}
	}
	return jsonResult(req.Params.URI, infos)
}

// handleRunResource outlines the books of one stored run.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Runs == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract runId from URI: bookscan://runs/{runId}
	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	idx, err := s.ports.Runs.Get(ctx, runID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("loading run: %w", err)
	}

	books := make([]bookInfo, len(idx.Books))
	for i, b := range idx.Books {
		books[i] = bookInfo{Number: b.Number, Year: b.Year, Chapters: len(b.Chapters)}
		for _, c := range b.Chapters {
			books[i].Paragraphs += len(c.Paragraphs)
		}
	}
	return jsonResult(req.Params.URI, books)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like bookscan://runs/{runId}.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
