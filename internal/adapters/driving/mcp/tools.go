package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/core/ports/driving"
)

// ConvertInput is the input schema for the convert tool.
type ConvertInput struct {
	InputPath  string `json:"input_path" jsonschema:"path of the full transcription"`
	OutputPath string `json:"output_path" jsonschema:"path of the JSON document to write"`
	BodyPath   string `json:"body_path,omitempty" jsonschema:"path of the body artifact (default: next to the output)"`
}

// ConvertOutput is the output schema for the convert tool.
type ConvertOutput struct {
	RunID      string `json:"run_id,omitempty"`
	BodyPath   string `json:"body_path"`
	Books      int    `json:"books"`
	Chapters   int    `json:"chapters"`
	Paragraphs int    `json:"paragraphs"`
	Sentences  int    `json:"sentences"`
	Words      int    `json:"words"`
}

// SentenceInput is the input schema for the sentence tool.
type SentenceInput struct {
	RunID     string `json:"run_id" jsonschema:"id of a stored run"`
	Book      int    `json:"book" jsonschema:"1-based book number"`
	Chapter   int    `json:"chapter" jsonschema:"1-based chapter number within the book"`
	Paragraph int    `json:"paragraph" jsonschema:"1-based paragraph number within the chapter"`
	Sentence  int    `json:"sentence" jsonschema:"1-based sentence number within the paragraph"`
}

// SentenceOutput is the output schema for the sentence tool.
type SentenceOutput struct {
	Year  string   `json:"year,omitempty"`
	Text  string   `json:"text"`
	Words []string `json:"words"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a War and Peace transcription into a structured JSON document",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sentence",
		Description: "Read one sentence and its words from a stored run",
	}, s.handleSentence)
}

// handleConvert handles the convert tool invocation.
func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	if input.InputPath == "" || input.OutputPath == "" {
		return nil, ConvertOutput{}, fmt.Errorf("%w: input_path and output_path are required", domain.ErrInvalidInput)
	}

	result, err := s.ports.Conversion.Convert(ctx, driving.ConvertRequest{
		InputPath:  input.InputPath,
		BodyPath:   input.BodyPath,
		OutputPath: input.OutputPath,
	})
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	return nil, ConvertOutput{
		RunID:      result.RunID,
		BodyPath:   result.BodyPath,
		Books:      result.Stats.Books,
		Chapters:   result.Stats.Chapters,
		Paragraphs: result.Stats.Paragraphs,
		Sentences:  result.Stats.Sentences,
		Words:      result.Stats.Words,
	}, nil
}

// handleSentence handles the sentence tool invocation.
func (s *Server) handleSentence(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SentenceInput,
) (*mcp.CallToolResult, SentenceOutput, error) {
	if s.ports.Runs == nil {
		return nil, SentenceOutput{}, fmt.Errorf("%w: no run store", domain.ErrNotFound)
	}

	at := domain.Coordinate{Book: input.Book, Chapter: input.Chapter, Paragraph: input.Paragraph}
	sentence, err := s.ports.Runs.Sentence(ctx, input.RunID, at, input.Sentence)
	if err != nil {
		return nil, SentenceOutput{}, err
	}

	out := SentenceOutput{
		Text:  sentence.Text,
		Words: make([]string, len(sentence.Words)),
	}
	copy(out.Words, sentence.Words)
	if !sentence.Year.IsZero() {
		out.Year = sentence.Year.String()
	}
	return nil, out, nil
}
