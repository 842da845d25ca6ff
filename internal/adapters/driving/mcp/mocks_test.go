package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/core/ports/driving"
)

// mockConversionService is a mock implementation of driving.ConversionService.
type mockConversionService struct {
	result  *driving.ConvertResult
	err     error
	lastReq driving.ConvertRequest
}

func (m *mockConversionService) Split(_ context.Context, _, _ string) (domain.Regions, error) {
	return domain.Regions{}, m.err
}

func (m *mockConversionService) Parse(_ context.Context, _ string) (*domain.Index, error) {
	return nil, m.err
}

func (m *mockConversionService) Export(_ context.Context, _ *domain.Index, _ string) error {
	return m.err
}

func (m *mockConversionService) Convert(_ context.Context, req driving.ConvertRequest) (*driving.ConvertResult, error) {
	m.lastReq = req
	return m.result, m.err
}

// mockRunService is a mock implementation of driving.RunService.
type mockRunService struct {
	runs     []domain.Run
	idx      *domain.Index
	err      error
	getCalls int
}

func (m *mockRunService) List(_ context.Context) ([]domain.Run, error) {
	return m.runs, m.err
}

func (m *mockRunService) Get(_ context.Context, _ string) (*domain.Index, error) {
	m.getCalls++
	return m.idx, m.err
}

// Sentence answers from idx the way a store would.
func (m *mockRunService) Sentence(_ context.Context, runID string, at domain.Coordinate, n int) (*domain.StoredSentence, error) {
	if m.err != nil {
		return nil, m.err
	}
	sen, ok := m.idx.Sentence(at, n)
	if !ok {
		return nil, fmt.Errorf("%w: sentence %s/%d in run %s", domain.ErrNotFound, at, n, runID)
	}
	book, _ := m.idx.Lookup(at.Book)
	return &domain.StoredSentence{At: at, Number: n, Year: book.Year, Text: sen.Text, Words: sen.Words}, nil
}

func (m *mockRunService) Delete(_ context.Context, _ string) error {
	return m.err
}

// sampleIndex has one dated book and one undated book.
func sampleIndex() *domain.Index {
	idx := domain.NewIndex()
	_ = idx.Book(1).SetYear(domain.NewYear("1805"))
	idx.Paragraph(domain.Coordinate{Book: 1, Chapter: 1, Paragraph: 1}).SetSentences([]domain.SentenceRecord{
		{Text: "Well, Prince, so Genoa and Lucca are now just family estates.", Words: []string{"well", "prince", "so", "genoa", "and", "lucca", "are", "now", "just", "family", "estates"}},
		{Text: "I warn you.", Words: []string{"i", "warn", "you"}},
	})
	idx.Paragraph(domain.Coordinate{Book: 1, Chapter: 1, Paragraph: 2}).SetSentences([]domain.SentenceRecord{
		{Text: "It was in July.", Words: []string{"it", "was", "in", "july"}},
	})
	idx.Paragraph(domain.Coordinate{Book: 2, Chapter: 1, Paragraph: 1}).SetSentences([]domain.SentenceRecord{
		{Text: "History is the life of nations.", Words: []string{"history", "is", "the", "life", "of", "nations"}},
	})
	return idx
}
