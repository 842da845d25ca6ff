package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
)

// Ensure IndexStore implements the interface.
var _ driven.IndexStore = (*IndexStore)(nil)

// IndexStore is an in-memory implementation of driven.IndexStore.
type IndexStore struct {
	mu      sync.RWMutex
	runs    map[string]domain.Run
	indexes map[string]*domain.Index
}

// NewIndexStore creates a new in-memory index store.
func NewIndexStore() *IndexStore {
	return &IndexStore{
		runs:    make(map[string]domain.Run),
		indexes: make(map[string]*domain.Index),
	}
}

// SaveIndex stores a copy of idx under run.
func (s *IndexStore) SaveIndex(_ context.Context, run domain.Run, idx *domain.Index) error {
	if run.ID == "" {
		return fmt.Errorf("%w: run id is required", domain.ErrInvalidInput)
	}
	if idx == nil {
		return fmt.Errorf("%w: nil index", domain.ErrInvalidInput)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.Stats = idx.Stats()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	s.indexes[run.ID] = clone(idx)
	return nil
}

// LoadIndex returns a copy of the index stored for runID.
func (s *IndexStore) LoadIndex(_ context.Context, runID string) (*domain.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.indexes[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(idx), nil
}

// LoadSentence returns a copy of one stored sentence.
func (s *IndexStore) LoadSentence(_ context.Context, runID string, at domain.Coordinate, n int) (*domain.StoredSentence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.indexes[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	sen, ok := idx.Sentence(at, n)
	if !ok {
		return nil, fmt.Errorf("%w: sentence %s/%d", domain.ErrNotFound, at, n)
	}
	book, _ := idx.Lookup(at.Book)
	return &domain.StoredSentence{
		At:     at,
		Number: n,
		Year:   book.Year,
		Text:   sen.Text,
		Words:  slices.Clone(sen.Words),
	}, nil
}

// ListRuns returns all runs, newest first.
func (s *IndexStore) ListRuns(_ context.Context) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := make([]domain.Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	slices.SortFunc(runs, func(a, b domain.Run) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return runs, nil
}

// DeleteRun removes a run.
func (s *IndexStore) DeleteRun(_ context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[runID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.runs, runID)
	delete(s.indexes, runID)
	return nil
}

// clone deep-copies idx so callers cannot mutate stored runs.
func clone(idx *domain.Index) *domain.Index {
	out := domain.NewIndex()
	for _, b := range idx.Books {
		book := out.Book(b.Number)
		_ = book.SetYear(b.Year)
		for _, c := range b.Chapters {
			for _, p := range c.Paragraphs {
				records := make([]domain.SentenceRecord, 0, len(p.Sentences))
				for _, sen := range p.Sentences {
					records = append(records, domain.SentenceRecord{Text: sen.Text, Words: sen.Words})
				}
				book.Chapter(c.Number).Paragraph(p.Number).SetSentences(records)
			}
		}
	}
	return out
}
