package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
	"github.com/custodia-labs/bookscan/internal/core/ports/driving"
)

// Ensure RunService implements the interface.
var _ driving.RunService = (*RunService)(nil)

// ErrNoIndexStore is returned when runs are requested without storage.
var ErrNoIndexStore = errors.New("index store not configured")

// RunService exposes stored conversions.
type RunService struct {
	indexStore driven.IndexStore
}

// NewRunService creates a new run service.
func NewRunService(indexStore driven.IndexStore) *RunService {
	return &RunService{indexStore: indexStore}
}

// List returns all stored runs, newest first.
func (s *RunService) List(ctx context.Context) ([]domain.Run, error) {
	if s.indexStore == nil {
		return nil, ErrNoIndexStore
	}
	return s.indexStore.ListRuns(ctx)
}

// Get rebuilds the index of a stored run.
func (s *RunService) Get(ctx context.Context, runID string) (*domain.Index, error) {
	if s.indexStore == nil {
		return nil, ErrNoIndexStore
	}
	return s.indexStore.LoadIndex(ctx, runID)
}

// Sentence reads one sentence of a stored run without loading the index.
func (s *RunService) Sentence(ctx context.Context, runID string, at domain.Coordinate, n int) (*domain.StoredSentence, error) {
	if s.indexStore == nil {
		return nil, ErrNoIndexStore
	}
	return s.indexStore.LoadSentence(ctx, runID, at, n)
}

// Delete removes a stored run.
func (s *RunService) Delete(ctx context.Context, runID string) error {
	if s.indexStore == nil {
		return ErrNoIndexStore
	}
	return s.indexStore.DeleteRun(ctx, runID)
}
