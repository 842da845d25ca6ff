package driving

import (
	"context"

	"github.com/custodia-labs/bookscan/internal/core/domain"
)

// RunService exposes stored conversions.
type RunService interface {
	// List returns all stored runs, newest first.
	List(ctx context.Context) ([]domain.Run, error)

	// Get rebuilds the index of a stored run.
	Get(ctx context.Context, runID string) (*domain.Index, error)

	// Sentence reads one sentence of a stored run.
	Sentence(ctx context.Context, runID string, at domain.Coordinate, n int) (*domain.StoredSentence, error)

	// Delete removes a stored run.
	Delete(ctx context.Context, runID string) error
}
