package driven

import (
	"context"

	"github.com/custodia-labs/bookscan/internal/core/domain"
)

// IndexStore persists finished indexes as runs.
// Backed by SQLite.
type IndexStore interface {
	// SaveIndex stores idx under run. run.ID must be set.
	SaveIndex(ctx context.Context, run domain.Run, idx *domain.Index) error

	// LoadIndex rebuilds the index stored for runID.
	// Returns domain.ErrNotFound if the run does not exist.
	LoadIndex(ctx context.Context, runID string) (*domain.Index, error)

	// LoadSentence reads sentence n of the paragraph at at.
	// Returns domain.ErrNotFound if the run or the sentence does not exist.
	LoadSentence(ctx context.Context, runID string, at domain.Coordinate, n int) (*domain.StoredSentence, error)

	// ListRuns returns all stored runs, newest first.
	ListRuns(ctx context.Context) ([]domain.Run, error)

	// DeleteRun removes a run and everything stored under it.
	DeleteRun(ctx context.Context, runID string) error
}
