package driven

import (
	"context"

	"github.com/custodia-labs/bookscan/internal/core/domain"
)

// StructureScanner infers the book structure of body lines.
type StructureScanner interface {
	// Run scans lines from the first book heading to the end of the body.
	Run(ctx context.Context, lines []string) (*domain.Index, error)
}
