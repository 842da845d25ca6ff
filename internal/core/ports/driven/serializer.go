package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/bookscan/internal/core/domain"
)

// TreeWriter serialises a finished index to a structured document.
// Output for the same index must be byte-identical across calls.
type TreeWriter interface {
	// Write encodes idx to w.
	Write(ctx context.Context, idx *domain.Index, w io.Writer) error

	// Extension returns the file extension of the format, e.g. ".json".
	Extension() string
}
