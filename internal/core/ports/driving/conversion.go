package driving

import (
	"context"

	"github.com/custodia-labs/bookscan/internal/core/domain"
)

// ConversionService turns a transcription into a structured document.
type ConversionService interface {
	// Split extracts the body region of inputPath and writes it to bodyPath.
	Split(ctx context.Context, inputPath, bodyPath string) (domain.Regions, error)

	// Parse scans the body artifact at bodyPath into an index.
	Parse(ctx context.Context, bodyPath string) (*domain.Index, error)

	// Export serialises idx to outputPath. Nothing is left at outputPath on failure.
	Export(ctx context.Context, idx *domain.Index, outputPath string) error

	// Convert runs Split, Parse and Export in sequence.
	Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error)
}

// ConvertRequest describes one end-to-end conversion.
type ConvertRequest struct {
	// InputPath is the full transcription.
	InputPath string

	// BodyPath is where the body artifact is written.
	// Empty means a file next to OutputPath.
	BodyPath string

	// OutputPath is the structured output document.
	OutputPath string
}

// ConvertResult reports what a conversion produced.
type ConvertResult struct {
	// RunID is set when the index was stored.
	RunID string

	// BodyPath is the body artifact that was written.
	BodyPath string

	// Regions are the split line ranges of the input.
	Regions domain.Regions

	// Stats counts the units in the index.
	Stats domain.Stats
}
