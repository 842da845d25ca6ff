// Package domain defines the core entities for bookscan.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Index: the book → chapter → paragraph → sentence tree built by a scan
//   - Year: a book's publication year, or the NoYear sentinel
//   - Regions: header, body and footer line ranges of a transcription
//   - Thresholds: the blank-line run lengths that delimit structure
//   - ScanError: a sentinel error annotated with its input position
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
