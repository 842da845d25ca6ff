// Package uax29 provides word segmentation following Unicode Standard
// Annex #29 word boundaries, via github.com/clipperhouse/uax29.
package uax29

import (
	"github.com/clipperhouse/uax29/v2/words"

	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
)

// Ensure Segmenter implements the interface.
var _ driven.WordSegmenter = (*Segmenter)(nil)

// Segmenter splits text on word boundaries.
// Whitespace and punctuation come back as their own tokens.
type Segmenter struct{}

// New creates a word segmenter.
func New() *Segmenter {
	return &Segmenter{}
}

// Words returns every segment of text in order.
func (s *Segmenter) Words(text string) []string {
	var out []string
	tokens := words.FromString(text)
	for tokens.Next() {
		out = append(out, tokens.Value())
	}
	return out
}
