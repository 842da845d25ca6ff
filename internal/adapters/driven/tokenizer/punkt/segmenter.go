// Package punkt provides sentence segmentation with the Punkt algorithm,
// using the English model bundled with github.com/neurosnap/sentences.
package punkt

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
)

// Ensure Segmenter implements the interface.
var _ driven.SentenceSegmenter = (*Segmenter)(nil)

// Segmenter splits text into sentences.
type Segmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// New loads the English Punkt model.
func New() (*Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading punkt english model: %w", err)
	}
	return &Segmenter{tokenizer: tokenizer}, nil
}

// Sentences returns the trimmed, non-empty sentences of text.
func (s *Segmenter) Sentences(text string) ([]string, error) {
	var out []string
	for _, sent := range s.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}
