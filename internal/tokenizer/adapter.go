// Package tokenizer segments paragraph text into sentences and word tokens.
//
// The Adapter composes three driven ports (sentence segmentation, ASCII
// transliteration and word segmentation) with a token filter pipeline and
// applies the word policy: hyphens split words, the sentence's terminal
// punctuation is dropped, and tokens are lowercased.
package tokenizer

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
	"github.com/custodia-labs/bookscan/internal/postprocessors/punctuation"
)

// Adapter turns raw paragraph text into sentence records.
type Adapter struct {
	sentences driven.SentenceSegmenter
	words     driven.WordSegmenter
	ascii     driven.Transliterator
	filters   driven.TokenFilterPipeline
	terminal  *punctuation.Filter
}

// Option configures the adapter.
type Option func(*Adapter)

// WithTerminalSymbols sets the runes stripped from the end of a sentence
// before word segmentation. An empty set keeps the default.
func WithTerminalSymbols(symbols string) Option {
	return func(a *Adapter) {
		a.terminal = punctuation.New(punctuation.WithSymbols(symbols))
	}
}

// New creates an adapter from its collaborators.
func New(
	sentences driven.SentenceSegmenter,
	words driven.WordSegmenter,
	ascii driven.Transliterator,
	filters driven.TokenFilterPipeline,
	opts ...Option,
) *Adapter {
	a := &Adapter{
		sentences: sentences,
		words:     words,
		ascii:     ascii,
		filters:   filters,
		terminal:  punctuation.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Populate tokenizes text and stores the sentences at coordinate at.
// The index is left untouched when tokenization fails.
func (a *Adapter) Populate(ctx context.Context, idx *domain.Index, at domain.Coordinate, text string) error {
	records, err := a.Tokenize(ctx, text)
	if err != nil {
		return err
	}
	idx.Paragraph(at).SetSentences(records)
	return nil
}

// Tokenize splits text into sentences and each sentence into words.
func (a *Adapter) Tokenize(ctx context.Context, text string) ([]domain.SentenceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty paragraph", domain.ErrTokenization)
	}

	sentences, err := a.sentences.Sentences(text)
	if err != nil {
		return nil, fmt.Errorf("%w: segmenting sentences: %w", domain.ErrTokenization, err)
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("%w: no sentences in %q", domain.ErrTokenization, truncate(text, 40))
	}

	records := make([]domain.SentenceRecord, 0, len(sentences))
	for _, sent := range sentences {
		normalised := collapseNewlines(a.ascii.ToASCII(sent))
		words := a.filters.Process(a.words.Words(a.WordText(normalised)))
		records = append(records, domain.SentenceRecord{
			Text:  normalised,
			Words: words,
		})
	}
	return records, nil
}

// WordText prepares a normalised sentence for word segmentation:
// hyphens become spaces, the trailing terminal punctuation rune is
// removed, and the result is lowercased.
func (a *Adapter) WordText(sentence string) string {
	s := strings.ReplaceAll(sentence, "-", " ")
	s = strings.TrimRight(s, " \t")
	if r, size := utf8.DecodeLastRuneInString(s); size > 0 && a.terminal.IsSymbol(r) {
		s = s[:len(s)-size]
	}
	return strings.ToLower(s)
}

func collapseNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
