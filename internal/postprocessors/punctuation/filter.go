// Package punctuation provides a token filter that drops punctuation-only tokens.
package punctuation

import (
	"strings"

	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
)

// Name is the registry name of the filter.
const Name = "punctuation"

// DefaultSymbols is the ASCII punctuation set.
const DefaultSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var _ driven.TokenFilter = (*Filter)(nil)

// Filter removes tokens made only of punctuation symbols,
// such as ",", "--", "..." or "''".
type Filter struct {
	symbols string
}

// Option configures the punctuation filter.
type Option func(*Filter)

// WithSymbols replaces the punctuation set.
func WithSymbols(symbols string) Option {
	return func(f *Filter) {
		if symbols != "" {
			f.symbols = symbols
		}
	}
}

// New creates a punctuation filter with the given options.
func New(opts ...Option) *Filter {
	f := &Filter{symbols: DefaultSymbols}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the filter name.
func (f *Filter) Name() string {
	return Name
}

// Filter returns tokens with punctuation-only entries removed.
func (f *Filter) Filter(tokens []string) []string {
	out := tokens[:0]
	for _, tok := range tokens {
		if !f.IsPunctuation(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// IsPunctuation reports whether every rune of tok is in the symbol set.
// The empty token is not punctuation.
func (f *Filter) IsPunctuation(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !strings.ContainsRune(f.symbols, r) {
			return false
		}
	}
	return true
}

// IsSymbol reports whether r is in the symbol set.
func (f *Filter) IsSymbol(r rune) bool {
	return strings.ContainsRune(f.symbols, r)
}
