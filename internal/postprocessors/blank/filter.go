// Package blank provides a token filter that drops whitespace-only tokens.
package blank

import (
	"strings"

	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
)

// Name is the registry name of the filter.
const Name = "blank"

var _ driven.TokenFilter = (*Filter)(nil)

// Filter removes tokens that are empty or whitespace.
type Filter struct{}

// New creates a blank filter.
func New() *Filter {
	return &Filter{}
}

// Name returns the filter name.
func (f *Filter) Name() string {
	return Name
}

// Filter returns tokens with whitespace-only entries removed.
func (f *Filter) Filter(tokens []string) []string {
	out := tokens[:0]
	for _, tok := range tokens {
		if strings.TrimSpace(tok) != "" {
			out = append(out, tok)
		}
	}
	return out
}
