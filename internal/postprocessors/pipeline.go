// Package postprocessors provides word token filter implementations.
// Filters run on the tokens of one sentence after word segmentation.
package postprocessors

import (
	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.TokenFilterPipeline = (*Pipeline)(nil)

// Pipeline chains multiple TokenFilters and runs them in order.
// It implements the TokenFilterPipeline interface.
type Pipeline struct {
	filters []driven.TokenFilter
}

// NewPipeline creates a new filter pipeline with the given filters.
// Filters are executed in the order provided.
func NewPipeline(filters ...driven.TokenFilter) *Pipeline {
	return &Pipeline{
		filters: filters,
	}
}

// Process runs the tokens through all filters in order.
// The input slice is not modified.
func (p *Pipeline) Process(tokens []string) []string {
	out := make([]string, len(tokens))
	copy(out, tokens)

	for _, filter := range p.filters {
		out = filter.Filter(out)
	}

	return out
}

// Add appends a filter to the pipeline.
func (p *Pipeline) Add(filter driven.TokenFilter) {
	p.filters = append(p.filters, filter)
}

// Len returns the number of filters in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.filters)
}

// Names returns the filter names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.filters))
	for _, f := range p.filters {
		names = append(names, f.Name())
	}
	return names
}
