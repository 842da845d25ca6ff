package postprocessors

import (
	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
	"github.com/custodia-labs/bookscan/internal/postprocessors/blank"
	"github.com/custodia-labs/bookscan/internal/postprocessors/punctuation"
)

// DefaultFilters is the filter chain used when none is configured.
var DefaultFilters = []string{blank.Name, punctuation.Name}

// RegisterDefaults registers all built-in filters with the registry.
// Call this during application initialisation to enable standard filters.
func RegisterDefaults(r *Registry) {
	r.Register(blank.Name, buildBlank)
	r.Register(punctuation.Name, buildPunctuation)
}

// DefaultPipeline returns a pipeline of DefaultFilters.
func DefaultPipeline() *Pipeline {
	return NewPipeline(blank.New(), punctuation.New())
}

func buildBlank(_ map[string]any) (driven.TokenFilter, error) {
	return blank.New(), nil
}

// buildPunctuation creates a punctuation filter from generic config.
// Supported config keys:
//   - symbols (string): Characters treated as punctuation (default: ASCII punctuation)
func buildPunctuation(cfg map[string]any) (driven.TokenFilter, error) {
	var opts []punctuation.Option

	if cfg != nil {
		if symbols, ok := cfg["symbols"].(string); ok && symbols != "" {
			opts = append(opts, punctuation.WithSymbols(symbols))
		}
	}

	return punctuation.New(opts...), nil
}
