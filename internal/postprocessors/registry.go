package postprocessors

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
)

// BuilderFunc creates a TokenFilter from generic config.
// Config is a map of filter-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.TokenFilter, error)

// Registry maps filter names to their builders.
// It allows dynamic construction of filters from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new filter registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a filter builder to the registry.
// Name should be unique and match the filter's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a filter by name with the given config.
// Returns error if the filter name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.TokenFilter, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown token filter: %s", name)
	}
	return builder(cfg)
}

// BuildPipeline builds a pipeline from filter names in order.
// cfg holds per-filter settings keyed by filter name.
func (r *Registry) BuildPipeline(names []string, cfg map[string]map[string]any) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range names {
		f, err := r.Build(name, cfg[name])
		if err != nil {
			return nil, err
		}
		p.Add(f)
	}
	return p, nil
}

// Has returns true if a filter with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered filter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
