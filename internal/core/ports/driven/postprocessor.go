package driven

// TokenFilter processes word tokens after segmentation.
// Filters are chained in a pipeline (e.g., blank removal, punctuation removal).
type TokenFilter interface {
	// Name returns the filter name for logging and configuration.
	Name() string

	// Filter receives the tokens of one sentence and returns the kept tokens.
	// It may reuse the backing array of tokens.
	Filter(tokens []string) []string
}

// TokenFilterPipeline chains multiple TokenFilters.
type TokenFilterPipeline interface {
	// Process runs the tokens through all filters in order.
	Process(tokens []string) []string
}
