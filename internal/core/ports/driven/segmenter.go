package driven

// SentenceSegmenter detects sentence boundaries in natural-language text.
type SentenceSegmenter interface {
	// Sentences returns the sentences of text in order.
	// Whitespace around each sentence is trimmed.
	Sentences(text string) ([]string, error)
}

// WordSegmenter splits text on word boundaries.
// The returned tokens cover the whole input, including whitespace
// and punctuation tokens; filtering is left to TokenFilters.
type WordSegmenter interface {
	Words(text string) []string
}

// Transliterator maps text to its nearest plain-ASCII approximation.
type Transliterator interface {
	ToASCII(text string) string
}
