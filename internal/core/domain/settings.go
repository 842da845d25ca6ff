package domain

// DefaultIndent is the default output indent width in spaces.
const DefaultIndent = 4

// Settings are the effective options of a conversion after config is applied.
type Settings struct {
	// Thresholds drive the splitter and the structural scanner.
	Thresholds Thresholds

	// Filters names the token filters applied to each sentence, in order.
	Filters []string

	// PunctuationSymbols overrides the punctuation filter's symbol set.
	// Empty keeps the filter's default.
	PunctuationSymbols string

	// Indent is the output indent width. Zero writes compact output.
	Indent int

	// StorageDir is where runs are stored. Empty means the default location.
	StorageDir string
}
