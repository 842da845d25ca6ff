package scanner

// State is a structural scanner state.
type State int

// Scanner states. StateEnd and StateError are terminal.
const (
	StateBook State = iota
	StateChapter
	StateParagraph
	StateSentenceSplit
	StateEndOfParagraph
	StateEnd
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateBook:
		return "book"
	case StateChapter:
		return "chapter"
	case StateParagraph:
		return "paragraph"
	case StateSentenceSplit:
		return "sentence_split"
	case StateEndOfParagraph:
		return "end_of_paragraph"
	case StateEnd:
		return "end"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether the machine stops in s.
func (s State) Terminal() bool {
	return s == StateEnd || s == StateError
}
