package domain

import "time"

// Run is one stored conversion of a transcription.
type Run struct {
	// ID is the unique identifier for the run.
	ID string

	// Name is a human-readable label, usually the input file name.
	Name string

	// Stats summarises the stored index.
	Stats Stats

	// CreatedAt is when the run was stored.
	CreatedAt time.Time
}

// StoredSentence is one sentence read back from a stored run.
type StoredSentence struct {
	// At is the paragraph holding the sentence.
	At Coordinate

	// Number is the 1-based sentence number within the paragraph.
	Number int

	// Year is the year of the sentence's book.
	Year Year

	Text  string
	Words []string
}
