package domain

// LineRange is a half-open range [Start, End) of 0-based line indices.
type LineRange struct {
	Start int
	End   int
}

// Len returns the number of lines in the range.
func (r LineRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Regions are the three contiguous parts of a transcription.
type Regions struct {
	// Header is the front matter, excluding the blank run that ends it.
	Header LineRange

	// Body is the narrative, including the blank run that ends it.
	Body LineRange

	// Footer is the back matter up to end of input.
	Footer LineRange
}
