package domain

import "encoding/json"

// Year is the publication year attached to a book heading.
// The zero value is NoYear, which serialises as the number 0.
type Year struct {
	value string
}

// NoYear is the sentinel for books whose heading carries no year.
var NoYear = Year{}

// NewYear returns a Year holding s. An empty s yields NoYear.
func NewYear(s string) Year {
	return Year{value: s}
}

// IsZero reports whether y is the NoYear sentinel.
func (y Year) IsZero() bool {
	return y.value == ""
}

// String returns the year text, or "0" for NoYear.
func (y Year) String() string {
	if y.IsZero() {
		return "0"
	}
	return y.value
}

// MarshalJSON emits the year as a JSON string, or 0 for NoYear.
func (y Year) MarshalJSON() ([]byte, error) {
	if y.IsZero() {
		return []byte("0"), nil
	}
	return json.Marshal(y.value)
}
