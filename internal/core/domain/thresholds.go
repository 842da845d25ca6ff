package domain

import "fmt"

// Blank-line run lengths tuned to the War and Peace transcription.
// They are not general rules and may need changing for other texts.
const (
	// DefaultHeaderBlankRun separates header from body and body from footer.
	DefaultHeaderBlankRun = 10

	// DefaultBookBlankRun separates a book heading block from its first chapter.
	DefaultBookBlankRun = 5

	// DefaultChapterBlankRun separates a chapter heading from its first paragraph.
	DefaultChapterBlankRun = 1

	// DefaultEndBlankRun is exceeded after the last paragraph of the body.
	DefaultEndBlankRun = 8
)

// Thresholds holds the blank-line run lengths that drive the splitter
// and the structural scanner.
type Thresholds struct {
	HeaderBlankRun  int
	BookBlankRun    int
	ChapterBlankRun int
	EndBlankRun     int
}

// DefaultThresholds returns the thresholds for the reference transcription.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HeaderBlankRun:  DefaultHeaderBlankRun,
		BookBlankRun:    DefaultBookBlankRun,
		ChapterBlankRun: DefaultChapterBlankRun,
		EndBlankRun:     DefaultEndBlankRun,
	}
}

// Validate checks that every threshold is positive.
func (t Thresholds) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"header_blank_run", t.HeaderBlankRun},
		{"book_blank_run", t.BookBlankRun},
		{"chapter_blank_run", t.ChapterBlankRun},
		{"end_blank_run", t.EndBlankRun},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidInput, c.name, c.value)
		}
	}
	return nil
}
