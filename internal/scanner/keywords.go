package scanner

import (
	"strings"

	"github.com/custodia-labs/bookscan/internal/core/domain"
)

// Heading prefixes recognised in the body text.
const (
	bookPrefix           = "BOOK"
	firstEpiloguePrefix  = "FIRST EPILOGUE"
	secondEpiloguePrefix = "SECOND EPILOGUE"
	chapterPrefix        = "CHAPTER"
)

// IsBookHeading reports whether line starts a book-like section.
func IsBookHeading(line string) bool {
	return strings.HasPrefix(line, bookPrefix) ||
		strings.HasPrefix(line, firstEpiloguePrefix) ||
		strings.HasPrefix(line, secondEpiloguePrefix)
}

// IsChapterHeading reports whether line starts a chapter.
func IsChapterHeading(line string) bool {
	return strings.HasPrefix(line, chapterPrefix)
}

// HeadingYear extracts the year from a book heading such as "BOOK ONE: 1805".
// The second epilogue has no year, and neither does a heading without a colon.
func HeadingYear(line string) domain.Year {
	if strings.HasPrefix(line, secondEpiloguePrefix) {
		return domain.NoYear
	}
	_, after, found := strings.Cut(line, ":")
	if !found {
		return domain.NoYear
	}
	return domain.NewYear(strings.TrimSpace(after))
}
