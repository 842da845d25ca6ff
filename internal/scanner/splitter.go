package scanner

import (
	"github.com/custodia-labs/bookscan/internal/core/domain"
)

// Split divides a transcription into header, body and footer.
//
// The header ends at the first run of blankRun consecutive blank lines; the
// run itself belongs to neither header nor body. The body ends with the next
// such run, which is kept as the tail of the body. The footer is everything
// after that. Reaching end of input before either run is ErrMalformedInput.
func Split(lines []string, blankRun int) (domain.Regions, error) {
	if blankRun <= 0 {
		return domain.Regions{}, domain.NewScanError(domain.ErrInvalidInput, "split", 0, "")
	}

	cur := NewCursor(lines)

	headerEnd, ok := nextBlankRun(cur, blankRun)
	if !ok {
		return domain.Regions{}, domain.NewScanError(domain.ErrMalformedInput, "header", cur.Len(), "")
	}
	bodyStart := cur.Line()

	if _, ok := nextBlankRun(cur, blankRun); !ok {
		return domain.Regions{}, domain.NewScanError(domain.ErrMalformedInput, "body", cur.Len(), "")
	}
	bodyEnd := cur.Line()

	return domain.Regions{
		Header: domain.LineRange{Start: 0, End: headerEnd},
		Body:   domain.LineRange{Start: bodyStart, End: bodyEnd},
		Footer: domain.LineRange{Start: bodyEnd, End: len(lines)},
	}, nil
}

// Body returns the body lines of a split transcription.
func Body(lines []string, r domain.Regions) []string {
	return lines[r.Body.Start:r.Body.End]
}

// nextBlankRun advances cur until n consecutive blank lines have been read.
// It returns the index of the first line of that run.
func nextBlankRun(cur *Cursor, n int) (int, bool) {
	count := 0
	for {
		line, ok := cur.Next()
		if !ok {
			return 0, false
		}
		if IsBlank(line) {
			count++
		} else {
			count = 0
		}
		if count == n {
			return cur.Line() - n, true
		}
	}
}
