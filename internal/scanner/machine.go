package scanner

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/logger"
)

// ParagraphTokenizer fills the paragraph at a coordinate from its raw text.
type ParagraphTokenizer interface {
	Populate(ctx context.Context, idx *domain.Index, at domain.Coordinate, text string) error
}

// Context is the scanner state carried between transitions.
type Context struct {
	// Cursor is the read position over the body lines.
	Cursor *Cursor

	// Index receives books, years and paragraphs as they are recognised.
	Index *domain.Index

	// Book, Chapter and Paragraph are the current 1-based numbers.
	// Zero means the unit has not started yet.
	Book      int
	Chapter   int
	Paragraph int

	// Text buffers the current paragraph between Paragraph and SentenceSplit.
	Text string
}

// NewContext creates a context positioned at the start of lines.
func NewContext(lines []string) *Context {
	return &Context{
		Cursor: NewCursor(lines),
		Index:  domain.NewIndex(),
	}
}

// Coordinate returns the current paragraph coordinate.
func (c *Context) Coordinate() domain.Coordinate {
	return domain.Coordinate{Book: c.Book, Chapter: c.Chapter, Paragraph: c.Paragraph}
}

// Machine is the structural scanner.
type Machine struct {
	thresholds domain.Thresholds
	tokenizer  ParagraphTokenizer
}

// Option configures the machine.
type Option func(*Machine)

// WithThresholds overrides the blank-line thresholds.
// Non-positive values keep the defaults.
func WithThresholds(th domain.Thresholds) Option {
	return func(m *Machine) {
		if th.BookBlankRun > 0 {
			m.thresholds.BookBlankRun = th.BookBlankRun
		}
		if th.ChapterBlankRun > 0 {
			m.thresholds.ChapterBlankRun = th.ChapterBlankRun
		}
		if th.EndBlankRun > 0 {
			m.thresholds.EndBlankRun = th.EndBlankRun
		}
		if th.HeaderBlankRun > 0 {
			m.thresholds.HeaderBlankRun = th.HeaderBlankRun
		}
	}
}

// New creates a machine that hands paragraphs to tok.
func New(tok ParagraphTokenizer, opts ...Option) *Machine {
	m := &Machine{
		thresholds: domain.DefaultThresholds(),
		tokenizer:  tok,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Thresholds returns the thresholds in use.
func (m *Machine) Thresholds() domain.Thresholds {
	return m.thresholds
}

// Run scans the body lines from StateBook until a terminal state.
func (m *Machine) Run(ctx context.Context, lines []string) (*domain.Index, error) {
	sc := NewContext(lines)
	state := StateBook

	for !state.Terminal() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := m.Step(ctx, state, sc)
		if err != nil {
			return nil, err
		}
		state = next
	}

	logger.Debug("scan finished at line %d of %d", sc.Cursor.Line(), sc.Cursor.Len())
	return sc.Index, nil
}

// Step runs the handler for state s and returns the next state.
// On failure the next state is StateError and err describes the cause.
// Stepping a terminal or unknown state is a programming error and panics.
func (m *Machine) Step(ctx context.Context, s State, sc *Context) (State, error) {
	switch s {
	case StateBook:
		return m.book(sc)
	case StateChapter:
		return m.chapter(sc)
	case StateParagraph:
		return m.paragraph(sc)
	case StateSentenceSplit:
		return m.sentenceSplit(ctx, sc)
	case StateEndOfParagraph:
		return m.endOfParagraph(sc)
	default:
		panic(fmt.Sprintf("scanner: invalid target state %s (%d)", s, int(s)))
	}
}

// book reads a book heading block up to its blank-line run.
func (m *Machine) book(sc *Context) (State, error) {
	sc.Chapter = 0
	blank := 0
	seen := false
	firstText, firstLine := "", 0

	for {
		line, ok := sc.Cursor.Next()
		if !ok {
			return StateError, domain.NewScanError(domain.ErrMalformedInput, StateBook.String(), sc.Cursor.Line(), "")
		}

		if IsBlank(line) {
			blank++
		} else {
			blank = 0
			if firstText == "" {
				firstText, firstLine = line, sc.Cursor.Line()
			}
		}

		if IsBookHeading(line) {
			seen = true
			sc.Book++
			sc.Chapter = 0
			year := HeadingYear(line)
			if err := sc.Index.Book(sc.Book).SetYear(year); err != nil {
				return StateError, err
			}
			logger.Debug("book %d at line %d (year %s)", sc.Book, sc.Cursor.Line(), year)
		}

		if blank == m.thresholds.BookBlankRun {
			if !seen {
				return StateError, domain.NewScanError(domain.ErrUnidentifiableLine, StateBook.String(), firstLine, firstText)
			}
			return StateChapter, nil
		}
	}
}

// chapter consumes a chapter heading up to its blank-line run.
func (m *Machine) chapter(sc *Context) (State, error) {
	sc.Chapter++
	sc.Paragraph = 0
	blank := 0

	for {
		line, ok := sc.Cursor.Next()
		if !ok {
			return StateError, domain.NewScanError(domain.ErrMalformedInput, StateChapter.String(), sc.Cursor.Line(), "")
		}
		if !IsBlank(line) {
			blank = 0
			continue
		}
		blank++
		if blank == m.thresholds.ChapterBlankRun {
			return StateParagraph, nil
		}
	}
}

// paragraph buffers non-blank lines up to the next blank line.
func (m *Machine) paragraph(sc *Context) (State, error) {
	sc.Paragraph++
	var b strings.Builder

	for {
		line, ok := sc.Cursor.Next()
		if !ok {
			return StateError, domain.NewScanError(domain.ErrMalformedInput, StateParagraph.String(), sc.Cursor.Line(), "")
		}
		if IsBlank(line) {
			sc.Text = b.String()
			return StateSentenceSplit, nil
		}
		b.WriteString(strings.TrimSuffix(line, "\r"))
		b.WriteByte('\n')
	}
}

// sentenceSplit hands the buffered paragraph to the tokenizer.
func (m *Machine) sentenceSplit(ctx context.Context, sc *Context) (State, error) {
	if sc.Book == 0 || sc.Chapter == 0 {
		return StateError, domain.NewScanError(domain.ErrUnidentifiableLine, StateSentenceSplit.String(),
			sc.Cursor.Line(), firstLine(sc.Text))
	}

	at := sc.Coordinate()
	if err := m.tokenizer.Populate(ctx, sc.Index, at, sc.Text); err != nil {
		return StateError, fmt.Errorf("paragraph %s ending at line %d: %w", at, sc.Cursor.Line(), err)
	}
	sc.Text = ""
	return StateEndOfParagraph, nil
}

// endOfParagraph looks ahead to decide what follows a paragraph.
// Lines it does not own are left unread by rewinding to the last mark.
func (m *Machine) endOfParagraph(sc *Context) (State, error) {
	mark := sc.Cursor.Mark()
	blank := 0

	for {
		if blank > m.thresholds.EndBlankRun {
			sc.Cursor.Reset(mark)
			return StateEnd, nil
		}

		line, ok := sc.Cursor.Next()
		if !ok {
			return StateError, domain.NewScanError(domain.ErrMalformedInput, StateEndOfParagraph.String(), sc.Cursor.Line(), "")
		}

		switch {
		case IsBookHeading(line):
			sc.Cursor.Reset(mark)
			return StateBook, nil
		case IsChapterHeading(line):
			return StateChapter, nil
		case IsBlank(line):
			blank++
			mark = sc.Cursor.Mark()
		default:
			sc.Cursor.Reset(mark)
			return StateParagraph, nil
		}
	}
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}
