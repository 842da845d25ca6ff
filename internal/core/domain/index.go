package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// Index is the document tree accumulated during a scan.
// Children at every level are kept in ascending number order and are
// created on first access through the get-or-insert methods.
type Index struct {
	// Books are the top-level units (books and epilogues).
	Books []*Book
}

// Book is a top-level section of the novel.
type Book struct {
	// Number is the 1-based book number.
	Number int

	// Year is the publication year from the heading, or NoYear.
	Year Year

	// Chapters are the chapters in this book.
	Chapters []*Chapter

	yearSet bool
}

// Chapter is a numbered chapter within a book.
type Chapter struct {
	Number     int
	Paragraphs []*Paragraph
}

// Paragraph is a blank-line delimited block of text within a chapter.
type Paragraph struct {
	Number    int
	Sentences []*Sentence
}

// Sentence holds the normalised sentence text and its word tokens.
// Word positions are the 1-based indices into Words.
type Sentence struct {
	Number int
	Text   string
	Words  []string
}

// SentenceRecord is a tokenizer result before it is placed in the tree.
type SentenceRecord struct {
	Text  string
	Words []string
}

// Coordinate addresses a paragraph in the tree.
type Coordinate struct {
	Book      int
	Chapter   int
	Paragraph int
}

// String formats the coordinate as book/chapter/paragraph.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d/%d/%d", c.Book, c.Chapter, c.Paragraph)
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Book returns book n, creating it if it does not exist yet.
func (idx *Index) Book(n int) *Book {
	var b *Book
	idx.Books, b = getOrInsert(idx.Books, n, func(b *Book) int { return b.Number }, func(n int) *Book {
		return &Book{Number: n}
	})
	return b
}

// Lookup returns book n without creating it.
func (idx *Index) Lookup(n int) (*Book, bool) {
	return lookup(idx.Books, n, func(b *Book) int { return b.Number })
}

// Paragraph returns the paragraph at c, creating every missing level.
func (idx *Index) Paragraph(c Coordinate) *Paragraph {
	return idx.Book(c.Book).Chapter(c.Chapter).Paragraph(c.Paragraph)
}

// Sentence returns sentence n of the paragraph at c without creating any level.
func (idx *Index) Sentence(c Coordinate, n int) (*Sentence, bool) {
	b, ok := idx.Lookup(c.Book)
	if !ok {
		return nil, false
	}
	ch, ok := lookup(b.Chapters, c.Chapter, func(ch *Chapter) int { return ch.Number })
	if !ok {
		return nil, false
	}
	p, ok := lookup(ch.Paragraphs, c.Paragraph, func(p *Paragraph) int { return p.Number })
	if !ok {
		return nil, false
	}
	return lookup(p.Sentences, n, func(s *Sentence) int { return s.Number })
}

// SetYear records the book's year. A year can be set only once.
func (b *Book) SetYear(y Year) error {
	if b.yearSet {
		return fmt.Errorf("%w: year of book %d already set to %s", ErrInvalidInput, b.Number, b.Year)
	}
	b.Year = y
	b.yearSet = true
	return nil
}

// Chapter returns chapter n, creating it if it does not exist yet.
func (b *Book) Chapter(n int) *Chapter {
	var c *Chapter
	b.Chapters, c = getOrInsert(b.Chapters, n, func(c *Chapter) int { return c.Number }, func(n int) *Chapter {
		return &Chapter{Number: n}
	})
	return c
}

// Paragraph returns paragraph n, creating it if it does not exist yet.
func (c *Chapter) Paragraph(n int) *Paragraph {
	var p *Paragraph
	c.Paragraphs, p = getOrInsert(c.Paragraphs, n, func(p *Paragraph) int { return p.Number }, func(n int) *Paragraph {
		return &Paragraph{Number: n}
	})
	return p
}

// Sentence returns sentence n, creating it if it does not exist yet.
func (p *Paragraph) Sentence(n int) *Sentence {
	var s *Sentence
	p.Sentences, s = getOrInsert(p.Sentences, n, func(s *Sentence) int { return s.Number }, func(n int) *Sentence {
		return &Sentence{Number: n}
	})
	return s
}

// SetSentences stores records as sentences 1..len(records).
func (p *Paragraph) SetSentences(records []SentenceRecord) {
	for i, rec := range records {
		s := p.Sentence(i + 1)
		s.Text = rec.Text
		s.Words = slices.Clone(rec.Words)
	}
}

// getOrInsert finds the item numbered n in a sorted slice, inserting a new
// one at its ordered position when absent.
func getOrInsert[T any](items []*T, n int, key func(*T) int, create func(int) *T) ([]*T, *T) {
	i, found := slices.BinarySearchFunc(items, n, func(it *T, n int) int {
		return cmp.Compare(key(it), n)
	})
	if found {
		return items, items[i]
	}
	it := create(n)
	return slices.Insert(items, i, it), it
}

func lookup[T any](items []*T, n int, key func(*T) int) (*T, bool) {
	i, found := slices.BinarySearchFunc(items, n, func(it *T, n int) int {
		return cmp.Compare(key(it), n)
	})
	if !found {
		return nil, false
	}
	return items[i], true
}
