package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_BookGetOrInsert(t *testing.T) {
	idx := NewIndex()

	b1 := idx.Book(1)
	require.NotNil(t, b1)
	assert.Equal(t, 1, b1.Number)
	assert.Same(t, b1, idx.Book(1))
	assert.Len(t, idx.Books, 1)
}

func TestIndex_ChildrenStayOrdered(t *testing.T) {
	idx := NewIndex()
	idx.Book(3)
	idx.Book(1)
	idx.Book(2)

	var numbers []int
	for _, b := range idx.Books {
		numbers = append(numbers, b.Number)
	}
	assert.Equal(t, []int{1, 2, 3}, numbers)
}

func TestIndex_Lookup(t *testing.T) {
	idx := NewIndex()
	_, ok := idx.Lookup(1)
	assert.False(t, ok)
	assert.Empty(t, idx.Books, "lookup must not insert")

	idx.Book(1)
	b, ok := idx.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, 1, b.Number)
}

func TestIndex_ParagraphCreatesPath(t *testing.T) {
	idx := NewIndex()
	p := idx.Paragraph(Coordinate{Book: 2, Chapter: 4, Paragraph: 6})

	require.NotNil(t, p)
	assert.Equal(t, 6, p.Number)
	b, ok := idx.Lookup(2)
	require.True(t, ok)
	require.Len(t, b.Chapters, 1)
	assert.Equal(t, 4, b.Chapters[0].Number)
	assert.Same(t, p, b.Chapters[0].Paragraphs[0])
}

func TestBook_SetYearOnce(t *testing.T) {
	b := NewIndex().Book(1)

	require.NoError(t, b.SetYear(NewYear("1805")))
	assert.Equal(t, "1805", b.Year.String())

	err := b.SetYear(NewYear("1806"))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "1805", b.Year.String())
}

func TestBook_SetYearSentinelOnce(t *testing.T) {
	b := NewIndex().Book(1)

	require.NoError(t, b.SetYear(NoYear))
	assert.ErrorIs(t, b.SetYear(NewYear("1820")), ErrInvalidInput)
	assert.True(t, b.Year.IsZero())
}

func TestParagraph_SetSentences(t *testing.T) {
	p := NewIndex().Paragraph(Coordinate{Book: 1, Chapter: 1, Paragraph: 1})
	words := []string{"it", "was"}
	p.SetSentences([]SentenceRecord{
		{Text: "It was.", Words: words},
		{Text: "Yes.", Words: []string{}},
	})

	require.Len(t, p.Sentences, 2)
	assert.Equal(t, 1, p.Sentences[0].Number)
	assert.Equal(t, "It was.", p.Sentences[0].Text)
	assert.Equal(t, []string{"it", "was"}, p.Sentences[0].Words)
	assert.Equal(t, 2, p.Sentences[1].Number)

	words[0] = "changed"
	assert.Equal(t, "it", p.Sentences[0].Words[0], "words must be copied")
}

func TestIndex_Stats(t *testing.T) {
	idx := NewIndex()
	idx.Paragraph(Coordinate{1, 1, 1}).SetSentences([]SentenceRecord{
		{Text: "A b.", Words: []string{"a", "b"}},
	})
	idx.Paragraph(Coordinate{1, 2, 1}).SetSentences([]SentenceRecord{
		{Text: "C.", Words: []string{"c"}},
		{Text: "D e f.", Words: []string{"d", "e", "f"}},
	})
	idx.Book(2)

	assert.Equal(t, Stats{Books: 2, Chapters: 2, Paragraphs: 2, Sentences: 3, Words: 6}, idx.Stats())
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "1/2/3", Coordinate{Book: 1, Chapter: 2, Paragraph: 3}.String())
}

func TestIndex_SentenceLookup(t *testing.T) {
	idx := NewIndex()
	at := Coordinate{Book: 1, Chapter: 2, Paragraph: 3}
	idx.Paragraph(at).SetSentences([]SentenceRecord{{Text: "Well, Prince.", Words: []string{"well", "prince"}}})

	s, ok := idx.Sentence(at, 1)
	require.True(t, ok)
	assert.Equal(t, "Well, Prince.", s.Text)

	_, ok = idx.Sentence(at, 2)
	assert.False(t, ok)
	_, ok = idx.Sentence(Coordinate{Book: 1, Chapter: 9, Paragraph: 3}, 1)
	assert.False(t, ok)
	_, ok = idx.Sentence(Coordinate{Book: 2, Chapter: 2, Paragraph: 3}, 1)
	assert.False(t, ok)

	assert.Len(t, idx.Books, 1, "lookup must not create books")
	assert.Len(t, idx.Books[0].Chapters, 1, "lookup must not create chapters")
}
