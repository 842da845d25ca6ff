// Package json serialises a document index as nested JSON objects.
//
// The output shape is
//
//	{"1": {"year": "1805", "1": {"1": {"1": {"sentence": "...", "1": "it", ...}}}}}
//
// where numeric keys are book, chapter, paragraph, sentence and word
// numbers written as canonical decimal strings in ascending order.
package json

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
)

// Reserved field names.
const (
	YearKey     = "year"
	SentenceKey = "sentence"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 4

// Ensure Writer implements the interface.
var _ driven.TreeWriter = (*Writer)(nil)

// Writer encodes an index as JSON.
type Writer struct {
	indent int
}

// Option configures the writer.
type Option func(*Writer)

// WithIndent sets the indent width. Zero writes compact JSON.
func WithIndent(n int) Option {
	return func(w *Writer) {
		if n >= 0 {
			w.indent = n
		}
	}
}

// New creates a JSON writer.
func New(opts ...Option) *Writer {
	w := &Writer{indent: DefaultIndent}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Extension returns ".json".
func (w *Writer) Extension() string {
	return ".json"
}

// Write encodes idx to out.
func (w *Writer) Write(ctx context.Context, idx *domain.Index, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if idx == nil {
		return fmt.Errorf("%w: nil index", domain.ErrInvalidInput)
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if w.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", w.indent))
	}
	if err := enc.Encode(Canonical(idx)); err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	return nil
}

// Field is one key/value pair of an Object.
type Field struct {
	Key   string
	Value any
}

// Object is a JSON object whose keys are written in slice order.
type Object []Field

// get returns the value stored under key.
func (o Object) get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the fields in order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Canonical converts idx to the ordered output tree.
func Canonical(idx *domain.Index) Object {
	books := make(Object, 0, len(idx.Books))
	for _, b := range idx.Books {
		book := make(Object, 0, len(b.Chapters)+1)
		book = append(book, Field{Key: YearKey, Value: b.Year})
		for _, c := range b.Chapters {
			book = append(book, Field{Key: key(c.Number), Value: chapterObject(c)})
		}
		books = append(books, Field{Key: key(b.Number), Value: book})
	}
	return books
}

func chapterObject(c *domain.Chapter) Object {
	chapter := make(Object, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		paragraph := make(Object, 0, len(p.Sentences))
		for _, s := range p.Sentences {
			paragraph = append(paragraph, Field{Key: key(s.Number), Value: sentenceObject(s)})
		}
		chapter = append(chapter, Field{Key: key(p.Number), Value: paragraph})
	}
	return chapter
}

func sentenceObject(s *domain.Sentence) Object {
	sentence := make(Object, 0, len(s.Words)+1)
	sentence = append(sentence, Field{Key: SentenceKey, Value: s.Text})
	for i, w := range s.Words {
		sentence = append(sentence, Field{Key: key(i + 1), Value: w})
	}
	return sentence
}

func key(n int) string {
	return strconv.Itoa(n)
}

// marshal encodes v without HTML escaping and without the trailing newline.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
