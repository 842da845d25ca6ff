// Package ascii maps Unicode text to a plain-ASCII approximation.
//
// Text is composed (NFC) with golang.org/x/text and then transliterated
// with github.com/mozillazg/go-unidecode, so accented Latin letters lose
// their marks and other scripts are spelled out ("Москва" becomes "Moskva").
package ascii

import (
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
)

// Ensure Transliterator implements the interface.
var _ driven.Transliterator = (*Transliterator)(nil)

// Transliterator converts text to ASCII.
type Transliterator struct{}

// New creates a transliterator.
func New() *Transliterator {
	return &Transliterator{}
}

// ToASCII returns the ASCII approximation of text.
func (t *Transliterator) ToASCII(text string) string {
	if isASCII(text) {
		return text
	}
	return unidecode.Unidecode(norm.NFC.String(text))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
