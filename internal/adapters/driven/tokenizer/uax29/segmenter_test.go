package uax29

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmenter_Words(t *testing.T) {
	got := New().Words("it was in july, 1805")
	assert.Equal(t, []string{"it", " ", "was", " ", "in", " ", "july", ",", " ", "1805"}, got)
}

func TestSegmenter_CoversInput(t *testing.T) {
	text := "well, prince, so genoa and lucca are now just family estates"
	assert.Equal(t, text, strings.Join(New().Words(text), ""))
}

func TestSegmenter_Empty(t *testing.T) {
	assert.Empty(t, New().Words(""))
}
