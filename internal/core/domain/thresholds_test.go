package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, 10, th.HeaderBlankRun)
	assert.Equal(t, 5, th.BookBlankRun)
	assert.Equal(t, 1, th.ChapterBlankRun)
	assert.Equal(t, 8, th.EndBlankRun)
	assert.NoError(t, th.Validate())
}

func TestThresholds_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Thresholds)
	}{
		{"zero header", func(th *Thresholds) { th.HeaderBlankRun = 0 }},
		{"negative book", func(th *Thresholds) { th.BookBlankRun = -1 }},
		{"zero chapter", func(th *Thresholds) { th.ChapterBlankRun = 0 }},
		{"zero end", func(th *Thresholds) { th.EndBlankRun = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := DefaultThresholds()
			tt.modify(&th)
			assert.ErrorIs(t, th.Validate(), ErrInvalidInput)
		})
	}
}

func TestLineRange_Len(t *testing.T) {
	assert.Equal(t, 3, LineRange{Start: 2, End: 5}.Len())
	assert.Equal(t, 0, LineRange{Start: 5, End: 5}.Len())
	assert.Equal(t, 0, LineRange{Start: 5, End: 2}.Len())
}
