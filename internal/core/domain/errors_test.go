package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnidentifiableLine", ErrUnidentifiableLine},
		{"ErrMalformedInput", ErrMalformedInput},
		{"ErrIOFailure", ErrIOFailure},
		{"ErrTokenization", ErrTokenization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrMalformedInput, ErrUnidentifiableLine))
	assert.False(t, errors.Is(ErrIOFailure, ErrTokenization))
}

func TestScanError_Unwrap(t *testing.T) {
	err := NewScanError(ErrMalformedInput, "book", 12, "")

	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.NotErrorIs(t, err, ErrUnidentifiableLine)

	wrapped := fmt.Errorf("parsing body: %w", err)
	var scanErr *ScanError
	require.ErrorAs(t, wrapped, &scanErr)
	assert.Equal(t, 12, scanErr.Line)
	assert.Equal(t, "book", scanErr.State)
}

func TestScanError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *ScanError
		want string
	}{
		{
			name: "kind only",
			err:  NewScanError(ErrMalformedInput, "", 0, ""),
			want: "malformed input",
		},
		{
			name: "with state and line",
			err:  NewScanError(ErrMalformedInput, "header", 40, ""),
			want: "header: malformed input at line 40",
		},
		{
			name: "with offending text",
			err:  NewScanError(ErrUnidentifiableLine, "chapter", 7, "CHAPTER I"),
			want: `chapter: unidentifiable line at line 7: "CHAPTER I"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
