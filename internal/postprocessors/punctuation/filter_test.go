package punctuation

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("default symbols", func(t *testing.T) {
		f := New()
		if f.symbols != DefaultSymbols {
			t.Errorf("expected default symbols, got %q", f.symbols)
		}
	})

	t.Run("custom symbols", func(t *testing.T) {
		f := New(WithSymbols(".,"))
		if f.symbols != ".," {
			t.Errorf("expected custom symbols, got %q", f.symbols)
		}
	})

	t.Run("empty symbols ignored", func(t *testing.T) {
		f := New(WithSymbols(""))
		if f.symbols != DefaultSymbols {
			t.Errorf("expected default symbols, got %q", f.symbols)
		}
	})
}

func TestFilter_Name(t *testing.T) {
	if New().Name() != "punctuation" {
		t.Errorf("unexpected name %q", New().Name())
	}
}

func TestFilter_IsPunctuation(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{",", true},
		{"...", true},
		{"``", true},
		{"''", true},
		{"--", true},
		{"?!", true},
		{"", false},
		{"word", false},
		{"don't", false},
		{"1805", false},
		{"a.", false},
	}

	f := New()
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := f.IsPunctuation(tt.token); got != tt.want {
				t.Errorf("IsPunctuation(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestFilter_Filter(t *testing.T) {
	got := New().Filter([]string{"well", ",", "prince", "!", "``"})
	want := []string{"well", "prince"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFilter_IsSymbol(t *testing.T) {
	f := New()
	if !f.IsSymbol('.') || f.IsSymbol('a') {
		t.Error("unexpected symbol classification")
	}
}
