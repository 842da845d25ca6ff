package blank

import (
	"reflect"
	"testing"
)

func TestFilter_Name(t *testing.T) {
	if New().Name() != "blank" {
		t.Errorf("unexpected name %q", New().Name())
	}
}

func TestFilter_Filter(t *testing.T) {
	got := New().Filter([]string{"it", " ", "was", "\t", "", "\n", "july"})
	want := []string{"it", "was", "july"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFilter_FilterEmpty(t *testing.T) {
	if got := New().Filter(nil); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
}
