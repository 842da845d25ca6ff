package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIndent(t *testing.T) {
	assert.Equal(t, 4, DefaultIndent)
}

func TestSettings_ZeroValue(t *testing.T) {
	var s Settings
	assert.Empty(t, s.Filters)
	assert.Empty(t, s.StorageDir)
	assert.Error(t, s.Thresholds.Validate())
}
