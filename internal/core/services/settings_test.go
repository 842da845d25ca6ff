package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bookscan/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bookscan/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultThresholds(), settings.Thresholds)
	assert.Equal(t, []string{"blank", "punctuation"}, settings.Filters)
	assert.Equal(t, domain.DefaultIndent, settings.Indent)
	assert.Empty(t, settings.StorageDir)
	assert.Empty(t, settings.PunctuationSymbols)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		KeyBookBlankRun:       int64(6),
		KeyEndBlankRun:        int64(12),
		KeyFilters:            []any{"blank"},
		KeyIndent:             int64(0),
		KeyStorageDir:         "/srv/bookscan",
		KeyPunctuationSymbols: ".,",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.Thresholds{
		HeaderBlankRun:  domain.DefaultHeaderBlankRun,
		BookBlankRun:    6,
		ChapterBlankRun: domain.DefaultChapterBlankRun,
		EndBlankRun:     12,
	}, settings.Thresholds)
	assert.Equal(t, []string{"blank"}, settings.Filters)
	assert.Equal(t, 0, settings.Indent)
	assert.Equal(t, "/srv/bookscan", settings.StorageDir)
	assert.Equal(t, ".,", settings.PunctuationSymbols)
}

func TestSettingsService_Get_InvalidThreshold(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"zero", 0},
		{"negative", -3},
		{"wrong type", "five"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore(map[string]any{KeyChapterBlankRun: tt.value})

			_, err := NewSettingsService(store).Get()

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Get_NegativeIndent(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{KeyIndent: -1})

	_, err := NewSettingsService(store).Get()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_Filters_ReturnsCopyOfDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	filters := service.Filters()
	filters[0] = "changed"

	assert.Equal(t, "blank", service.Filters()[0])
}

func TestSettingsService_FilterConfig(t *testing.T) {
	assert.Empty(t, NewSettingsService(memory.NewConfigStore()).FilterConfig())

	store := memory.NewConfigStore(map[string]any{KeyPunctuationSymbols: "!?"})
	cfg := NewSettingsService(store).FilterConfig()
	assert.Equal(t, map[string]map[string]any{"punctuation": {"symbols": "!?"}}, cfg)
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.Set(KeyBookBlankRun, " 7 "))
	require.NoError(t, service.Set(KeyFilters, "blank, punctuation,"))
	require.NoError(t, service.Set(KeyStorageDir, "/data"))

	assert.Equal(t, 7, store.GetInt(KeyBookBlankRun))
	assert.Equal(t, []string{"blank", "punctuation"}, store.GetStringSlice(KeyFilters))
	assert.Equal(t, "/data", store.GetString(KeyStorageDir))
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, service.Set("search.mode", "x"), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Set(KeyIndent, "wide"), domain.ErrInvalidInput)
}

func TestSettingsService_Keys(t *testing.T) {
	keys := NewSettingsService(memory.NewConfigStore()).Keys()

	assert.Len(t, keys, 8)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, KeyHeaderBlankRun)
}
