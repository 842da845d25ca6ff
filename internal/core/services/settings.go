package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/bookscan/internal/core/domain"
	"github.com/custodia-labs/bookscan/internal/core/ports/driven"
	"github.com/custodia-labs/bookscan/internal/core/ports/driving"
	"github.com/custodia-labs/bookscan/internal/postprocessors"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyHeaderBlankRun     = "scanner.header_blank_run"
	KeyBookBlankRun       = "scanner.book_blank_run"
	KeyChapterBlankRun    = "scanner.chapter_blank_run"
	KeyEndBlankRun        = "scanner.end_blank_run"
	KeyFilters            = "tokenizer.filters"
	KeyPunctuationSymbols = "tokenizer.punctuation.symbols"
	KeyIndent             = "output.indent"
	KeyStorageDir         = "storage.dir"
)

// intKeys are stored as integers; every other key is a string or list.
var intKeys = []string{KeyHeaderBlankRun, KeyBookBlankRun, KeyChapterBlankRun, KeyEndBlankRun, KeyIndent}

// SettingsService manages conversion settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get returns the configured settings over the defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	th, err := s.Thresholds()
	if err != nil {
		return nil, err
	}

	indent := domain.DefaultIndent
	if _, ok := s.configStore.Get(KeyIndent); ok {
		indent = s.configStore.GetInt(KeyIndent)
		if indent < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative, got %d", domain.ErrInvalidInput, KeyIndent, indent)
		}
	}

	return &domain.Settings{
		Thresholds:         th,
		Filters:            s.Filters(),
		PunctuationSymbols: s.configStore.GetString(KeyPunctuationSymbols),
		Indent:             indent,
		StorageDir:         s.configStore.GetString(KeyStorageDir),
	}, nil
}

// Thresholds returns the blank-line thresholds. Unset keys keep their
// defaults; a set key must hold a positive integer.
func (s *SettingsService) Thresholds() (domain.Thresholds, error) {
	th := domain.DefaultThresholds()
	s.overrideInt(KeyHeaderBlankRun, &th.HeaderBlankRun)
	s.overrideInt(KeyBookBlankRun, &th.BookBlankRun)
	s.overrideInt(KeyChapterBlankRun, &th.ChapterBlankRun)
	s.overrideInt(KeyEndBlankRun, &th.EndBlankRun)

	if err := th.Validate(); err != nil {
		return domain.Thresholds{}, fmt.Errorf("scanner settings: %w", err)
	}
	return th, nil
}

// Filters returns the configured token filter names, or the defaults.
func (s *SettingsService) Filters() []string {
	if names := s.configStore.GetStringSlice(KeyFilters); names != nil {
		return names
	}
	return slices.Clone(postprocessors.DefaultFilters)
}

// FilterConfig returns per-filter settings keyed by filter name.
func (s *SettingsService) FilterConfig() map[string]map[string]any {
	cfg := make(map[string]map[string]any)
	if symbols := s.configStore.GetString(KeyPunctuationSymbols); symbols != "" {
		cfg["punctuation"] = map[string]any{"symbols": symbols}
	}
	return cfg
}

// Set parses value for key and stores it.
// Integer keys must parse as integers; the filter list is comma-separated.
func (s *SettingsService) Set(key, value string) error {
	if !slices.Contains(s.Keys(), key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	switch {
	case slices.Contains(intKeys, key):
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
		}
		return s.configStore.Set(key, n)
	case key == KeyFilters:
		var names []string
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		return s.configStore.Set(key, names)
	default:
		return s.configStore.Set(key, value)
	}
}

// Keys lists the known setting keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		KeyHeaderBlankRun, KeyBookBlankRun, KeyChapterBlankRun, KeyEndBlankRun,
		KeyFilters, KeyPunctuationSymbols, KeyIndent, KeyStorageDir,
	}
	slices.Sort(keys)
	return keys
}

func (s *SettingsService) overrideInt(key string, dst *int) {
	if _, ok := s.configStore.Get(key); ok {
		*dst = s.configStore.GetInt(key)
	}
}
