package driving

import "github.com/custodia-labs/bookscan/internal/core/domain"

// SettingsService reads and updates conversion settings.
type SettingsService interface {
	// Get returns the effective settings, defaults filled in.
	// Returns an error if a configured value is invalid.
	Get() (*domain.Settings, error)

	// Set stores a raw setting value under one of the known keys.
	Set(key, value string) error

	// Keys lists the known setting keys.
	Keys() []string
}
