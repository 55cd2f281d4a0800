package storage

import "github.com/julianstephens/classboard/internal/models"

// Provider loads and persists the widget settings document.
type Provider interface {
	// Load never fails: unreadable or corrupt documents yield defaults and
	// partial ones are merged with defaults field by field.
	Load() models.Settings
	// Save replaces the stored document. Callers log the error and carry on
	// with their in-memory settings.
	Save(models.Settings) error
	Close() error

	// Utils
	GetConfigPath() string
}
