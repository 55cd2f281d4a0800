package storage

import (
	"path/filepath"
	"strings"
)

// New picks a provider from the config path extension: ".db" selects the
// SQLite store, anything else the JSON document.
func New(configPath string) Provider {
	if IsSQLitePath(configPath) {
		return NewSQLiteStore(configPath)
	}
	return NewJSONStore(configPath)
}

// IsSQLitePath reports whether path names an SQLite settings database.
func IsSQLitePath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".db")
}
