package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/classboard/internal/logger"
	"github.com/julianstephens/classboard/internal/models"
)

const settingsSchema = `CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteStore keeps the settings document as key/value rows, one row per
// top-level field and one per weekday schedule.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(settingsSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create settings table: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Load() models.Settings {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		logger.Info("Settings database not found, using defaults", "path", s.path)
		return models.DefaultSettings()
	}

	data, err := s.readAll()
	if err != nil {
		logger.Warn("Failed to read settings, using defaults", "path", s.path, "error", err)
		return models.DefaultSettings()
	}

	settings, err := models.MapToSettings(data)
	if err != nil {
		logger.Warn("Failed to parse settings, using defaults", "path", s.path, "error", err)
		return models.DefaultSettings()
	}

	models.ApplyDefaultSettings(&settings)
	return settings
}

func (s *SQLiteStore) readAll() (map[string]string, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		data[key] = value
	}
	return data, rows.Err()
}

func (s *SQLiteStore) Save(settings models.Settings) error {
	data, err := models.SettingsToMap(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Replace the whole document so removed weekdays or ranges do not linger
	if _, err := tx.Exec("DELETE FROM settings"); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := stmt.Exec(key, data[key]); err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settings: %w", err)
	}

	logger.Debug("Settings saved", "path", s.path)
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
