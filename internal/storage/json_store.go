package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/classboard/internal/logger"
	"github.com/julianstephens/classboard/internal/models"
)

type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Load() models.Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("Settings file not found, using defaults", "path", s.path)
		} else {
			logger.Warn("Failed to read settings, using defaults", "path", s.path, "error", err)
		}
		return models.DefaultSettings()
	}

	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Warn("Failed to parse settings, using defaults", "path", s.path, "error", err)
		return models.DefaultSettings()
	}

	models.ApplyDefaultSettings(&settings)
	return settings
}

func (s *JSONStore) Save(settings models.Settings) error {
	data, err := encodeSettings(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := writeFileAtomic(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	logger.Debug("Settings saved", "path", s.path)
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// encodeSettings renders the document with two-space indentation and
// literal (unescaped) non-ASCII labels. Struct fields keep declaration order
// and map keys are sorted, so output is stable.
func encodeSettings(settings models.Settings) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(models.Normalize(settings)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to a temporary file beside path and renames it
// into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tempPath := tmp.Name()

	cleanup := func() {
		if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warn("Failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		cleanup()
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
