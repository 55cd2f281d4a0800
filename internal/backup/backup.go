package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/logger"
	"github.com/julianstephens/classboard/internal/storage"
)

const timestampFormat = "20060102-150405"

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
	counter   int
}

// Manager handles backups of one settings file. Backups live in a
// directory beside it and share its extension.
type Manager struct {
	settingsPath string
	backupDir    string
	suffix       string
	sqlite       bool
	now          func() time.Time
}

// NewManager creates a backup manager for the settings file at settingsPath.
func NewManager(settingsPath string) *Manager {
	suffix := filepath.Ext(settingsPath)
	if suffix == "" {
		suffix = ".json"
	}
	return &Manager{
		settingsPath: settingsPath,
		backupDir:    filepath.Join(filepath.Dir(settingsPath), constants.BackupDirName),
		suffix:       suffix,
		sqlite:       storage.IsSQLitePath(settingsPath),
		now:          time.Now,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup snapshots the settings file and rotates old backups.
func (m *Manager) CreateBackup() (string, error) {
	path, err := m.createBackup()
	if err != nil {
		return "", err
	}
	if err := m.rotateBackups(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) createBackup() (string, error) {
	if _, err := os.Stat(m.settingsPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("settings file does not exist: %s", m.settingsPath)
		}
		return "", fmt.Errorf("failed to stat settings file: %w", err)
	}

	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	backupPath, err := m.nextBackupPath()
	if err != nil {
		return "", err
	}

	if m.sqlite {
		err = vacuumInto(m.settingsPath, backupPath)
	} else {
		err = copyFile(m.settingsPath, backupPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up settings: %w", err)
	}

	logger.Debug("Created settings backup", "path", backupPath)
	return backupPath, nil
}

// nextBackupPath names a backup after the current second, adding a counter
// when that name is taken.
func (m *Manager) nextBackupPath() (string, error) {
	stamp := m.now().Format(timestampFormat)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+m.suffix)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		name := fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, counter, m.suffix)
		path = filepath.Join(m.backupDir, name)
	}
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []BackupInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		timestamp, counter, ok := m.parseName(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: timestamp,
			Size:      info.Size(),
			counter:   counter,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		if !backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Timestamp.After(backups[j].Timestamp)
		}
		return backups[i].counter > backups[j].counter
	})

	return backups, nil
}

// parseName accepts prefix + timestamp [+ "-N"] + suffix.
func (m *Manager) parseName(name string) (time.Time, int, bool) {
	rest, ok := strings.CutPrefix(name, constants.BackupFilePrefix)
	if !ok {
		return time.Time{}, 0, false
	}
	rest, ok = strings.CutSuffix(rest, m.suffix)
	if !ok {
		return time.Time{}, 0, false
	}

	counter := 0
	if len(rest) > len(timestampFormat) {
		n, err := strconv.Atoi(strings.TrimPrefix(rest[len(timestampFormat):], "-"))
		if err != nil || rest[len(timestampFormat)] != '-' {
			return time.Time{}, 0, false
		}
		counter = n
		rest = rest[:len(timestampFormat)]
	}

	timestamp, err := time.ParseInLocation(timestampFormat, rest, time.Local)
	if err != nil {
		return time.Time{}, 0, false
	}
	return timestamp, counter, true
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the settings file with backupPath. The current file,
// if any, is backed up first; its backup path is returned.
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if err := m.verifyBackup(backupPath); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var previous string
	if _, err := os.Stat(m.settingsPath); err == nil {
		// No rotation here: the backup being restored may be the oldest one.
		previous, err = m.createBackup()
		if err != nil {
			return "", fmt.Errorf("failed to back up current settings before restore: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(m.settingsPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create settings directory: %w", err)
	}

	tempPath := m.settingsPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.settingsPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tempPath, "error", removeErr)
		}
		return "", fmt.Errorf("failed to restore settings: %w", err)
	}

	logger.Info("Restored settings from backup", "backup", backupPath, "previous", previous)
	return previous, nil
}

func (m *Manager) verifyBackup(path string) error {
	if m.sqlite {
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return err
		}
		defer db.Close()

		var count int
		return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("not a JSON document")
	}
	return nil
}

// vacuumInto writes a compacted copy of the database at src to dst.
func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}
