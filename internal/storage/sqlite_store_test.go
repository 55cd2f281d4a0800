package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/models"
)

func setupSQLiteStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.db")
	store := NewSQLiteStore(path)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestSQLiteStoreLoadMissing(t *testing.T) {
	store, path := setupSQLiteStore(t)

	got := store.Load()
	if !reflect.DeepEqual(got, models.DefaultSettings()) {
		t.Errorf("expected defaults, got %+v", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load should not create the database")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, _ := setupSQLiteStore(t)

	want := models.DefaultSettings()
	want.Transparency = 0.45
	want.TopmostTimeRanges = []models.TimeRange{{Start: "13:00", End: "13:30"}}
	want.Schedules["Thursday"] = []string{"英语", ""}

	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Reopen to make sure nothing is served from memory
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got := store.Load()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestSQLiteStoreMergesMissingRows(t *testing.T) {
	store, _ := setupSQLiteStore(t)

	if err := store.Save(models.DefaultSettings()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.db.Exec("DELETE FROM settings WHERE key IN (?, ?)",
		constants.SettingTopmostTimeRanges, models.ScheduleKey("Friday")); err != nil {
		t.Fatalf("failed to delete rows: %v", err)
	}
	if _, err := store.db.Exec("UPDATE settings SET value = ? WHERE key = ?",
		`["only"]`, models.ScheduleKey("Monday")); err != nil {
		t.Fatalf("failed to update row: %v", err)
	}

	got := store.Load()
	if !reflect.DeepEqual(got.TopmostTimeRanges, models.DefaultTimeRanges()) {
		t.Errorf("ranges should be backfilled, got %+v", got.TopmostTimeRanges)
	}
	if !reflect.DeepEqual(got.Schedules["Friday"], models.DefaultPeriods()) {
		t.Errorf("Friday should be backfilled, got %v", got.Schedules["Friday"])
	}
	if !reflect.DeepEqual(got.Schedules["Monday"], []string{"only"}) {
		t.Errorf("Monday = %v", got.Schedules["Monday"])
	}
}

func TestSQLiteStoreCorruptValue(t *testing.T) {
	store, _ := setupSQLiteStore(t)

	if err := store.Save(models.DefaultSettings()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.db.Exec("UPDATE settings SET value = 'nope' WHERE key = ?",
		constants.SettingTransparency); err != nil {
		t.Fatalf("failed to corrupt row: %v", err)
	}

	assertComplete(t, store.Load())
}

func TestSQLiteStoreNotADatabase(t *testing.T) {
	store, path := setupSQLiteStore(t)
	writeFile(t, path, "this is not sqlite")

	assertComplete(t, store.Load())
}
