// ABOUTME: Shared test helpers for the storage package.
// ABOUTME: Creates throwaway SQLite databases in temp directories.
package storage

import (
	"path/filepath"
	"testing"

	"liftlog/internal/models"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "liftlog.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// mustInsert inserts an entry or fails the test.
func mustInsert(t *testing.T, db *DB, exercise string, sets, reps int, weight float64, date string) *models.WorkoutEntry {
	t.Helper()

	e := models.NewWorkoutEntry(exercise, sets, reps, weight).WithDate(date)
	if err := db.InsertEntry(e); err != nil {
		t.Fatalf("InsertEntry(%s) failed: %v", exercise, err)
	}
	return e
}
