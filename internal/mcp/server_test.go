// ABOUTME: Tests for MCP server and tool handlers.
// ABOUTME: Covers NewServer and the workout/template tools.
package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"liftlog/internal/models"
	"liftlog/internal/storage"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "liftlog.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestNewServer(t *testing.T) {
	db := setupTestDB(t)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	if server == nil {
		t.Fatal("expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("expected non-nil repo")
	}
}

func TestHandleLogWorkout(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, out, err := server.handleLogWorkout(ctx, nil, logWorkoutInput{
		Exercise: "Squat",
		Sets:     3,
		Reps:     5,
		Weight:   100,
		Date:     "2024-01-15",
	})
	if err != nil {
		t.Fatalf("handleLogWorkout failed: %v", err)
	}
	if out.ID == 0 {
		t.Error("expected assigned id")
	}

	got, err := db.GetEntry(out.ID)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.Exercise != "Squat" || got.Date != "2024-01-15" {
		t.Errorf("unexpected entry: %+v", got)
	}
}

func TestHandleLogWorkoutRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)

	_, _, err := server.handleLogWorkout(context.Background(), nil, logWorkoutInput{
		Exercise: "",
		Weight:   100,
	})
	if err == nil {
		t.Fatal("expected error for empty exercise")
	}
}

func TestHandleUpdateAndDeleteWorkout(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, out, err := server.handleLogWorkout(ctx, nil, logWorkoutInput{
		Exercise: "Squat", Sets: 3, Reps: 5, Weight: 100, Date: "2024-01-15",
	})
	if err != nil {
		t.Fatalf("handleLogWorkout failed: %v", err)
	}

	_, _, err = server.handleUpdateWorkout(ctx, nil, updateWorkoutInput{
		ID: out.ID, Exercise: "Squat", Sets: 5, Reps: 5, Weight: 110,
	})
	if err != nil {
		t.Fatalf("handleUpdateWorkout failed: %v", err)
	}

	got, _ := db.GetEntry(out.ID)
	if got.Weight != 110 {
		t.Errorf("Weight = %.1f, want 110", got.Weight)
	}

	if _, _, err := server.handleDeleteWorkout(ctx, nil, deleteWorkoutInput{ID: out.ID}); err != nil {
		t.Fatalf("handleDeleteWorkout failed: %v", err)
	}
	if _, err := db.GetEntry(out.ID); err == nil {
		t.Error("entry still present after delete")
	}

	_, _, err = server.handleUpdateWorkout(ctx, nil, updateWorkoutInput{
		ID: out.ID, Exercise: "Squat",
	})
	if err == nil {
		t.Error("expected error updating deleted entry")
	}
}

func TestHandlePersonalRecords(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	server.handleLogWorkout(ctx, nil, logWorkoutInput{Exercise: "Squat", Weight: 100, Date: "2024-01-01"})
	server.handleLogWorkout(ctx, nil, logWorkoutInput{Exercise: "Squat", Weight: 120, Date: "2024-02-01"})
	server.handleLogWorkout(ctx, nil, logWorkoutInput{Exercise: "Bench", Weight: 80, Date: "2024-01-01"})

	_, out, err := server.handlePersonalRecords(ctx, nil, personalRecordsInput{})
	if err != nil {
		t.Fatalf("handlePersonalRecords failed: %v", err)
	}

	prs, ok := out.([]*models.WorkoutEntry)
	if !ok {
		t.Fatalf("unexpected output type %T", out)
	}
	if len(prs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(prs))
	}
	if prs[0].Exercise != "Bench" || prs[0].Weight != 80 {
		t.Errorf("record[0] = %+v, want Bench@80", prs[0])
	}
	if prs[1].Exercise != "Squat" || prs[1].Weight != 120 {
		t.Errorf("record[1] = %+v, want Squat@120", prs[1])
	}
}
