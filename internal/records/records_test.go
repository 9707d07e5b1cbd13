// ABOUTME: Tests for personal-record aggregation.
// ABOUTME: Covers max selection, tie-breaks, and output ordering.
package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftlog/internal/models"
	"liftlog/internal/records"
)

func entry(id int64, exercise string, weight float64, date string) *models.WorkoutEntry {
	return &models.WorkoutEntry{ID: id, Exercise: exercise, Weight: weight, Date: date}
}

func TestPersonalEmpty(t *testing.T) {
	assert.Empty(t, records.Personal(nil))
	assert.Empty(t, records.Personal([]*models.WorkoutEntry{}))
}

func TestPersonalMaxWeightPerExercise(t *testing.T) {
	entries := []*models.WorkoutEntry{
		entry(1, "Squat", 100, "2024-01-01"),
		entry(2, "Squat", 120, "2024-02-01"),
		entry(3, "Bench", 80, "2024-01-01"),
	}

	got := records.Personal(entries)
	require.Len(t, got, 2)

	// Ordered by exercise name ascending.
	assert.Equal(t, "Bench", got[0].Exercise)
	assert.Equal(t, 80.0, got[0].Weight)
	assert.Equal(t, "Squat", got[1].Exercise)
	assert.Equal(t, 120.0, got[1].Weight)
}

func TestPersonalTieBreakLaterDate(t *testing.T) {
	entries := []*models.WorkoutEntry{
		entry(1, "Squat", 120, "2024-01-01"),
		entry(2, "Squat", 120, "2024-02-01"),
	}

	got := records.Personal(entries)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID, "tie on weight goes to the later date")

	// Order of input must not matter.
	got = records.Personal([]*models.WorkoutEntry{entries[1], entries[0]})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestPersonalTieBreakHigherID(t *testing.T) {
	entries := []*models.WorkoutEntry{
		entry(7, "Squat", 120, "2024-01-01"),
		entry(3, "Squat", 120, "2024-01-01"),
	}

	got := records.Personal(entries)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID, "same date falls back to the higher id")
}

func TestPersonalCaseSensitiveGrouping(t *testing.T) {
	entries := []*models.WorkoutEntry{
		entry(1, "squat", 100, "2024-01-01"),
		entry(2, "Squat", 90, "2024-01-01"),
	}

	got := records.Personal(entries)
	assert.Len(t, got, 2, "exercise grouping is case-sensitive")
}
