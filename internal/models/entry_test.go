// ABOUTME: Tests for WorkoutEntry validation.
// ABOUTME: Covers required fields, date format, and negative values.
package models

import (
	"errors"
	"testing"
	"time"
)

func TestNewWorkoutEntry(t *testing.T) {
	e := NewWorkoutEntry("Squat", 3, 5, 100)

	if e.Exercise != "Squat" {
		t.Errorf("Exercise = %s, want Squat", e.Exercise)
	}
	if e.Sets != 3 || e.Reps != 5 || e.Weight != 100 {
		t.Errorf("unexpected numbers: %d/%d/%.1f", e.Sets, e.Reps, e.Weight)
	}
	if e.Date != time.Now().Format(DateLayout) {
		t.Errorf("Date = %s, want today", e.Date)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestValidateRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry *WorkoutEntry
	}{
		{"empty exercise", NewWorkoutEntry("", 3, 5, 100)},
		{"negative sets", NewWorkoutEntry("Squat", -1, 5, 100)},
		{"negative reps", NewWorkoutEntry("Squat", 3, -1, 100)},
		{"negative weight", NewWorkoutEntry("Squat", 3, 5, -100)},
		{"bad date", NewWorkoutEntry("Squat", 3, 5, 100).WithDate("01/02/2024")},
		{"non-padded date", NewWorkoutEntry("Squat", 3, 5, 100).WithDate("2024-1-2")},
		{"impossible date", NewWorkoutEntry("Squat", 3, 5, 100).WithDate("2024-13-40")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("error %v is not ErrValidation", err)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2024-02-29"); err != nil {
		t.Errorf("leap day rejected: %v", err)
	}
	if err := ValidateDate("2023-02-29"); err == nil {
		t.Error("non-leap Feb 29 accepted")
	}
}
