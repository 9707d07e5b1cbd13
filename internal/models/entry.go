// ABOUTME: WorkoutEntry model for logged exercise sessions.
// ABOUTME: Validates exercise name, date format, and non-negative numbers.
package models

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date form used everywhere.
// Dates are compared lexicographically in the store, which only works
// because this layout is fixed-width.
const DateLayout = "2006-01-02"

// ErrValidation marks input that fails validation before it reaches
// the store: missing names, malformed dates, negative numbers.
var ErrValidation = errors.New("validation failed")

// WorkoutEntry represents one logged exercise session.
type WorkoutEntry struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Exercise string  `json:"exercise"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
}

// NewWorkoutEntry creates a new entry dated today.
func NewWorkoutEntry(exercise string, sets, reps int, weight float64) *WorkoutEntry {
	return &WorkoutEntry{
		Date:     time.Now().Format(DateLayout),
		Exercise: exercise,
		Sets:     sets,
		Reps:     reps,
		Weight:   weight,
	}
}

// WithDate sets a custom entry date.
func (e *WorkoutEntry) WithDate(date string) *WorkoutEntry {
	e.Date = date
	return e
}

// Validate checks required fields before the entry reaches the store.
func (e *WorkoutEntry) Validate() error {
	if e.Exercise == "" {
		return fmt.Errorf("%w: exercise name is required", ErrValidation)
	}
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if e.Sets < 0 {
		return fmt.Errorf("%w: sets must not be negative", ErrValidation)
	}
	if e.Reps < 0 {
		return fmt.Errorf("%w: reps must not be negative", ErrValidation)
	}
	if e.Weight < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrValidation)
	}
	return nil
}

// ValidateDate checks that date is a real calendar date in YYYY-MM-DD form.
func ValidateDate(date string) error {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return fmt.Errorf("%w: date %q is not in YYYY-MM-DD form", ErrValidation, date)
	}
	// time.Parse accepts some non-canonical forms; round-trip to be strict.
	if t.Format(DateLayout) != date {
		return fmt.Errorf("%w: date %q is not in YYYY-MM-DD form", ErrValidation, date)
	}
	return nil
}
