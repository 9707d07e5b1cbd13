// ABOUTME: Filter builds the conjunctive predicate for entry scans.
// ABOUTME: Absent criteria are omitted; dates are checked before comparison.
package storage

import (
	"liftlog/internal/models"
)

// AllExercises is the sentinel meaning "no exercise filter". An empty
// string means the same thing.
const AllExercises = "All"

// Filter holds optional criteria for listing entries. Zero value matches
// everything.
type Filter struct {
	Exercise string // "" or "All" disables the exercise criterion
	DateFrom string // inclusive lower bound, YYYY-MM-DD
	DateTo   string // inclusive upper bound, YYYY-MM-DD
}

// HasExercise reports whether a specific exercise is selected.
func (f Filter) HasExercise() bool {
	return f.Exercise != "" && f.Exercise != AllExercises
}

// Validate checks that supplied date bounds are well-formed. Bounds are
// compared lexicographically in SQL, so malformed dates must be rejected
// here rather than silently matching nothing sensible.
func (f Filter) Validate() error {
	if f.DateFrom != "" {
		if err := models.ValidateDate(f.DateFrom); err != nil {
			return err
		}
	}
	if f.DateTo != "" {
		if err := models.ValidateDate(f.DateTo); err != nil {
			return err
		}
	}
	return nil
}

// where assembles the WHERE conjunction and its arguments. Returns an
// empty clause when no criteria are set.
func (f Filter) where() (string, []any) {
	var clauses []string
	var args []any

	if f.HasExercise() {
		clauses = append(clauses, "exercise = ?")
		args = append(args, f.Exercise)
	}
	if f.DateFrom != "" {
		clauses = append(clauses, "date >= ?")
		args = append(args, f.DateFrom)
	}
	if f.DateTo != "" {
		clauses = append(clauses, "date <= ?")
		args = append(args, f.DateTo)
	}

	if len(clauses) == 0 {
		return "", nil
	}

	where := " WHERE " + clauses[0]
	for _, c := range clauses[1:] {
		where += " AND " + c
	}
	return where, args
}
