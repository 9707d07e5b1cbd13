// ABOUTME: Tests for filter predicate assembly.
// ABOUTME: Verifies the conjunction omits absent criteria.
package storage

import "testing"

func TestFilterWhere(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		want     string
		wantArgs int
	}{
		{"empty", Filter{}, "", 0},
		{"all sentinel", Filter{Exercise: "All"}, "", 0},
		{"exercise only", Filter{Exercise: "Squat"}, " WHERE exercise = ?", 1},
		{"from only", Filter{DateFrom: "2024-01-01"}, " WHERE date >= ?", 1},
		{"to only", Filter{DateTo: "2024-01-31"}, " WHERE date <= ?", 1},
		{
			"full conjunction",
			Filter{Exercise: "Squat", DateFrom: "2024-01-01", DateTo: "2024-01-31"},
			" WHERE exercise = ? AND date >= ? AND date <= ?",
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.where()
			if where != tt.want {
				t.Errorf("where = %q, want %q", where, tt.want)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestFilterHasExercise(t *testing.T) {
	if (Filter{}).HasExercise() {
		t.Error("empty filter must not select an exercise")
	}
	if (Filter{Exercise: "All"}).HasExercise() {
		t.Error("All sentinel must not select an exercise")
	}
	if !(Filter{Exercise: "Squat"}).HasExercise() {
		t.Error("Squat must count as a selected exercise")
	}
}
