// ABOUTME: Personal-record aggregation over a set of workout entries.
// ABOUTME: Picks the max-weight entry per exercise with a fixed tie-break.
package records

import (
	"sort"

	"liftlog/internal/models"
)

// Personal returns one record per distinct exercise name: the entry with
// the maximum weight. Ties on weight go to the more recent date, then to
// the higher id, so the result is deterministic. Records are ordered by
// exercise name ascending. Exercise names are matched case-sensitively.
func Personal(entries []*models.WorkoutEntry) []*models.WorkoutEntry {
	best := make(map[string]*models.WorkoutEntry)
	for _, e := range entries {
		cur, ok := best[e.Exercise]
		if !ok || beats(e, cur) {
			best[e.Exercise] = e
		}
	}

	result := make([]*models.WorkoutEntry, 0, len(best))
	for _, e := range best {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Exercise < result[j].Exercise
	})
	return result
}

// beats reports whether a replaces b as the record for their exercise.
// Dates compare lexicographically, which is correct for YYYY-MM-DD.
func beats(a, b *models.WorkoutEntry) bool {
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	return a.ID > b.ID
}
