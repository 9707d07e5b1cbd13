// ABOUTME: Static catalog of recognized exercise names.
// ABOUTME: Used to populate choice inputs in the web UI and CLI help.
package models

// ExerciseCatalog lists the exercises offered in choice inputs. Logging an
// exercise outside the catalog is still allowed; the list is a convenience,
// not a constraint.
var ExerciseCatalog = []string{
	"Squat",
	"Bench Press",
	"Deadlift",
	"Overhead Press",
	"Barbell Row",
	"Pull Up",
	"Dip",
	"Lunge",
	"Bicep Curl",
	"Tricep Extension",
	"Lat Pulldown",
	"Leg Press",
	"Calf Raise",
	"Plank",
}
