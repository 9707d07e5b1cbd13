// ABOUTME: Template and TemplateExercise models for reusable workouts.
// ABOUTME: A template owns an ordered set of exercise names.
package models

// Template is a named, reusable set of exercises for quick batch logging.
type Template struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Exercises []TemplateExercise `json:"exercises"`
}

// TemplateExercise is one exercise member of a template. Duplicate names
// within one template are allowed; each expands to its own entry.
type TemplateExercise struct {
	ID           int64  `json:"id"`
	TemplateID   int64  `json:"templateId"`
	ExerciseName string `json:"exerciseName"`
}
