// ABOUTME: Repository interface for workout-log storage.
// ABOUTME: Defines the contract for entries, templates, and expansion.
package storage

import "liftlog/internal/models"

// Repository defines the storage interface for workout data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Entry operations
	InsertEntry(e *models.WorkoutEntry) error
	UpdateEntry(e *models.WorkoutEntry) error
	DeleteEntry(id int64) error
	GetEntry(id int64) (*models.WorkoutEntry, error)
	ListEntries(f Filter) ([]*models.WorkoutEntry, error)

	// Template operations
	CreateTemplate(name string) (int64, error)
	AddTemplateExercise(templateID int64, exerciseName string) (int64, error)
	DeleteTemplate(id int64) error
	DeleteTemplateExercise(id int64) error
	ListTemplates() ([]*models.Template, error)
	GetTemplate(id int64) (*models.Template, error)
	ExpandTemplate(templateID int64, date string) ([]*models.WorkoutEntry, error)

	// Lifecycle
	Close() error
}

var _ Repository = (*DB)(nil)
