// ABOUTME: WorkoutEntry CRUD operations for SQLite storage.
// ABOUTME: Implements insert, update, delete, get, and filtered scans.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"liftlog/internal/models"
)

// InsertEntry stores a new workout entry and assigns its id.
func (d *DB) InsertEntry(e *models.WorkoutEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	res, err := d.db.Exec(`
		INSERT INTO workouts (date, exercise, sets, reps, weight)
		VALUES (?, ?, ?, ?, ?)`,
		e.Date, e.Exercise, e.Sets, e.Reps, e.Weight,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert entry id: %w", err)
	}
	e.ID = id
	return nil
}

// UpdateEntry replaces exercise, sets, reps, and weight of an existing
// entry. The date is immutable after creation and is never touched.
// Returns ErrNotFound when the id does not exist.
func (d *DB) UpdateEntry(e *models.WorkoutEntry) error {
	if e.Exercise == "" {
		return fmt.Errorf("%w: exercise name is required", models.ErrValidation)
	}
	if e.Sets < 0 || e.Reps < 0 || e.Weight < 0 {
		return fmt.Errorf("%w: sets, reps, and weight must not be negative", models.ErrValidation)
	}

	res, err := d.db.Exec(`
		UPDATE workouts SET exercise = ?, sets = ?, reps = ?, weight = ?
		WHERE id = ?`,
		e.Exercise, e.Sets, e.Reps, e.Weight, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEntry removes an entry. Deleting a nonexistent id is a no-op.
func (d *DB) DeleteEntry(id int64) error {
	if _, err := d.db.Exec("DELETE FROM workouts WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// GetEntry retrieves a single entry by id.
func (d *DB) GetEntry(id int64) (*models.WorkoutEntry, error) {
	row := d.db.QueryRow(`
		SELECT id, date, exercise, sets, reps, weight
		FROM workouts WHERE id = ?`, id)

	var e models.WorkoutEntry
	err := row.Scan(&e.ID, &e.Date, &e.Exercise, &e.Sets, &e.Reps, &e.Weight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan entry: %w", err)
	}
	return &e, nil
}

// ListEntries returns entries matching the filter, most recent first:
// date descending, ties broken by id descending.
func (d *DB) ListEntries(f Filter) ([]*models.WorkoutEntry, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	where, args := f.where()
	query := `
		SELECT id, date, exercise, sets, reps, weight
		FROM workouts` + where + `
		ORDER BY date DESC, id DESC`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]*models.WorkoutEntry, error) {
	var entries []*models.WorkoutEntry
	for rows.Next() {
		var e models.WorkoutEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Exercise, &e.Sets, &e.Reps, &e.Weight); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
