// ABOUTME: Template CRUD and expansion for SQLite storage.
// ABOUTME: Expansion inserts zero-valued entries in one transaction.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"liftlog/internal/models"
)

// CreateTemplate stores a new named template. Names are unique; an
// existing name yields ErrDuplicateName so each caller can decide
// whether to surface or swallow it.
func (d *DB) CreateTemplate(name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: template name is required", models.ErrValidation)
	}

	var existing int64
	err := d.db.QueryRow("SELECT id FROM templates WHERE name = ?", name).Scan(&existing)
	if err == nil {
		return 0, ErrDuplicateName
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("check template name: %w", err)
	}

	res, err := d.db.Exec("INSERT INTO templates (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("create template: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create template id: %w", err)
	}
	return id, nil
}

// AddTemplateExercise appends an exercise member to a template.
// Duplicate exercise names within one template are allowed.
func (d *DB) AddTemplateExercise(templateID int64, exerciseName string) (int64, error) {
	if exerciseName == "" {
		return 0, fmt.Errorf("%w: exercise name is required", models.ErrValidation)
	}
	if err := d.templateExists(templateID); err != nil {
		return 0, err
	}

	res, err := d.db.Exec(`
		INSERT INTO template_exercises (template_id, exercise_name)
		VALUES (?, ?)`, templateID, exerciseName)
	if err != nil {
		return 0, fmt.Errorf("add template exercise: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add template exercise id: %w", err)
	}
	return id, nil
}

// DeleteTemplate removes a template. Members go with it via ON DELETE
// CASCADE. Deleting a nonexistent id is a no-op.
func (d *DB) DeleteTemplate(id int64) error {
	if _, err := d.db.Exec("DELETE FROM templates WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

// DeleteTemplateExercise removes a single template member.
func (d *DB) DeleteTemplateExercise(id int64) error {
	if _, err := d.db.Exec("DELETE FROM template_exercises WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete template exercise: %w", err)
	}
	return nil
}

// ListTemplates returns all templates sorted by name ascending, each
// with its members sorted by exercise name ascending.
func (d *DB) ListTemplates() ([]*models.Template, error) {
	rows, err := d.db.Query("SELECT id, name FROM templates ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []*models.Template
	byID := make(map[int64]*models.Template)
	for rows.Next() {
		var t models.Template
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, &t)
		byID[t.ID] = &t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	memberRows, err := d.db.Query(`
		SELECT id, template_id, exercise_name
		FROM template_exercises
		ORDER BY exercise_name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list template exercises: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var te models.TemplateExercise
		if err := memberRows.Scan(&te.ID, &te.TemplateID, &te.ExerciseName); err != nil {
			return nil, fmt.Errorf("scan template exercise: %w", err)
		}
		if t, ok := byID[te.TemplateID]; ok {
			t.Exercises = append(t.Exercises, te)
		}
	}
	return templates, memberRows.Err()
}

// GetTemplate retrieves one template with its members.
func (d *DB) GetTemplate(id int64) (*models.Template, error) {
	var t models.Template
	err := d.db.QueryRow("SELECT id, name FROM templates WHERE id = ?", id).
		Scan(&t.ID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan template: %w", err)
	}

	rows, err := d.db.Query(`
		SELECT id, template_id, exercise_name
		FROM template_exercises
		WHERE template_id = ?
		ORDER BY id ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("get template exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var te models.TemplateExercise
		if err := rows.Scan(&te.ID, &te.TemplateID, &te.ExerciseName); err != nil {
			return nil, fmt.Errorf("scan template exercise: %w", err)
		}
		t.Exercises = append(t.Exercises, te)
	}
	return &t, rows.Err()
}

// ExpandTemplate inserts one zero-valued entry per template member,
// all dated with the supplied date, inside a single transaction so a
// failure mid-expansion leaves nothing behind. Returns ErrNotFound for
// a missing template and ErrEmptyTemplate when it has no members.
func (d *DB) ExpandTemplate(templateID int64, date string) ([]*models.WorkoutEntry, error) {
	if err := models.ValidateDate(date); err != nil {
		return nil, err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin expand: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var name string
	err = tx.QueryRow("SELECT name FROM templates WHERE id = ?", templateID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("expand template: %w", err)
	}

	rows, err := tx.Query(`
		SELECT exercise_name FROM template_exercises
		WHERE template_id = ?
		ORDER BY id ASC`, templateID)
	if err != nil {
		return nil, fmt.Errorf("expand template members: %w", err)
	}

	var exercises []string
	for rows.Next() {
		var ex string
		if err := rows.Scan(&ex); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan template member: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(exercises) == 0 {
		return nil, ErrEmptyTemplate
	}

	var entries []*models.WorkoutEntry
	for _, ex := range exercises {
		res, err := tx.Exec(`
			INSERT INTO workouts (date, exercise, sets, reps, weight)
			VALUES (?, ?, 0, 0, 0)`, date, ex)
		if err != nil {
			return nil, fmt.Errorf("expand insert %q: %w", ex, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("expand insert id: %w", err)
		}
		entries = append(entries, &models.WorkoutEntry{
			ID:       id,
			Date:     date,
			Exercise: ex,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit expand: %w", err)
	}
	return entries, nil
}

func (d *DB) templateExists(id int64) error {
	var found int64
	err := d.db.QueryRow("SELECT id FROM templates WHERE id = ?", id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check template: %w", err)
	}
	return nil
}
