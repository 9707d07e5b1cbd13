// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for workouts, templates, and template_exercises.
package storage

// initSchema creates or updates the database schema.
// AUTOINCREMENT keeps ids monotonic so a deleted id is never reused.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		exercise TEXT NOT NULL,
		sets INTEGER NOT NULL DEFAULT 0,
		reps INTEGER NOT NULL DEFAULT 0,
		weight REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS templates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS template_exercises (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		template_id INTEGER NOT NULL,
		exercise_name TEXT NOT NULL,
		FOREIGN KEY (template_id) REFERENCES templates(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date DESC, id DESC);
	CREATE INDEX IF NOT EXISTS idx_workouts_exercise ON workouts(exercise);
	CREATE INDEX IF NOT EXISTS idx_template_exercises_template ON template_exercises(template_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
