// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Daily fact table, exercise catalog dimensions, strength log, plans.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS daily_summary (
		summary_date TEXT PRIMARY KEY,
		weight_kg REAL,
		body_fat_pct REAL,
		muscle_mass_kg REAL,
		water_pct REAL,
		steps INTEGER,
		exercise_minutes INTEGER,
		calories_active INTEGER,
		calories_resting INTEGER,
		stand_minutes INTEGER,
		distance_m INTEGER,
		hr_resting INTEGER,
		hr_avg INTEGER,
		hr_max INTEGER,
		hr_min INTEGER,
		sleep_total_minutes INTEGER,
		sleep_asleep_minutes INTEGER,
		sleep_rem_minutes INTEGER,
		sleep_deep_minutes INTEGER,
		sleep_core_minutes INTEGER,
		sleep_awake_minutes INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS equipment (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS muscles (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		name_en TEXT,
		is_front INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY,
		uuid TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT,
		category_id INTEGER NOT NULL,
		FOREIGN KEY (category_id) REFERENCES categories(id)
	);

	CREATE TABLE IF NOT EXISTS exercise_equipment (
		exercise_id INTEGER NOT NULL,
		equipment_id INTEGER NOT NULL,
		PRIMARY KEY (exercise_id, equipment_id),
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE,
		FOREIGN KEY (equipment_id) REFERENCES equipment(id)
	);

	CREATE TABLE IF NOT EXISTS exercise_muscle_primary (
		exercise_id INTEGER NOT NULL,
		muscle_id INTEGER NOT NULL,
		PRIMARY KEY (exercise_id, muscle_id),
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE,
		FOREIGN KEY (muscle_id) REFERENCES muscles(id)
	);

	CREATE TABLE IF NOT EXISTS exercise_muscle_secondary (
		exercise_id INTEGER NOT NULL,
		muscle_id INTEGER NOT NULL,
		PRIMARY KEY (exercise_id, muscle_id),
		FOREIGN KEY (exercise_id) REFERENCES exercises(id) ON DELETE CASCADE,
		FOREIGN KEY (muscle_id) REFERENCES muscles(id)
	);

	CREATE TABLE IF NOT EXISTS strength_log (
		id TEXT PRIMARY KEY,
		summary_date TEXT NOT NULL,
		exercise_id INTEGER NOT NULL,
		reps INTEGER NOT NULL,
		weight_kg REAL NOT NULL,
		rir REAL,
		source_entry_id TEXT UNIQUE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (summary_date) REFERENCES daily_summary(summary_date) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises(id)
	);

	CREATE TABLE IF NOT EXISTS training_plans (
		id TEXT PRIMARY KEY,
		start_date TEXT NOT NULL,
		document TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		superseded_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS body_age_log (
		summary_date TEXT PRIMARY KEY,
		body_age_years REAL NOT NULL,
		delta_years REAL NOT NULL,
		composite REAL NOT NULL,
		crf REAL,
		body_comp REAL,
		activity REAL,
		recovery REAL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_strength_log_date ON strength_log(summary_date);
	CREATE INDEX IF NOT EXISTS idx_strength_log_exercise ON strength_log(exercise_id, summary_date);
	CREATE INDEX IF NOT EXISTS idx_exercises_category ON exercises(category_id);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_training_plans_active
		ON training_plans(start_date) WHERE superseded_at IS NULL;
	`

	_, err := d.db.Exec(schema)
	return err
}
