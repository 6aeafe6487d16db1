// ABOUTME: Daily record merger: field-wise upsert of per-source readings.
// ABOUTME: One daily_summary row per date; absent fields never clobber.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/peteebot/pete/internal/models"
)

const summaryColumns = `summary_date, weight_kg, body_fat_pct, muscle_mass_kg, water_pct,
	steps, exercise_minutes, calories_active, calories_resting, stand_minutes, distance_m,
	hr_resting, hr_avg, hr_max, hr_min,
	sleep_total_minutes, sleep_asleep_minutes, sleep_rem_minutes,
	sleep_deep_minutes, sleep_core_minutes, sleep_awake_minutes,
	created_at, updated_at`

// MergeDaily merges one source's sparse reading into daily_summary.
// Only fields present in the reading are written; existing values for
// absent fields are kept (COALESCE on the excluded row). Re-delivery of
// the same field overwrites: last write wins per field.
func (d *DB) MergeDaily(reading *models.DailyReading) error {
	if !reading.Source.Valid() {
		return fmt.Errorf("%w: unknown source %q", ErrValidation, reading.Source)
	}
	day, err := models.ParseDate(reading.Date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := reading.Vitals.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	tx, err := d.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := mergeDailyTx(tx, day, &reading.Vitals); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("merge daily summary: %w", err)
	}
	return nil
}

// MergeDailyBatch merges several readings in one transaction. Validation
// runs up front so a bad reading rejects the whole batch before any write.
func (d *DB) MergeDailyBatch(readings []*models.DailyReading) error {
	days := make([]time.Time, len(readings))
	for i, r := range readings {
		if !r.Source.Valid() {
			return fmt.Errorf("%w: reading %d: unknown source %q", ErrValidation, i, r.Source)
		}
		day, err := models.ParseDate(r.Date)
		if err != nil {
			return fmt.Errorf("%w: reading %d: %v", ErrValidation, i, err)
		}
		if err := r.Vitals.Validate(); err != nil {
			return fmt.Errorf("%w: reading %d: %v", ErrValidation, i, err)
		}
		days[i] = day
	}

	tx, err := d.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, r := range readings {
		if err := mergeDailyTx(tx, days[i], &r.Vitals); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("merge daily batch: %w", err)
	}
	return nil
}

func mergeDailyTx(tx *sql.Tx, day time.Time, v *models.Vitals) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `
		INSERT INTO daily_summary (` + summaryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(summary_date) DO UPDATE SET
			weight_kg = COALESCE(excluded.weight_kg, daily_summary.weight_kg),
			body_fat_pct = COALESCE(excluded.body_fat_pct, daily_summary.body_fat_pct),
			muscle_mass_kg = COALESCE(excluded.muscle_mass_kg, daily_summary.muscle_mass_kg),
			water_pct = COALESCE(excluded.water_pct, daily_summary.water_pct),
			steps = COALESCE(excluded.steps, daily_summary.steps),
			exercise_minutes = COALESCE(excluded.exercise_minutes, daily_summary.exercise_minutes),
			calories_active = COALESCE(excluded.calories_active, daily_summary.calories_active),
			calories_resting = COALESCE(excluded.calories_resting, daily_summary.calories_resting),
			stand_minutes = COALESCE(excluded.stand_minutes, daily_summary.stand_minutes),
			distance_m = COALESCE(excluded.distance_m, daily_summary.distance_m),
			hr_resting = COALESCE(excluded.hr_resting, daily_summary.hr_resting),
			hr_avg = COALESCE(excluded.hr_avg, daily_summary.hr_avg),
			hr_max = COALESCE(excluded.hr_max, daily_summary.hr_max),
			hr_min = COALESCE(excluded.hr_min, daily_summary.hr_min),
			sleep_total_minutes = COALESCE(excluded.sleep_total_minutes, daily_summary.sleep_total_minutes),
			sleep_asleep_minutes = COALESCE(excluded.sleep_asleep_minutes, daily_summary.sleep_asleep_minutes),
			sleep_rem_minutes = COALESCE(excluded.sleep_rem_minutes, daily_summary.sleep_rem_minutes),
			sleep_deep_minutes = COALESCE(excluded.sleep_deep_minutes, daily_summary.sleep_deep_minutes),
			sleep_core_minutes = COALESCE(excluded.sleep_core_minutes, daily_summary.sleep_core_minutes),
			sleep_awake_minutes = COALESCE(excluded.sleep_awake_minutes, daily_summary.sleep_awake_minutes),
			updated_at = excluded.updated_at
	`
	_, err := tx.Exec(query,
		day.Format(models.DateFormat),
		v.WeightKg, v.BodyFatPct, v.MuscleMassKg, v.WaterPct,
		v.Steps, v.ExerciseMinutes, v.CaloriesActive, v.CaloriesResting, v.StandMinutes, v.DistanceM,
		v.HRResting, v.HRAvg, v.HRMax, v.HRMin,
		v.SleepTotalMin, v.SleepAsleepMin, v.SleepRemMin, v.SleepDeepMin, v.SleepCoreMin, v.SleepAwakeMin,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert daily summary %s: %w", day.Format(models.DateFormat), err)
	}
	return nil
}

// ensureSummaryRowTx creates a bare daily_summary row if none exists.
func ensureSummaryRowTx(tx *sql.Tx, day time.Time) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := tx.Exec(`
		INSERT INTO daily_summary (summary_date, created_at, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(summary_date) DO NOTHING`,
		day.Format(models.DateFormat), now, now,
	)
	if err != nil {
		return fmt.Errorf("ensure summary row %s: %w", day.Format(models.DateFormat), err)
	}
	return nil
}

// GetSummary returns the merged row for one date.
func (d *DB) GetSummary(day time.Time) (*models.DailySummary, error) {
	row := d.db.QueryRow(`SELECT `+summaryColumns+` FROM daily_summary WHERE summary_date = ?`,
		day.Format(models.DateFormat))
	s, err := scanSummary(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no summary for %s", ErrNotFound, day.Format(models.DateFormat))
		}
		return nil, err
	}
	return s, nil
}

// ListSummaries returns rows in [from, to], ascending by date.
func (d *DB) ListSummaries(from, to time.Time) ([]*models.DailySummary, error) {
	rows, err := d.db.Query(`
		SELECT `+summaryColumns+` FROM daily_summary
		WHERE summary_date BETWEEN ? AND ?
		ORDER BY summary_date ASC`,
		from.Format(models.DateFormat), to.Format(models.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// RecentSummaries returns the last n rows ending at the given date,
// ascending. Used as the deriver's trailing window.
func (d *DB) RecentSummaries(end time.Time, n int) ([]*models.DailySummary, error) {
	rows, err := d.db.Query(`
		SELECT `+summaryColumns+` FROM daily_summary
		WHERE summary_date <= ?
		ORDER BY summary_date DESC
		LIMIT ?`,
		end.Format(models.DateFormat), n)
	if err != nil {
		return nil, fmt.Errorf("recent summaries: %w", err)
	}
	defer rows.Close()

	out, err := scanSummaries(rows)
	if err != nil {
		return nil, err
	}
	// Reverse to ascending order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// DeleteSummary removes a date's row. Strength log rows for the date go
// with it via the foreign key cascade.
func (d *DB) DeleteSummary(day time.Time) error {
	result, err := d.db.Exec(`DELETE FROM daily_summary WHERE summary_date = ?`,
		day.Format(models.DateFormat))
	if err != nil {
		return fmt.Errorf("delete summary: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete summary: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: no summary for %s", ErrNotFound, day.Format(models.DateFormat))
	}
	return nil
}

func scanSummary(scan func(dest ...any) error) (*models.DailySummary, error) {
	var s models.DailySummary
	var dateStr, createdAt, updatedAt string
	var weight, fat, muscle, water sql.NullFloat64
	ints := make([]sql.NullInt64, 16)

	dest := []any{&dateStr, &weight, &fat, &muscle, &water}
	for i := range ints {
		dest = append(dest, &ints[i])
	}
	dest = append(dest, &createdAt, &updatedAt)

	if err := scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan summary: %w", err)
	}

	s.Date, _ = time.Parse(models.DateFormat, dateStr)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	setF := func(dst **float64, v sql.NullFloat64) {
		if v.Valid {
			f := v.Float64
			*dst = &f
		}
	}
	setF(&s.WeightKg, weight)
	setF(&s.BodyFatPct, fat)
	setF(&s.MuscleMassKg, muscle)
	setF(&s.WaterPct, water)

	intFields := []**int{
		&s.Steps, &s.ExerciseMinutes, &s.CaloriesActive, &s.CaloriesResting,
		&s.StandMinutes, &s.DistanceM,
		&s.HRResting, &s.HRAvg, &s.HRMax, &s.HRMin,
		&s.SleepTotalMin, &s.SleepAsleepMin, &s.SleepRemMin,
		&s.SleepDeepMin, &s.SleepCoreMin, &s.SleepAwakeMin,
	}
	for i, dst := range intFields {
		if ints[i].Valid {
			n := int(ints[i].Int64)
			*dst = &n
		}
	}

	return &s, nil
}

func scanSummaries(rows *sql.Rows) ([]*models.DailySummary, error) {
	var out []*models.DailySummary
	for rows.Next() {
		s, err := scanSummary(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
