// ABOUTME: Body age history: append-only score log keyed by date.
// ABOUTME: Past scores change only through an explicit recompute.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/peteebot/pete/internal/models"
)

// RecordBodyAge appends a derived score to the history. A date that
// already has a score is rejected unless recompute is set.
func (d *DB) RecordBodyAge(entry *models.BodyAgeEntry, recompute bool) error {
	dateStr := entry.Date.Format(models.DateFormat)
	now := time.Now().UTC().Format(time.RFC3339)

	if !recompute {
		var one int
		err := d.db.QueryRow(`SELECT 1 FROM body_age_log WHERE summary_date = ?`, dateStr).Scan(&one)
		if err == nil {
			return fmt.Errorf("%w: body age already recorded for %s", ErrConflict, dateStr)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check body age: %w", err)
		}
	}

	_, err := d.db.Exec(`
		INSERT INTO body_age_log (summary_date, body_age_years, delta_years, composite,
			crf, body_comp, activity, recovery, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(summary_date) DO UPDATE SET
			body_age_years = excluded.body_age_years,
			delta_years = excluded.delta_years,
			composite = excluded.composite,
			crf = excluded.crf,
			body_comp = excluded.body_comp,
			activity = excluded.activity,
			recovery = excluded.recovery`,
		dateStr, entry.BodyAgeYears, entry.DeltaYears, entry.Composite,
		entry.CRF, entry.BodyComp, entry.Activity, entry.Recovery, now)
	if err != nil {
		return fmt.Errorf("record body age: %w", err)
	}
	return nil
}

// BodyAgeHistory returns every recorded score, ascending by date.
func (d *DB) BodyAgeHistory() ([]*models.BodyAgeEntry, error) {
	rows, err := d.db.Query(`
		SELECT summary_date, body_age_years, delta_years, composite,
			crf, body_comp, activity, recovery, created_at
		FROM body_age_log
		ORDER BY summary_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("body age history: %w", err)
	}
	defer rows.Close()

	var out []*models.BodyAgeEntry
	for rows.Next() {
		var e models.BodyAgeEntry
		var dateStr, createdAt string
		var crf, bodyComp, activity, recovery sql.NullFloat64
		if err := rows.Scan(&dateStr, &e.BodyAgeYears, &e.DeltaYears, &e.Composite,
			&crf, &bodyComp, &activity, &recovery, &createdAt); err != nil {
			return nil, fmt.Errorf("scan body age: %w", err)
		}
		e.Date, _ = time.Parse(models.DateFormat, dateStr)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		setF := func(dst **float64, v sql.NullFloat64) {
			if v.Valid {
				f := v.Float64
				*dst = &f
			}
		}
		setF(&e.CRF, crf)
		setF(&e.BodyComp, bodyComp)
		setF(&e.Activity, activity)
		setF(&e.Recovery, recovery)
		out = append(out, &e)
	}
	return out, rows.Err()
}

// GetBodyAge returns the recorded score for one date.
func (d *DB) GetBodyAge(day time.Time) (*models.BodyAgeEntry, error) {
	var e models.BodyAgeEntry
	var dateStr, createdAt string
	var crf, bodyComp, activity, recovery sql.NullFloat64
	err := d.db.QueryRow(`
		SELECT summary_date, body_age_years, delta_years, composite,
			crf, body_comp, activity, recovery, created_at
		FROM body_age_log WHERE summary_date = ?`,
		day.Format(models.DateFormat)).
		Scan(&dateStr, &e.BodyAgeYears, &e.DeltaYears, &e.Composite,
			&crf, &bodyComp, &activity, &recovery, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no body age for %s", ErrNotFound, day.Format(models.DateFormat))
	}
	if err != nil {
		return nil, fmt.Errorf("get body age: %w", err)
	}
	e.Date, _ = time.Parse(models.DateFormat, dateStr)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	setF := func(dst **float64, v sql.NullFloat64) {
		if v.Valid {
			f := v.Float64
			*dst = &f
		}
	}
	setF(&e.CRF, crf)
	setF(&e.BodyComp, bodyComp)
	setF(&e.Activity, activity)
	setF(&e.Recovery, recovery)
	return &e, nil
}
