// ABOUTME: Strength log recorder: per-set rows tied to date and exercise.
// ABOUTME: Idempotent on source entry id; replace-window fallback otherwise.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/peteebot/pete/internal/models"
)

// RecordStrengthSets persists a batch of set entries in one transaction.
//
// Entries carrying a source entry id upsert on it, so re-importing the
// same session never duplicates. Entries without one replace any prior
// id-less rows for the same (date, exercise) pair, so repeated pulls of
// the same workout do not accumulate. A date with no summary row gets a
// bare one; an unknown exercise rejects the whole batch.
func (d *DB) RecordStrengthSets(sets []*models.StrengthSet) error {
	for i, s := range sets {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: set %d: %v", ErrValidation, i, err)
		}
	}

	tx, err := d.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, s := range sets {
		if ok, err := rowExistsTx(tx, `SELECT 1 FROM exercises WHERE id = ?`, s.ExerciseID); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("%w: unknown exercise %d", ErrReferential, s.ExerciseID)
		}
		if err := ensureSummaryRowTx(tx, s.Date); err != nil {
			return err
		}
	}

	// Replace window: clear prior id-less rows for every (date, exercise)
	// pair that this batch re-delivers without stable identifiers.
	type pair struct {
		date       string
		exerciseID int
	}
	cleared := make(map[pair]bool)
	for _, s := range sets {
		if s.SourceEntryID != nil {
			continue
		}
		p := pair{s.Date.Format(models.DateFormat), s.ExerciseID}
		if cleared[p] {
			continue
		}
		if _, err := tx.Exec(`
			DELETE FROM strength_log
			WHERE summary_date = ? AND exercise_id = ? AND source_entry_id IS NULL`,
			p.date, p.exerciseID); err != nil {
			return fmt.Errorf("clear prior sets: %w", err)
		}
		cleared[p] = true
	}

	for _, s := range sets {
		if err := insertSetTx(tx, s); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record strength sets: %w", err)
	}
	return nil
}

func insertSetTx(tx *sql.Tx, s *models.StrengthSet) error {
	if s.SourceEntryID != nil {
		_, err := tx.Exec(`
			INSERT INTO strength_log (id, summary_date, exercise_id, reps, weight_kg, rir, source_entry_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(source_entry_id) DO UPDATE SET
				summary_date = excluded.summary_date,
				exercise_id = excluded.exercise_id,
				reps = excluded.reps,
				weight_kg = excluded.weight_kg,
				rir = excluded.rir`,
			s.ID.String(), s.Date.Format(models.DateFormat), s.ExerciseID,
			s.Reps, s.WeightKg, s.RIR, *s.SourceEntryID,
			s.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("upsert strength set %s: %w", *s.SourceEntryID, err)
		}
		return nil
	}

	_, err := tx.Exec(`
		INSERT INTO strength_log (id, summary_date, exercise_id, reps, weight_kg, rir, source_entry_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NULL, ?)`,
		s.ID.String(), s.Date.Format(models.DateFormat), s.ExerciseID,
		s.Reps, s.WeightKg, s.RIR,
		s.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert strength set: %w", err)
	}
	return nil
}

// ListStrengthSets returns set entries in [from, to], ascending by date.
func (d *DB) ListStrengthSets(from, to time.Time) ([]*models.StrengthSet, error) {
	rows, err := d.db.Query(`
		SELECT id, summary_date, exercise_id, reps, weight_kg, rir, source_entry_id, created_at
		FROM strength_log
		WHERE summary_date BETWEEN ? AND ?
		ORDER BY summary_date ASC, created_at ASC`,
		from.Format(models.DateFormat), to.Format(models.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("list strength sets: %w", err)
	}
	defer rows.Close()
	return scanSets(rows)
}

// ListStrengthSetsByExercise returns an exercise's sets since a date,
// ascending by date.
func (d *DB) ListStrengthSetsByExercise(exerciseID int, since time.Time) ([]*models.StrengthSet, error) {
	rows, err := d.db.Query(`
		SELECT id, summary_date, exercise_id, reps, weight_kg, rir, source_entry_id, created_at
		FROM strength_log
		WHERE exercise_id = ? AND summary_date >= ?
		ORDER BY summary_date ASC, created_at ASC`,
		exerciseID, since.Format(models.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("list strength sets by exercise: %w", err)
	}
	defer rows.Close()
	return scanSets(rows)
}

func scanSets(rows *sql.Rows) ([]*models.StrengthSet, error) {
	var out []*models.StrengthSet
	for rows.Next() {
		var s models.StrengthSet
		var idStr, dateStr, createdAt string
		var rir sql.NullFloat64
		var sourceID sql.NullString
		if err := rows.Scan(&idStr, &dateStr, &s.ExerciseID, &s.Reps, &s.WeightKg,
			&rir, &sourceID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan strength set: %w", err)
		}
		s.ID, _ = uuid.Parse(idStr)
		s.Date, _ = time.Parse(models.DateFormat, dateStr)
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if rir.Valid {
			v := rir.Float64
			s.RIR = &v
		}
		if sourceID.Valid {
			v := sourceID.String
			s.SourceEntryID = &v
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// CountStrengthSets returns the number of rows for one date, used by
// cleanup reporting.
func (d *DB) CountStrengthSets(day time.Time) (int, error) {
	var n int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM strength_log WHERE summary_date = ?`,
		day.Format(models.DateFormat)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count strength sets: %w", err)
	}
	return n, nil
}
