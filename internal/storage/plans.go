// ABOUTME: Training plan store: immutable plan documents keyed by start date.
// ABOUTME: Regeneration goes through an explicit supersede, never overwrite.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/peteebot/pete/internal/models"
)

// CreatePlan stores a new plan document. A start date with an existing
// active plan is an integrity conflict; the original plan is untouched.
func (d *DB) CreatePlan(plan *models.TrainingPlan) error {
	if !json.Valid(plan.Document) {
		return fmt.Errorf("%w: plan document is not valid JSON", ErrValidation)
	}

	tx, err := d.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if ok, err := activePlanExistsTx(tx, plan.StartDate); err != nil {
		return err
	} else if ok {
		return fmt.Errorf("%w: plan already exists for %s",
			ErrConflict, plan.StartDate.Format(models.DateFormat))
	}

	if err := insertPlanTx(tx, plan); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	return nil
}

// SupersedePlan retires the active plan for the start date and stores the
// replacement in its place. The superseded revision is kept, flagged with
// a timestamp.
func (d *DB) SupersedePlan(plan *models.TrainingPlan) error {
	if !json.Valid(plan.Document) {
		return fmt.Errorf("%w: plan document is not valid JSON", ErrValidation)
	}

	tx, err := d.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE training_plans SET superseded_at = ?
		WHERE start_date = ? AND superseded_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339),
		plan.StartDate.Format(models.DateFormat))
	if err != nil {
		return fmt.Errorf("supersede plan: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("supersede plan: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: no active plan for %s",
			ErrNotFound, plan.StartDate.Format(models.DateFormat))
	}

	if err := insertPlanTx(tx, plan); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("supersede plan: %w", err)
	}
	return nil
}

func insertPlanTx(tx *sql.Tx, plan *models.TrainingPlan) error {
	_, err := tx.Exec(`
		INSERT INTO training_plans (id, start_date, document, created_at)
		VALUES (?, ?, ?, ?)`,
		plan.ID.String(),
		plan.StartDate.Format(models.DateFormat),
		string(plan.Document),
		plan.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

func activePlanExistsTx(tx *sql.Tx, startDate time.Time) (bool, error) {
	var one int
	err := tx.QueryRow(`
		SELECT 1 FROM training_plans WHERE start_date = ? AND superseded_at IS NULL`,
		startDate.Format(models.DateFormat)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check active plan: %w", err)
	}
	return true, nil
}

// GetPlan returns the active plan for a start date.
func (d *DB) GetPlan(startDate time.Time) (*models.TrainingPlan, error) {
	row := d.db.QueryRow(`
		SELECT id, start_date, document, created_at, superseded_at
		FROM training_plans
		WHERE start_date = ? AND superseded_at IS NULL`,
		startDate.Format(models.DateFormat))
	p, err := scanPlan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no plan for %s", ErrNotFound, startDate.Format(models.DateFormat))
	}
	return p, err
}

// LatestPlan returns the active plan with the greatest start date at or
// before asOf: the baseline for the next cycle's progression deltas.
func (d *DB) LatestPlan(asOf time.Time) (*models.TrainingPlan, error) {
	row := d.db.QueryRow(`
		SELECT id, start_date, document, created_at, superseded_at
		FROM training_plans
		WHERE start_date <= ? AND superseded_at IS NULL
		ORDER BY start_date DESC
		LIMIT 1`,
		asOf.Format(models.DateFormat))
	p, err := scanPlan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no plan at or before %s", ErrNotFound, asOf.Format(models.DateFormat))
	}
	return p, err
}

// ListPlans returns every revision, newest start date first.
func (d *DB) ListPlans() ([]*models.TrainingPlan, error) {
	rows, err := d.db.Query(`
		SELECT id, start_date, document, created_at, superseded_at
		FROM training_plans
		ORDER BY start_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var out []*models.TrainingPlan
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPlan(scan func(dest ...any) error) (*models.TrainingPlan, error) {
	var p models.TrainingPlan
	var idStr, startDate, document, createdAt string
	var superseded sql.NullString
	if err := scan(&idStr, &startDate, &document, &createdAt, &superseded); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan plan: %w", err)
	}
	p.ID, _ = uuid.Parse(idStr)
	p.StartDate, _ = time.Parse(models.DateFormat, startDate)
	p.Document = json.RawMessage(document)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if superseded.Valid {
		t, _ := time.Parse(time.RFC3339, superseded.String)
		p.SupersededAt = &t
	}
	return &p, nil
}
