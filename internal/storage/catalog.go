// ABOUTME: Catalog importer: reconciles local catalog to a feed snapshot.
// ABOUTME: Junction links are diffed as sets; insert additions, delete stale.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/peteebot/pete/internal/models"
)

// ImportCatalog reconciles local storage to a snapshot of the upstream
// catalog feed. Dimension rows are upserted by id; for every exercise in
// the snapshot, junction links are brought into exact agreement with the
// feed. Exercises absent from the snapshot are untouched (the feed may be
// paginated). The whole import is one transaction.
func (d *DB) ImportCatalog(snap *models.CatalogSnapshot) error {
	tx, err := d.begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range snap.Categories {
		if _, err := tx.Exec(`
			INSERT INTO categories (id, name) VALUES (?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
			c.ID, c.Name); err != nil {
			return fmt.Errorf("upsert category %d: %w", c.ID, err)
		}
	}
	for _, e := range snap.Equipment {
		if _, err := tx.Exec(`
			INSERT INTO equipment (id, name) VALUES (?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
			e.ID, e.Name); err != nil {
			return fmt.Errorf("upsert equipment %d: %w", e.ID, err)
		}
	}
	for _, m := range snap.Muscles {
		if _, err := tx.Exec(`
			INSERT INTO muscles (id, name, name_en, is_front) VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				name_en = excluded.name_en,
				is_front = excluded.is_front`,
			m.ID, m.Name, m.NameEn, m.IsFront); err != nil {
			return fmt.Errorf("upsert muscle %d: %w", m.ID, err)
		}
	}

	for i := range snap.Exercises {
		if err := importExerciseTx(tx, &snap.Exercises[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}
	return nil
}

func importExerciseTx(tx *sql.Tx, ex *models.ExerciseEntry) error {
	// UUIDs are immutable: reject a feed entry claiming an existing UUID
	// under a different identifier, or changing an identifier's UUID.
	var existingID int
	err := tx.QueryRow(`SELECT id FROM exercises WHERE uuid = ?`, ex.UUID.String()).Scan(&existingID)
	switch {
	case err == nil:
		if existingID != ex.ID {
			return fmt.Errorf("%w: uuid %s already assigned to exercise %d, feed claims %d",
				ErrConflict, ex.UUID, existingID, ex.ID)
		}
	case errors.Is(err, sql.ErrNoRows):
		// New UUID; fine.
	default:
		return fmt.Errorf("check exercise uuid: %w", err)
	}

	var existingUUID string
	err = tx.QueryRow(`SELECT uuid FROM exercises WHERE id = ?`, ex.ID).Scan(&existingUUID)
	switch {
	case err == nil:
		if existingUUID != ex.UUID.String() {
			return fmt.Errorf("%w: exercise %d has uuid %s, feed claims %s",
				ErrConflict, ex.ID, existingUUID, ex.UUID)
		}
	case errors.Is(err, sql.ErrNoRows):
	default:
		return fmt.Errorf("check exercise id: %w", err)
	}

	if ok, err := rowExistsTx(tx, `SELECT 1 FROM categories WHERE id = ?`, ex.CategoryID); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%w: exercise %d references unknown category %d",
			ErrReferential, ex.ID, ex.CategoryID)
	}

	if _, err := tx.Exec(`
		INSERT INTO exercises (id, uuid, name, description, category_id)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			category_id = excluded.category_id`,
		ex.ID, ex.UUID.String(), ex.Name, ex.Description, ex.CategoryID); err != nil {
		return fmt.Errorf("upsert exercise %d: %w", ex.ID, err)
	}

	junctions := []struct {
		table    string
		dimQuery string
		feed     []int
	}{
		{"exercise_equipment", `SELECT 1 FROM equipment WHERE id = ?`, ex.Equipment},
		{"exercise_muscle_primary", `SELECT 1 FROM muscles WHERE id = ?`, ex.MusclesPrimary},
		{"exercise_muscle_secondary", `SELECT 1 FROM muscles WHERE id = ?`, ex.MusclesSecondary},
	}
	for _, j := range junctions {
		if err := reconcileLinksTx(tx, j.table, j.dimQuery, ex.ID, j.feed); err != nil {
			return err
		}
	}
	return nil
}

// reconcileLinksTx brings one junction table's rows for an exercise into
// exact agreement with the feed's id list: insert missing, delete stale.
func reconcileLinksTx(tx *sql.Tx, table, dimQuery string, exerciseID int, feed []int) error {
	current := make(map[int]bool)
	linkCol := linkColumn(table)
	rows, err := tx.Query(
		fmt.Sprintf(`SELECT %s FROM %s WHERE exercise_id = ?`, linkCol, table), exerciseID)
	if err != nil {
		return fmt.Errorf("load %s links: %w", table, err)
	}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan %s link: %w", table, err)
		}
		current[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load %s links: %w", table, err)
	}

	wanted := make(map[int]bool, len(feed))
	for _, id := range feed {
		wanted[id] = true
	}

	// Additions
	for id := range wanted {
		if current[id] {
			continue
		}
		if ok, err := rowExistsTx(tx, dimQuery, id); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("%w: exercise %d link references unknown id %d in %s",
				ErrReferential, exerciseID, id, table)
		}
		if _, err := tx.Exec(
			fmt.Sprintf(`INSERT INTO %s (exercise_id, %s) VALUES (?, ?)`, table, linkCol),
			exerciseID, id); err != nil {
			return fmt.Errorf("insert %s link: %w", table, err)
		}
	}

	// Removals
	for id := range current {
		if wanted[id] {
			continue
		}
		if _, err := tx.Exec(
			fmt.Sprintf(`DELETE FROM %s WHERE exercise_id = ? AND %s = ?`, table, linkCol),
			exerciseID, id); err != nil {
			return fmt.Errorf("delete %s link: %w", table, err)
		}
	}
	return nil
}

func linkColumn(table string) string {
	if table == "exercise_equipment" {
		return "equipment_id"
	}
	return "muscle_id"
}

func rowExistsTx(tx *sql.Tx, query string, id int) (bool, error) {
	var one int
	err := tx.QueryRow(query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("existence check: %w", err)
	}
	return true, nil
}

// GetExercise returns one catalog exercise by id.
func (d *DB) GetExercise(id int) (*models.Exercise, error) {
	var ex models.Exercise
	var uuidStr string
	var desc sql.NullString
	err := d.db.QueryRow(`
		SELECT id, uuid, name, description, category_id FROM exercises WHERE id = ?`, id).
		Scan(&ex.ID, &uuidStr, &ex.Name, &desc, &ex.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: exercise %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	ex.UUID, _ = uuid.Parse(uuidStr)
	if desc.Valid {
		ex.Description = desc.String
	}
	return &ex, nil
}

// ListExercises returns catalog exercises ordered by id.
func (d *DB) ListExercises(limit int) ([]*models.Exercise, error) {
	query := `SELECT id, uuid, name, description, category_id FROM exercises ORDER BY id ASC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var out []*models.Exercise
	for rows.Next() {
		var ex models.Exercise
		var uuidStr string
		var desc sql.NullString
		if err := rows.Scan(&ex.ID, &uuidStr, &ex.Name, &desc, &ex.CategoryID); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		ex.UUID, _ = uuid.Parse(uuidStr)
		if desc.Valid {
			ex.Description = desc.String
		}
		out = append(out, &ex)
	}
	return out, rows.Err()
}

// ExerciseLinks returns the current junction ids for an exercise.
func (d *DB) ExerciseLinks(exerciseID int) (equipment, primary, secondary []int, err error) {
	load := func(table string) ([]int, error) {
		rows, err := d.db.Query(
			fmt.Sprintf(`SELECT %s FROM %s WHERE exercise_id = ? ORDER BY 1`, linkColumn(table), table),
			exerciseID)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", table, err)
		}
		defer rows.Close()
		var ids []int
		for rows.Next() {
			var id int
			if err := rows.Scan(&id); err != nil {
				return nil, fmt.Errorf("scan %s: %w", table, err)
			}
			ids = append(ids, id)
		}
		return ids, rows.Err()
	}

	if equipment, err = load("exercise_equipment"); err != nil {
		return nil, nil, nil, err
	}
	if primary, err = load("exercise_muscle_primary"); err != nil {
		return nil, nil, nil, err
	}
	if secondary, err = load("exercise_muscle_secondary"); err != nil {
		return nil, nil, nil, err
	}
	return equipment, primary, secondary, nil
}
