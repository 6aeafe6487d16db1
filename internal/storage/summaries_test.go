// ABOUTME: Tests for the daily record merger.
// ABOUTME: Field-wise merge semantics, order independence, and validation.
package storage

import (
	"errors"
	"testing"

	"github.com/peteebot/pete/internal/models"
)

func reading(source models.Source, day string, v models.Vitals) *models.DailyReading {
	return &models.DailyReading{Source: source, Date: day, Vitals: v}
}

func TestMergeDailyFieldWise(t *testing.T) {
	db := openTestDB(t)

	scale := reading(models.SourceWithings, "2025-06-01", models.Vitals{
		WeightKg:   models.Float64(82.5),
		BodyFatPct: models.Float64(21.3),
	})
	phone := reading(models.SourceApple, "2025-06-01", models.Vitals{
		Steps:     models.Int(10432),
		HRResting: models.Int(52),
	})

	if err := db.MergeDaily(scale); err != nil {
		t.Fatalf("MergeDaily failed: %v", err)
	}
	if err := db.MergeDaily(phone); err != nil {
		t.Fatalf("MergeDaily failed: %v", err)
	}

	s, err := db.GetSummary(date(t, "2025-06-01"))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if s.WeightKg == nil || *s.WeightKg != 82.5 {
		t.Error("scale weight lost after phone merge")
	}
	if s.BodyFatPct == nil || *s.BodyFatPct != 21.3 {
		t.Error("scale body fat lost after phone merge")
	}
	if s.Steps == nil || *s.Steps != 10432 {
		t.Error("phone steps not merged")
	}
	if s.HRResting == nil || *s.HRResting != 52 {
		t.Error("phone resting HR not merged")
	}
}

func TestMergeDailyOrderIndependent(t *testing.T) {
	a := reading(models.SourceWithings, "2025-06-01", models.Vitals{
		WeightKg: models.Float64(82.5),
		Steps:    models.Int(500),
	})
	b := reading(models.SourceApple, "2025-06-01", models.Vitals{
		HRResting: models.Int(52),
	})

	merged := func(first, second *models.DailyReading) *models.DailySummary {
		db := openTestDB(t)
		if err := db.MergeDaily(first); err != nil {
			t.Fatalf("MergeDaily failed: %v", err)
		}
		if err := db.MergeDaily(second); err != nil {
			t.Fatalf("MergeDaily failed: %v", err)
		}
		s, err := db.GetSummary(date(t, "2025-06-01"))
		if err != nil {
			t.Fatalf("GetSummary failed: %v", err)
		}
		return s
	}

	ab := merged(a, b)
	ba := merged(b, a)

	if *ab.WeightKg != *ba.WeightKg || *ab.Steps != *ba.Steps || *ab.HRResting != *ba.HRResting {
		t.Errorf("merge order changed the row: %+v vs %+v", ab.Vitals, ba.Vitals)
	}
}

func TestMergeDailyLastWriteWinsPerField(t *testing.T) {
	db := openTestDB(t)

	if err := db.MergeDaily(reading(models.SourceWithings, "2025-06-01", models.Vitals{
		WeightKg: models.Float64(82.5),
	})); err != nil {
		t.Fatalf("MergeDaily failed: %v", err)
	}
	// Corrected re-delivery of the same field.
	if err := db.MergeDaily(reading(models.SourceWithings, "2025-06-01", models.Vitals{
		WeightKg: models.Float64(82.1),
	})); err != nil {
		t.Fatalf("MergeDaily failed: %v", err)
	}

	s, err := db.GetSummary(date(t, "2025-06-01"))
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if *s.WeightKg != 82.1 {
		t.Errorf("weight = %.1f, want corrected 82.1", *s.WeightKg)
	}
}

func TestMergeDailyValidation(t *testing.T) {
	db := openTestDB(t)

	cases := []struct {
		name    string
		reading *models.DailyReading
	}{
		{"unknown source", reading("fitbit", "2025-06-01", models.Vitals{Steps: models.Int(1)})},
		{"bad date", reading(models.SourceApple, "06/01/2025", models.Vitals{Steps: models.Int(1)})},
		{"negative steps", reading(models.SourceApple, "2025-06-01", models.Vitals{Steps: models.Int(-5)})},
		{"weight out of range", reading(models.SourceWithings, "2025-06-01", models.Vitals{WeightKg: models.Float64(600)})},
		{"body fat over 100", reading(models.SourceWithings, "2025-06-01", models.Vitals{BodyFatPct: models.Float64(120)})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := db.MergeDaily(c.reading); !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestMergeDailyBatchRejectsAll(t *testing.T) {
	db := openTestDB(t)

	batch := []*models.DailyReading{
		reading(models.SourceApple, "2025-06-01", models.Vitals{Steps: models.Int(100)}),
		reading(models.SourceApple, "bad-date", models.Vitals{Steps: models.Int(100)}),
	}
	if err := db.MergeDailyBatch(batch); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	// The good reading must not have been applied.
	if _, err := db.GetSummary(date(t, "2025-06-01")); !errors.Is(err, ErrNotFound) {
		t.Errorf("partial batch was applied: %v", err)
	}
}

func TestListAndRecentSummaries(t *testing.T) {
	db := openTestDB(t)

	for _, day := range []string{"2025-06-01", "2025-06-02", "2025-06-04"} {
		if err := db.MergeDaily(reading(models.SourceApple, day, models.Vitals{
			Steps: models.Int(1000),
		})); err != nil {
			t.Fatalf("MergeDaily failed: %v", err)
		}
	}

	list, err := db.ListSummaries(date(t, "2025-06-01"), date(t, "2025-06-03"))
	if err != nil {
		t.Fatalf("ListSummaries failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 rows in range, got %d", len(list))
	}
	if !list[0].Date.Before(list[1].Date) {
		t.Error("list not ascending")
	}

	recent, err := db.RecentSummaries(date(t, "2025-06-04"), 2)
	if err != nil {
		t.Fatalf("RecentSummaries failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent rows, got %d", len(recent))
	}
	if recent[0].Date.Format(models.DateFormat) != "2025-06-02" ||
		recent[1].Date.Format(models.DateFormat) != "2025-06-04" {
		t.Errorf("recent window wrong: %s, %s", recent[0].Date, recent[1].Date)
	}
}

func TestDeleteSummaryCascades(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	day := date(t, "2025-06-01")
	if err := db.MergeDaily(reading(models.SourceApple, "2025-06-01", models.Vitals{
		Steps: models.Int(1000),
	})); err != nil {
		t.Fatalf("MergeDaily failed: %v", err)
	}
	set := models.NewStrengthSet(day, 615, 5, 100)
	if err := db.RecordStrengthSets([]*models.StrengthSet{set}); err != nil {
		t.Fatalf("RecordStrengthSets failed: %v", err)
	}

	if err := db.DeleteSummary(day); err != nil {
		t.Fatalf("DeleteSummary failed: %v", err)
	}

	n, err := db.CountStrengthSets(day)
	if err != nil {
		t.Fatalf("CountStrengthSets failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected cascade to remove sets, %d remain", n)
	}

	if err := db.DeleteSummary(day); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
