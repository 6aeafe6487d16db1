// ABOUTME: Tests for the body-age deriver: determinism, missing-input
// ABOUTME: renormalization, and the insufficient-data path.
package bodyage

import (
	"errors"
	"testing"
	"time"

	"github.com/peteebot/pete/internal/models"
)

func day(s string) time.Time {
	t, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func fullWindow() []*models.DailySummary {
	var out []*models.DailySummary
	for i := 0; i < WindowDays; i++ {
		out = append(out, &models.DailySummary{
			Date: day("2025-06-01").AddDate(0, 0, i),
			Vitals: models.Vitals{
				BodyFatPct:      models.Float64(20),
				Steps:           models.Int(10000),
				ExerciseMinutes: models.Int(40),
				HRResting:       models.Int(55),
				SleepAsleepMin:  models.Int(430),
			},
		})
	}
	return out
}

func TestComputeDeterministic(t *testing.T) {
	target := day("2025-06-07")
	a, err := Compute(target, fullWindow(), 44)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	b, err := Compute(target, fullWindow(), 44)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if a.BodyAgeYears != b.BodyAgeYears || a.Composite != b.Composite {
		t.Errorf("same inputs gave different results: %+v vs %+v", a, b)
	}
	if a.CRF == nil || a.BodyComp == nil || a.Activity == nil || a.Recovery == nil {
		t.Error("expected all subscores present for a full window")
	}
	if a.DeltaYears != a.BodyAgeYears-44 {
		t.Errorf("delta %.1f does not match body age %.1f minus 44", a.DeltaYears, a.BodyAgeYears)
	}
}

func TestComputeKnownValues(t *testing.T) {
	// One day with every input: the averages equal the raw readings,
	// so each subscore can be checked by hand.
	window := []*models.DailySummary{{
		Date: day("2025-06-01"),
		Vitals: models.Vitals{
			BodyFatPct:      models.Float64(22.5),
			Steps:           models.Int(12000),
			ExerciseMinutes: models.Int(30),
			HRResting:       models.Int(60),
			SleepAsleepMin:  models.Int(450),
		},
	}}
	entry, err := Compute(day("2025-06-01"), window, 44)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	// vo2 = 38 - 0.15*4 - 0 + 0.3 = 37.7 -> (17.7/40)*100 = 44.25 -> 44.3
	if *entry.CRF != 44.3 {
		t.Errorf("crf = %.2f, want 44.3", *entry.CRF)
	}
	// (30 - 22.5) / 15 * 100 = 50
	if *entry.BodyComp != 50 {
		t.Errorf("body comp = %.2f, want 50", *entry.BodyComp)
	}
	// steps and exercise both exactly on target
	if *entry.Activity != 100 {
		t.Errorf("activity = %.2f, want 100", *entry.Activity)
	}
	// sleep 100, rhr 80 -> 0.66*100 + 0.34*80 = 93.2
	if *entry.Recovery != 93.2 {
		t.Errorf("recovery = %.2f, want 93.2", *entry.Recovery)
	}
}

func TestComputeIgnoresMissingDays(t *testing.T) {
	// Two readings of 50 and 70 with gaps between them must average to
	// 60, not be dragged down by the empty days.
	window := []*models.DailySummary{
		{Date: day("2025-06-01"), Vitals: models.Vitals{HRResting: models.Int(50)}},
		{Date: day("2025-06-02")},
		{Date: day("2025-06-03")},
		{Date: day("2025-06-04"), Vitals: models.Vitals{HRResting: models.Int(70)}},
	}
	entry, err := Compute(day("2025-06-04"), window, 44)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	// avg rhr 60 -> vo2 = 38 - 0.6 = 37.4 -> crf 43.5
	if *entry.CRF != 43.5 {
		t.Errorf("crf = %.2f, want 43.5", *entry.CRF)
	}
}

func TestComputeRenormalizesMissingComponents(t *testing.T) {
	// Only body fat present: the composite must equal the body-comp
	// score outright, not be diluted by defaults for the rest.
	window := []*models.DailySummary{
		{Date: day("2025-06-01"), Vitals: models.Vitals{BodyFatPct: models.Float64(18)}},
	}
	entry, err := Compute(day("2025-06-01"), window, 44)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if entry.CRF != nil || entry.Activity != nil || entry.Recovery != nil {
		t.Error("expected absent subscores to stay nil")
	}
	if entry.Composite != *entry.BodyComp {
		t.Errorf("composite %.1f should equal sole subscore %.1f", entry.Composite, *entry.BodyComp)
	}
}

func TestComputeInsufficientData(t *testing.T) {
	window := []*models.DailySummary{
		{Date: day("2025-06-01")},
		{Date: day("2025-06-02")},
	}
	if _, err := Compute(day("2025-06-02"), window, 44); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
	if _, err := Compute(day("2025-06-02"), nil, 44); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData for empty window, got %v", err)
	}
}

func TestComputeFloorsAtTenYearsUnder(t *testing.T) {
	// Perfect inputs push the raw formula past the floor.
	window := []*models.DailySummary{{
		Date: day("2025-06-01"),
		Vitals: models.Vitals{
			BodyFatPct:      models.Float64(12),
			Steps:           models.Int(15000),
			ExerciseMinutes: models.Int(90),
			HRResting:       models.Int(45),
			SleepAsleepMin:  models.Int(450),
		},
	}}
	entry, err := Compute(day("2025-06-01"), window, 44)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if entry.BodyAgeYears < 34 {
		t.Errorf("body age %.1f dropped below the 10-year floor", entry.BodyAgeYears)
	}
}
