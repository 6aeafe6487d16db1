// ABOUTME: Tests for load progression: RIR-driven increments, holds, and
// ABOUTME: the forced deload after a long block.
package progression

import (
	"testing"
	"time"

	"github.com/peteebot/pete/internal/models"
)

func set(date string, weight float64, rir *float64) *models.StrengthSet {
	d, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return &models.StrengthSet{Date: d, ExerciseID: 1, Reps: 5, WeightKg: weight, RIR: rir}
}

func rir(v float64) *float64 { return &v }

func asOf(date string) time.Time {
	d, _ := models.ParseDate(date)
	return d
}

func TestNextNoHistory(t *testing.T) {
	d := Next(1, nil, asOf("2025-06-01"))
	if d.NextWeight != 0 || d.Reason != "no history" {
		t.Errorf("unexpected decision for empty history: %+v", d)
	}
}

func TestNextLargeIncrementWhenHard(t *testing.T) {
	history := []*models.StrengthSet{
		set("2025-06-01", 100, rir(3)),
		set("2025-06-03", 100, rir(1)),
	}
	d := Next(1, history, asOf("2025-06-05"))
	if d.NextWeight != 105 {
		t.Errorf("next = %.1f, want 105", d.NextWeight)
	}
}

func TestNextSmallIncrement(t *testing.T) {
	history := []*models.StrengthSet{set("2025-06-03", 100, rir(2))}
	d := Next(1, history, asOf("2025-06-05"))
	if d.NextWeight != 102.5 {
		t.Errorf("next = %.1f, want 102.5", d.NextWeight)
	}
}

func TestNextHoldsWhenEasyOrUnknown(t *testing.T) {
	history := []*models.StrengthSet{set("2025-06-03", 100, rir(4))}
	if d := Next(1, history, asOf("2025-06-05")); d.NextWeight != 100 {
		t.Errorf("next = %.1f, want 100 on high RIR", d.NextWeight)
	}
	history = []*models.StrengthSet{set("2025-06-03", 100, nil)}
	if d := Next(1, history, asOf("2025-06-05")); d.NextWeight != 100 {
		t.Errorf("next = %.1f, want 100 without effort data", d.NextWeight)
	}
}

func TestNextUsesHardestSetOfLastSession(t *testing.T) {
	// Same date: back-off set at higher RIR must not mask the top set.
	history := []*models.StrengthSet{
		set("2025-06-03", 100, rir(1)),
		set("2025-06-03", 90, rir(4)),
	}
	d := Next(1, history, asOf("2025-06-05"))
	if d.LastWeight != 100 || d.NextWeight != 105 {
		t.Errorf("decision %+v, want top set 100 progressing to 105", d)
	}
}

func TestNextForcesDeload(t *testing.T) {
	var history []*models.StrengthSet
	start, _ := models.ParseDate("2025-04-01")
	for week := 0; week < 7; week++ {
		d := start.AddDate(0, 0, week*7)
		history = append(history, set(d.Format(models.DateFormat), 100+float64(week)*2.5, rir(1)))
	}
	d := Next(1, history, start.AddDate(0, 0, 7*7))
	if d.Reason != "deload" {
		t.Fatalf("reason = %q, want deload", d.Reason)
	}
	want := roundToPlate(d.LastWeight * deloadFactor)
	if d.NextWeight != want {
		t.Errorf("deload weight = %.1f, want %.1f", d.NextWeight, want)
	}
}

func TestNextDeloadClockResets(t *testing.T) {
	history := []*models.StrengthSet{
		set("2025-04-01", 100, rir(1)),
		set("2025-05-20", 60, rir(5)), // deload session
		set("2025-05-27", 100, rir(1)),
	}
	d := Next(1, history, asOf("2025-06-01"))
	if d.Reason == "deload" {
		t.Error("deload forced right after a deload session")
	}
	if d.NextWeight != 105 {
		t.Errorf("next = %.1f, want 105", d.NextWeight)
	}
}
