// ABOUTME: Tests for model validation and date parsing.
// ABOUTME: Covers vitals ranges, source tags, and the RIR scale.
package models

import "testing"

func TestParseDate(t *testing.T) {
	good, err := ParseDate("2025-06-01")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if good.Year() != 2025 || int(good.Month()) != 6 || good.Day() != 1 {
		t.Errorf("wrong date: %v", good)
	}

	for _, bad := range []string{"", "06/01/2025", "2025-6-1", "yesterday", "2025-06-01T00:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestSourceValid(t *testing.T) {
	for _, s := range []Source{SourceWithings, SourceApple, SourceWger} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []Source{"", "fitbit", "WITHINGS"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestVitalsEmpty(t *testing.T) {
	var v Vitals
	if !v.Empty() {
		t.Error("zero vitals should be empty")
	}
	v.Steps = Int(0)
	if v.Empty() {
		t.Error("vitals with a field set should not be empty")
	}
}

func TestVitalsValidate(t *testing.T) {
	cases := []struct {
		name    string
		vitals  Vitals
		wantErr bool
	}{
		{"empty", Vitals{}, false},
		{"typical", Vitals{WeightKg: Float64(82.5), Steps: Int(10000)}, false},
		{"zero weight", Vitals{WeightKg: Float64(0)}, true},
		{"huge weight", Vitals{WeightKg: Float64(501)}, true},
		{"negative body fat", Vitals{BodyFatPct: Float64(-1)}, true},
		{"body fat over 100", Vitals{BodyFatPct: Float64(101)}, true},
		{"negative steps", Vitals{Steps: Int(-1)}, true},
		{"zero steps", Vitals{Steps: Int(0)}, false},
		{"negative sleep", Vitals{SleepAsleepMin: Int(-10)}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.vitals.Validate()
			if (err != nil) != c.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestStrengthSetValidate(t *testing.T) {
	day, _ := ParseDate("2025-06-01")

	good := NewStrengthSet(day, 615, 5, 100).WithRIR(1.5)
	if err := good.Validate(); err != nil {
		t.Errorf("valid set rejected: %v", err)
	}

	cases := []struct {
		name string
		set  *StrengthSet
	}{
		{"zero reps", NewStrengthSet(day, 615, 0, 100)},
		{"negative weight", NewStrengthSet(day, 615, 5, -1)},
		{"zero weight", NewStrengthSet(day, 615, 5, 0)},
		{"rir above scale", NewStrengthSet(day, 615, 5, 100).WithRIR(10.5)},
		{"negative rir", NewStrengthSet(day, 615, 5, 100).WithRIR(-0.5)},
		{"quarter point rir", NewStrengthSet(day, 615, 5, 100).WithRIR(1.25)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.set.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestTrainingPlanActive(t *testing.T) {
	day, _ := ParseDate("2025-06-02")
	plan := NewTrainingPlan(day, []byte(`{}`))
	if !plan.Active() {
		t.Error("fresh plan should be active")
	}
	now := plan.CreatedAt
	plan.SupersededAt = &now
	if plan.Active() {
		t.Error("superseded plan should not be active")
	}
}
