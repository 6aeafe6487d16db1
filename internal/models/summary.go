// ABOUTME: DailySummary fact row and per-source daily reading batches.
// ABOUTME: All vitals columns are optional; a date may have partial coverage.
package models

import (
	"fmt"
	"time"
)

// DateFormat is the calendar-date layout used everywhere in the store.
const DateFormat = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// Source identifies which upstream service produced a daily reading.
type Source string

const (
	SourceWithings Source = "withings"
	SourceApple    Source = "apple"
	SourceWger     Source = "wger"
)

// Valid reports whether s names a known feed.
func (s Source) Valid() bool {
	switch s {
	case SourceWithings, SourceApple, SourceWger:
		return true
	}
	return false
}

// Vitals holds every per-day metric column. Nil means "not supplied":
// the merger only writes fields that are present.
type Vitals struct {
	// Body composition (smart scale)
	WeightKg     *float64 `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
	BodyFatPct   *float64 `json:"body_fat_pct,omitempty" yaml:"body_fat_pct,omitempty"`
	MuscleMassKg *float64 `json:"muscle_mass_kg,omitempty" yaml:"muscle_mass_kg,omitempty"`
	WaterPct     *float64 `json:"water_pct,omitempty" yaml:"water_pct,omitempty"`

	// Activity (phone health tracker)
	Steps           *int `json:"steps,omitempty" yaml:"steps,omitempty"`
	ExerciseMinutes *int `json:"exercise_minutes,omitempty" yaml:"exercise_minutes,omitempty"`
	CaloriesActive  *int `json:"calories_active,omitempty" yaml:"calories_active,omitempty"`
	CaloriesResting *int `json:"calories_resting,omitempty" yaml:"calories_resting,omitempty"`
	StandMinutes    *int `json:"stand_minutes,omitempty" yaml:"stand_minutes,omitempty"`
	DistanceM       *int `json:"distance_m,omitempty" yaml:"distance_m,omitempty"`

	// Heart rate
	HRResting *int `json:"hr_resting,omitempty" yaml:"hr_resting,omitempty"`
	HRAvg     *int `json:"hr_avg,omitempty" yaml:"hr_avg,omitempty"`
	HRMax     *int `json:"hr_max,omitempty" yaml:"hr_max,omitempty"`
	HRMin     *int `json:"hr_min,omitempty" yaml:"hr_min,omitempty"`

	// Sleep
	SleepTotalMin  *int `json:"sleep_total_minutes,omitempty" yaml:"sleep_total_minutes,omitempty"`
	SleepAsleepMin *int `json:"sleep_asleep_minutes,omitempty" yaml:"sleep_asleep_minutes,omitempty"`
	SleepRemMin    *int `json:"sleep_rem_minutes,omitempty" yaml:"sleep_rem_minutes,omitempty"`
	SleepDeepMin   *int `json:"sleep_deep_minutes,omitempty" yaml:"sleep_deep_minutes,omitempty"`
	SleepCoreMin   *int `json:"sleep_core_minutes,omitempty" yaml:"sleep_core_minutes,omitempty"`
	SleepAwakeMin  *int `json:"sleep_awake_minutes,omitempty" yaml:"sleep_awake_minutes,omitempty"`
}

// Empty reports whether no field is populated.
func (v *Vitals) Empty() bool {
	return v.WeightKg == nil && v.BodyFatPct == nil && v.MuscleMassKg == nil &&
		v.WaterPct == nil && v.Steps == nil && v.ExerciseMinutes == nil &&
		v.CaloriesActive == nil && v.CaloriesResting == nil && v.StandMinutes == nil &&
		v.DistanceM == nil && v.HRResting == nil && v.HRAvg == nil &&
		v.HRMax == nil && v.HRMin == nil && v.SleepTotalMin == nil &&
		v.SleepAsleepMin == nil && v.SleepRemMin == nil && v.SleepDeepMin == nil &&
		v.SleepCoreMin == nil && v.SleepAwakeMin == nil
}

// Validate checks every populated field against its allowed range.
func (v *Vitals) Validate() error {
	if v.WeightKg != nil && (*v.WeightKg <= 0 || *v.WeightKg > 500) {
		return fmt.Errorf("weight_kg %.2f out of range (0, 500]", *v.WeightKg)
	}
	for name, pct := range map[string]*float64{
		"body_fat_pct": v.BodyFatPct,
		"water_pct":    v.WaterPct,
	} {
		if pct != nil && (*pct < 0 || *pct > 100) {
			return fmt.Errorf("%s %.2f out of range [0, 100]", name, *pct)
		}
	}
	if v.MuscleMassKg != nil && (*v.MuscleMassKg <= 0 || *v.MuscleMassKg > 500) {
		return fmt.Errorf("muscle_mass_kg %.2f out of range (0, 500]", *v.MuscleMassKg)
	}
	for name, n := range map[string]*int{
		"steps":                v.Steps,
		"exercise_minutes":     v.ExerciseMinutes,
		"calories_active":      v.CaloriesActive,
		"calories_resting":     v.CaloriesResting,
		"stand_minutes":        v.StandMinutes,
		"distance_m":           v.DistanceM,
		"hr_resting":           v.HRResting,
		"hr_avg":               v.HRAvg,
		"hr_max":               v.HRMax,
		"hr_min":               v.HRMin,
		"sleep_total_minutes":  v.SleepTotalMin,
		"sleep_asleep_minutes": v.SleepAsleepMin,
		"sleep_rem_minutes":    v.SleepRemMin,
		"sleep_deep_minutes":   v.SleepDeepMin,
		"sleep_core_minutes":   v.SleepCoreMin,
		"sleep_awake_minutes":  v.SleepAwakeMin,
	} {
		if n != nil && *n < 0 {
			return fmt.Errorf("%s %d must not be negative", name, *n)
		}
	}
	return nil
}

// DailyReading is one source's sparse batch for one calendar date.
type DailyReading struct {
	Source Source `json:"source"`
	Date   string `json:"date"`
	Vitals
}

// DailySummary is the merged fact row: at most one per calendar date.
type DailySummary struct {
	Date time.Time `json:"date" yaml:"date"`
	Vitals
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Float64 returns a pointer to v, for building sparse readings.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v, for building sparse readings.
func Int(v int) *int { return &v }
