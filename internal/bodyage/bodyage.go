// ABOUTME: Composite "body age" deriver: a pure function of a trailing
// ABOUTME: window of daily summaries plus a chronological age.
package bodyage

import (
	"errors"
	"math"
	"time"

	"github.com/peteebot/pete/internal/models"
)

// ErrInsufficientData is reported when every relevant input across the
// window is missing. The deriver never substitutes a default score.
var ErrInsufficientData = errors.New("insufficient data to derive body age")

// WindowDays is the trailing window the deriver averages over.
const WindowDays = 7

// Component weights. When a component has no inputs it is dropped and the
// remaining weights are renormalized.
const (
	weightCRF      = 0.40
	weightBodyComp = 0.25
	weightActivity = 0.20
	weightRecovery = 0.15
)

// Compute derives the body-age score for a target date from a trailing
// window of daily summaries. Identical inputs always produce an identical
// result: no wall clock, no randomness.
func Compute(target time.Time, window []*models.DailySummary, chronoAge int) (*models.BodyAgeEntry, error) {
	bodyFat := avgFloat(window, func(s *models.DailySummary) *float64 { return s.BodyFatPct })
	steps := avgInt(window, func(s *models.DailySummary) *int { return s.Steps })
	exMin := avgInt(window, func(s *models.DailySummary) *int { return s.ExerciseMinutes })
	rhr := avgInt(window, func(s *models.DailySummary) *int { return s.HRResting })
	asleep := avgInt(window, func(s *models.DailySummary) *int { return s.SleepAsleepMin })

	crf := crfScore(rhr, exMin, chronoAge)
	bodyComp := bodyCompScore(bodyFat)
	activity := activityScore(steps, exMin)
	recovery := recoveryScore(asleep, rhr)

	var weightSum, scoreSum float64
	add := func(score *float64, weight float64) {
		if score != nil {
			weightSum += weight
			scoreSum += weight * *score
		}
	}
	add(crf, weightCRF)
	add(bodyComp, weightBodyComp)
	add(activity, weightActivity)
	add(recovery, weightRecovery)

	if weightSum == 0 {
		return nil, ErrInsufficientData
	}
	composite := scoreSum / weightSum

	bodyAge := float64(chronoAge) - 0.2*(composite-50)
	// A composite can only buy so much: floor at ten years under.
	floor := float64(chronoAge - 10)
	if bodyAge < floor {
		bodyAge = floor
	}

	return &models.BodyAgeEntry{
		Date:         target,
		BodyAgeYears: round1(bodyAge),
		DeltaYears:   round1(bodyAge - float64(chronoAge)),
		Composite:    round1(composite),
		CRF:          round1p(crf),
		BodyComp:     round1p(bodyComp),
		Activity:     round1p(activity),
		Recovery:     round1p(recovery),
	}, nil
}

// crfScore estimates cardiorespiratory fitness from a VO2max proxy.
// Resting heart rate is required; exercise minutes refine the estimate.
func crfScore(rhr, exMin *float64, chronoAge int) *float64 {
	if rhr == nil {
		return nil
	}
	ex := 0.0
	if exMin != nil {
		ex = *exMin
	}
	vo2 := 38 - 0.15*float64(chronoAge-40) - 0.15*(*rhr-60) + 0.01*ex
	score := clamp((vo2 - 20) / (60 - 20) * 100)
	return &score
}

// bodyCompScore maps body-fat percentage onto [0, 100]: 15% or leaner is
// full marks, 30% or above is zero, linear between.
func bodyCompScore(bodyFat *float64) *float64 {
	if bodyFat == nil {
		return nil
	}
	var score float64
	switch {
	case *bodyFat <= 15:
		score = 100
	case *bodyFat >= 30:
		score = 0
	default:
		score = (30 - *bodyFat) / (30 - 15) * 100
	}
	return &score
}

// activityScore blends steps (vs 12k/day) and exercise minutes (vs 30/day)
// at 60/40, renormalizing when one input is absent.
func activityScore(steps, exMin *float64) *float64 {
	var scoreSum, weightSum float64
	if steps != nil {
		scoreSum += 0.6 * clamp(*steps/12000*100)
		weightSum += 0.6
	}
	if exMin != nil {
		scoreSum += 0.4 * clamp(*exMin/30*100)
		weightSum += 0.4
	}
	if weightSum == 0 {
		return nil
	}
	score := scoreSum / weightSum
	return &score
}

// recoveryScore blends sleep (target 450 asleep minutes) and resting heart
// rate at 66/34, renormalizing when one input is absent.
func recoveryScore(asleep, rhr *float64) *float64 {
	var scoreSum, weightSum float64
	if asleep != nil {
		diff := math.Abs(*asleep - 450)
		scoreSum += 0.66 * clamp(100-(diff/150)*60)
		weightSum += 0.66
	}
	if rhr != nil {
		scoreSum += 0.34 * rhrScore(*rhr)
		weightSum += 0.34
	}
	if weightSum == 0 {
		return nil
	}
	score := scoreSum / weightSum
	return &score
}

func rhrScore(rhr float64) float64 {
	switch {
	case rhr <= 55:
		return 90
	case rhr <= 60:
		return 80
	case rhr <= 70:
		return 60
	case rhr <= 80:
		return 40
	default:
		return 20
	}
}

func avgFloat(window []*models.DailySummary, get func(*models.DailySummary) *float64) *float64 {
	var sum float64
	var n int
	for _, s := range window {
		if v := get(s); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

func avgInt(window []*models.DailySummary, get func(*models.DailySummary) *int) *float64 {
	var sum float64
	var n int
	for _, s := range window {
		if v := get(s); v != nil {
			sum += float64(*v)
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round1p(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round1(*v)
	return &r
}
