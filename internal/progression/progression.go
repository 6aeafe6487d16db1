// ABOUTME: Load progression rules: decides the next working weight for an
// ABOUTME: exercise from its recent logged sets.
package progression

import (
	"math"
	"time"

	"github.com/peteebot/pete/internal/models"
)

// Decision explains one progression call for an exercise.
type Decision struct {
	ExerciseID int     `json:"exercise_id"`
	LastWeight float64 `json:"last_weight_kg"`
	NextWeight float64 `json:"next_weight_kg"`
	Reason     string  `json:"reason"`
}

// DeloadAfterWeeks is how long a lift may go without a deload before one
// is forced.
const DeloadAfterWeeks = 6

const (
	incrementLarge = 5.0
	incrementSmall = 2.5
	deloadFactor   = 0.6
)

// Next decides the working weight for the coming session from the sets
// logged for one exercise, most recent last. An empty history holds at
// zero and lets the planner fall back to its template weight.
func Next(exerciseID int, history []*models.StrengthSet, asOf time.Time) Decision {
	if len(history) == 0 {
		return Decision{ExerciseID: exerciseID, Reason: "no history"}
	}

	last := lastSession(history)
	top := topSet(last)

	if weeksSinceDeload(history, asOf) >= DeloadAfterWeeks {
		return Decision{
			ExerciseID: exerciseID,
			LastWeight: top.WeightKg,
			NextWeight: roundToPlate(top.WeightKg * deloadFactor),
			Reason:     "deload",
		}
	}

	rir := hardestRIR(last)
	switch {
	case rir == nil:
		return Decision{
			ExerciseID: exerciseID,
			LastWeight: top.WeightKg,
			NextWeight: top.WeightKg,
			Reason:     "hold, no effort data",
		}
	case *rir <= 1:
		return Decision{
			ExerciseID: exerciseID,
			LastWeight: top.WeightKg,
			NextWeight: top.WeightKg + incrementLarge,
			Reason:     "progress",
		}
	case *rir <= 2:
		return Decision{
			ExerciseID: exerciseID,
			LastWeight: top.WeightKg,
			NextWeight: top.WeightKg + incrementSmall,
			Reason:     "progress",
		}
	default:
		return Decision{
			ExerciseID: exerciseID,
			LastWeight: top.WeightKg,
			NextWeight: top.WeightKg,
			Reason:     "hold",
		}
	}
}

// lastSession returns the sets from the most recent training date.
func lastSession(history []*models.StrengthSet) []*models.StrengthSet {
	lastDate := history[len(history)-1].Date
	var out []*models.StrengthSet
	for _, s := range history {
		if s.Date.Equal(lastDate) {
			out = append(out, s)
		}
	}
	return out
}

// topSet returns the heaviest set of a session.
func topSet(session []*models.StrengthSet) *models.StrengthSet {
	top := session[0]
	for _, s := range session[1:] {
		if s.WeightKg > top.WeightKg {
			top = s
		}
	}
	return top
}

// hardestRIR returns the lowest recorded RIR of a session, nil when no
// set carries one.
func hardestRIR(session []*models.StrengthSet) *float64 {
	var min *float64
	for _, s := range session {
		if s.RIR == nil {
			continue
		}
		if min == nil || *s.RIR < *min {
			min = s.RIR
		}
	}
	return min
}

// weeksSinceDeload measures how long the lift has run without a session
// whose top weight dropped markedly below the block's peak. A fresh lift
// counts from its first logged session.
func weeksSinceDeload(history []*models.StrengthSet, asOf time.Time) float64 {
	var peak float64
	lastReset := history[0].Date
	for _, s := range history {
		if s.WeightKg > peak {
			peak = s.WeightKg
		}
		if peak > 0 && s.WeightKg <= peak*(deloadFactor+0.1) {
			lastReset = s.Date
		}
	}
	return asOf.Sub(lastReset).Hours() / (24 * 7)
}

// roundToPlate rounds a weight to the nearest 2.5 kg increment.
func roundToPlate(w float64) float64 {
	return math.Round(w/incrementSmall) * incrementSmall
}
