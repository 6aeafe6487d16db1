// ABOUTME: StrengthSet model: one row per performed exercise set.
// ABOUTME: RIR is a half-point reps-in-reserve effort scale.
package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// StrengthSet is a single performed set, tied to a summary date and a
// catalog exercise.
type StrengthSet struct {
	ID            uuid.UUID `json:"id"`
	Date          time.Time `json:"date"`
	ExerciseID    int       `json:"exercise_id"`
	Reps          int       `json:"reps"`
	WeightKg      float64   `json:"weight_kg"`
	RIR           *float64  `json:"rir,omitempty"`
	SourceEntryID *string   `json:"source_entry_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewStrengthSet creates a set entry with a generated ID.
func NewStrengthSet(date time.Time, exerciseID, reps int, weightKg float64) *StrengthSet {
	return &StrengthSet{
		ID:         uuid.New(),
		Date:       date,
		ExerciseID: exerciseID,
		Reps:       reps,
		WeightKg:   weightKg,
		CreatedAt:  time.Now(),
	}
}

// WithRIR sets the reps-in-reserve estimate.
func (s *StrengthSet) WithRIR(rir float64) *StrengthSet {
	s.RIR = &rir
	return s
}

// WithSourceEntryID sets the upstream session/set identifier used for
// idempotent re-imports.
func (s *StrengthSet) WithSourceEntryID(id string) *StrengthSet {
	s.SourceEntryID = &id
	return s
}

// Validate checks reps, weight and the RIR scale.
func (s *StrengthSet) Validate() error {
	if s.Reps <= 0 {
		return fmt.Errorf("reps %d must be positive", s.Reps)
	}
	if s.WeightKg <= 0 {
		return fmt.Errorf("weight_kg %.2f must be positive", s.WeightKg)
	}
	if s.RIR != nil {
		r := *s.RIR
		if r < 0 || r > 10 {
			return fmt.Errorf("rir %.1f out of range [0, 10]", r)
		}
		if math.Mod(r*2, 1) != 0 {
			return fmt.Errorf("rir %.2f must be a multiple of 0.5", r)
		}
	}
	return nil
}
