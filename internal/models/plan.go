// ABOUTME: TrainingPlan: an immutable plan document keyed by start date.
// ABOUTME: The document body is opaque JSON owned by the plan generator.
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TrainingPlan is one generated plan revision. At most one active
// (non-superseded) revision exists per start date.
type TrainingPlan struct {
	ID           uuid.UUID       `json:"id"`
	StartDate    time.Time       `json:"start_date"`
	Document     json.RawMessage `json:"document"`
	CreatedAt    time.Time       `json:"created_at"`
	SupersededAt *time.Time      `json:"superseded_at,omitempty"`
}

// NewTrainingPlan creates an active plan revision for the given start date.
func NewTrainingPlan(startDate time.Time, document json.RawMessage) *TrainingPlan {
	return &TrainingPlan{
		ID:        uuid.New(),
		StartDate: startDate,
		Document:  document,
		CreatedAt: time.Now(),
	}
}

// Active reports whether this revision has not been superseded.
func (p *TrainingPlan) Active() bool { return p.SupersededAt == nil }
