// ABOUTME: Training plan generator: builds a four-week block from the
// ABOUTME: exercise template, recent readiness, and per-lift progression.
package planner

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/peteebot/pete/internal/models"
	"github.com/peteebot/pete/internal/progression"
	"github.com/peteebot/pete/internal/storage"
)

// Intensity labels a week within a block.
type Intensity string

const (
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityHeavy  Intensity = "heavy"
	IntensityDeload Intensity = "deload"
)

// Factor scales a lift's base working weight for the week.
func (i Intensity) Factor() float64 {
	switch i {
	case IntensityLight:
		return 0.9
	case IntensityHeavy:
		return 1.1
	case IntensityDeload:
		return 0.7
	default:
		return 1.0
	}
}

// blockWeeks is the fixed progression of a block.
var blockWeeks = []Intensity{IntensityLight, IntensityMedium, IntensityHeavy, IntensityDeload}

// TemplateExercise is one slot of the weekly template.
type TemplateExercise struct {
	ExerciseID int     `json:"exercise_id"`
	Name       string  `json:"name"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	BaseWeight float64 `json:"base_weight_kg"`
}

// Template maps training weekdays to their exercise slots. Wednesday is
// always the HIIT session and carries no slots.
type Template map[time.Weekday][]TemplateExercise

// PlannedExercise is one prescribed lift of one session.
type PlannedExercise struct {
	ExerciseID int     `json:"exercise_id"`
	Name       string  `json:"name"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	WeightKg   float64 `json:"weight_kg"`
}

// Session is one planned day.
type Session struct {
	Date      string            `json:"date"`
	Focus     string            `json:"focus"`
	Exercises []PlannedExercise `json:"exercises,omitempty"`
}

// Week is one week of a block.
type Week struct {
	Number    int       `json:"number"`
	Intensity Intensity `json:"intensity"`
	Sessions  []Session `json:"sessions"`
}

// Document is the opaque plan payload the store persists.
type Document struct {
	StartDate string                 `json:"start_date"`
	Weeks     []Week                 `json:"weeks"`
	Readiness string                 `json:"readiness"`
	BaseLoads map[string]float64     `json:"base_loads_kg"`
	Decisions []progression.Decision `json:"progression"`
}

// Planner builds plan documents from warehouse state.
type Planner struct {
	store    storage.Store
	sleepMin int
	rhrMax   int
}

// New returns a Planner with the given readiness thresholds.
func New(store storage.Store, sleepMin, rhrMax int) *Planner {
	return &Planner{store: store, sleepMin: sleepMin, rhrMax: rhrMax}
}

// Generate builds a four-week block starting at start: weights
// Mon/Tue/Thu/Fri, HIIT Wednesday, rest on the weekend.
// Weights come from each lift's progression decision scaled
// by the week's intensity; poor recent readiness caps the block at light.
func (p *Planner) Generate(start time.Time, tmpl Template) (*models.TrainingPlan, error) {
	if start.Weekday() != time.Monday {
		return nil, fmt.Errorf("%w: plan must start on a Monday, got %s",
			storage.ErrValidation, start.Weekday())
	}
	if len(tmpl) == 0 {
		tmpl = DefaultTemplate()
	}

	readiness, err := p.assessReadiness(start)
	if err != nil {
		return nil, err
	}

	loads, decisions, err := p.baseLoads(start, tmpl)
	if err != nil {
		return nil, err
	}

	doc := Document{
		StartDate: start.Format(models.DateFormat),
		Readiness: readiness,
		BaseLoads: loads,
		Decisions: decisions,
	}

	for w, intensity := range blockWeeks {
		if readiness == "compromised" && intensity == IntensityHeavy {
			intensity = IntensityLight
		}
		week := Week{Number: w + 1, Intensity: intensity}
		for d := 0; d < 7; d++ {
			date := start.AddDate(0, 0, w*7+d)
			week.Sessions = append(week.Sessions, p.session(date, intensity, tmpl, loads))
		}
		doc.Weeks = append(doc.Weeks, week)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}
	return models.NewTrainingPlan(start, payload), nil
}

func (p *Planner) session(date time.Time, intensity Intensity, tmpl Template, loads map[string]float64) Session {
	s := Session{Date: date.Format(models.DateFormat)}
	switch date.Weekday() {
	case time.Wednesday:
		s.Focus = "hiit"
	case time.Saturday, time.Sunday:
		s.Focus = "rest"
	default:
		s.Focus = "weights"
		for _, te := range tmpl[date.Weekday()] {
			base := loads[loadKey(te.ExerciseID)]
			s.Exercises = append(s.Exercises, PlannedExercise{
				ExerciseID: te.ExerciseID,
				Name:       te.Name,
				Sets:       te.Sets,
				Reps:       te.Reps,
				WeightKg:   roundToPlate(base * intensity.Factor()),
			})
		}
	}
	return s
}

// assessReadiness looks at the week before the block. Short sleep or an
// elevated resting heart rate marks the block compromised.
func (p *Planner) assessReadiness(start time.Time) (string, error) {
	recent, err := p.store.RecentSummaries(start.AddDate(0, 0, -1), 7)
	if err != nil {
		return "", fmt.Errorf("assess readiness: %w", err)
	}

	var sleepSum, sleepN, rhrSum, rhrN int
	for _, s := range recent {
		if s.SleepAsleepMin != nil {
			sleepSum += *s.SleepAsleepMin
			sleepN++
		}
		if s.HRResting != nil {
			rhrSum += *s.HRResting
			rhrN++
		}
	}
	if sleepN > 0 && sleepSum/sleepN < p.sleepMin {
		return "compromised", nil
	}
	if rhrN > 0 && rhrSum/rhrN > p.rhrMax {
		return "compromised", nil
	}
	return "ready", nil
}

// baseLoads resolves each template lift's working weight from its recent
// history. A lift with no history uses the template's base weight.
func (p *Planner) baseLoads(start time.Time, tmpl Template) (map[string]float64, []progression.Decision, error) {
	loads := make(map[string]float64)
	var decisions []progression.Decision
	seen := make(map[int]bool)

	for _, slots := range tmpl {
		for _, te := range slots {
			if seen[te.ExerciseID] {
				continue
			}
			seen[te.ExerciseID] = true

			history, err := p.store.ListStrengthSetsByExercise(te.ExerciseID, start.AddDate(0, 0, -90))
			if err != nil {
				return nil, nil, fmt.Errorf("load history for exercise %d: %w", te.ExerciseID, err)
			}
			dec := progression.Next(te.ExerciseID, history, start)
			if dec.NextWeight == 0 {
				dec.NextWeight = te.BaseWeight
			}
			loads[loadKey(te.ExerciseID)] = dec.NextWeight
			decisions = append(decisions, dec)
		}
	}
	return loads, decisions, nil
}

func loadKey(exerciseID int) string {
	return fmt.Sprintf("%d", exerciseID)
}

func roundToPlate(w float64) float64 {
	return math.Round(w/2.5) * 2.5
}
