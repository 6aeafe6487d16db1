// ABOUTME: Export functionality for the full warehouse contents.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/peteebot/pete/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for the warehouse.
type ExportData struct {
	Version    string                 `json:"version" yaml:"version"`
	ExportedAt time.Time              `json:"exported_at" yaml:"exported_at"`
	Tool       string                 `json:"tool" yaml:"tool"`
	Summaries  []*models.DailySummary `json:"summaries" yaml:"summaries"`
	Strength   []*models.StrengthSet  `json:"strength" yaml:"strength"`
	BodyAge    []*models.BodyAgeEntry `json:"body_age" yaml:"body_age"`
	Plans      []*models.TrainingPlan `json:"plans" yaml:"plans"`
	Exercises  []*models.Exercise     `json:"exercises" yaml:"exercises"`
}

// exportEpoch predates any plausible reading; used for full-range dumps.
var exportEpoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	far := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	summaries, err := d.ListSummaries(exportEpoch, far)
	if err != nil {
		return nil, fmt.Errorf("export summaries: %w", err)
	}
	strength, err := d.ListStrengthSets(exportEpoch, far)
	if err != nil {
		return nil, fmt.Errorf("export strength log: %w", err)
	}
	bodyAge, err := d.BodyAgeHistory()
	if err != nil {
		return nil, fmt.Errorf("export body age: %w", err)
	}
	plans, err := d.ListPlans()
	if err != nil {
		return nil, fmt.Errorf("export plans: %w", err)
	}
	exercises, err := d.ListExercises(0)
	if err != nil {
		return nil, fmt.Errorf("export exercises: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "pete",
		Summaries:  summaries,
		Strength:   strength,
		BodyAge:    bodyAge,
		Plans:      plans,
		Exercises:  exercises,
	}, nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ExportMarkdown exports the daily history and strength log as Markdown
// tables, optionally bounded to a date range.
func (d *DB) ExportMarkdown(from, to *time.Time) (string, error) {
	lo := exportEpoch
	hi := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	if from != nil {
		lo = *from
	}
	if to != nil {
		hi = *to
	}

	summaries, err := d.ListSummaries(lo, hi)
	if err != nil {
		return "", err
	}
	strength, err := d.ListStrengthSets(lo, hi)
	if err != nil {
		return "", err
	}
	bodyAge, err := d.BodyAgeHistory()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()
	sb.WriteString(fmt.Sprintf("# Fitness Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if len(summaries) > 0 {
		sb.WriteString("## Daily Summaries\n\n")
		sb.WriteString("| Date | Weight | Body Fat | Steps | Exercise | Resting HR | Asleep |\n")
		sb.WriteString("|------|--------|----------|-------|----------|------------|--------|\n")
		for _, s := range summaries {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s |\n",
				s.Date.Format(models.DateFormat),
				fmtFloat(s.WeightKg, "kg"),
				fmtFloat(s.BodyFatPct, "%"),
				fmtInt(s.Steps, ""),
				fmtInt(s.ExerciseMinutes, "min"),
				fmtInt(s.HRResting, "bpm"),
				fmtInt(s.SleepAsleepMin, "min")))
		}
		sb.WriteString("\n")
	}

	if len(strength) > 0 {
		sb.WriteString("## Strength Log\n\n")
		sb.WriteString("| Date | Exercise | Reps | Weight | RIR |\n")
		sb.WriteString("|------|----------|------|--------|-----|\n")
		for _, s := range strength {
			rir := ""
			if s.RIR != nil {
				rir = fmt.Sprintf("%.1f", *s.RIR)
			}
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %.1f kg | %s |\n",
				s.Date.Format(models.DateFormat), s.ExerciseID, s.Reps, s.WeightKg, rir))
		}
		sb.WriteString("\n")
	}

	if len(bodyAge) > 0 {
		sb.WriteString("## Body Age\n\n")
		sb.WriteString("| Date | Body Age | Delta | Composite |\n")
		sb.WriteString("|------|----------|-------|-----------|\n")
		for _, e := range bodyAge {
			sb.WriteString(fmt.Sprintf("| %s | %.1f | %+.1f | %.1f |\n",
				e.Date.Format(models.DateFormat), e.BodyAgeYears, e.DeltaYears, e.Composite))
		}
	}

	return sb.String(), nil
}

func fmtFloat(v *float64, unit string) string {
	if v == nil {
		return ""
	}
	if unit == "" {
		return fmt.Sprintf("%.1f", *v)
	}
	return fmt.Sprintf("%.1f %s", *v, unit)
}

func fmtInt(v *int, unit string) string {
	if v == nil {
		return ""
	}
	if unit == "" {
		return fmt.Sprintf("%d", *v)
	}
	return fmt.Sprintf("%d %s", *v, unit)
}
