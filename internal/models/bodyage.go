// ABOUTME: BodyAgeEntry: one derived composite score per calendar date.
// ABOUTME: Subscores are nil when their inputs were missing for the window.
package models

import "time"

// BodyAgeEntry is the persisted result of one body-age derivation.
type BodyAgeEntry struct {
	Date         time.Time `json:"date" yaml:"date"`
	BodyAgeYears float64   `json:"body_age_years" yaml:"body_age_years"`
	DeltaYears   float64   `json:"delta_years" yaml:"delta_years"`
	Composite    float64   `json:"composite" yaml:"composite"`
	CRF          *float64  `json:"crf,omitempty" yaml:"crf,omitempty"`
	BodyComp     *float64  `json:"body_comp,omitempty" yaml:"body_comp,omitempty"`
	Activity     *float64  `json:"activity,omitempty" yaml:"activity,omitempty"`
	Recovery     *float64  `json:"recovery,omitempty" yaml:"recovery,omitempty"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}
