// ABOUTME: Exercise catalog entities and the bulk snapshot feed shape.
// ABOUTME: Snapshots carry dimension rows plus per-exercise link id lists.
package models

import "github.com/google/uuid"

// Category is an exercise category dimension row.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Equipment is an equipment dimension row.
type Equipment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Muscle is a muscle dimension row.
type Muscle struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	NameEn  string `json:"name_en,omitempty"`
	IsFront bool   `json:"is_front"`
}

// Exercise is a catalog exercise as stored. The UUID is assigned by the
// upstream feed and immutable once recorded.
type Exercise struct {
	ID          int       `json:"id"`
	UUID        uuid.UUID `json:"uuid"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CategoryID  int       `json:"category_id"`
}

// ExerciseEntry is an exercise as it arrives in a snapshot, carrying the
// full set of links the feed currently claims for it.
type ExerciseEntry struct {
	ID               int       `json:"id"`
	UUID             uuid.UUID `json:"uuid"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	CategoryID       int       `json:"category_id"`
	Equipment        []int     `json:"equipment,omitempty"`
	MusclesPrimary   []int     `json:"muscles_primary,omitempty"`
	MusclesSecondary []int     `json:"muscles_secondary,omitempty"`
}

// CatalogSnapshot is one (possibly paginated) batch of the upstream
// catalog feed. Exercises absent from the batch are left untouched.
type CatalogSnapshot struct {
	Categories []Category      `json:"categories"`
	Equipment  []Equipment     `json:"equipment"`
	Muscles    []Muscle        `json:"muscles"`
	Exercises  []ExerciseEntry `json:"exercises"`
}
