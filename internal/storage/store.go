// ABOUTME: Store interface for the fitness data warehouse.
// ABOUTME: Defines the contract the CLI, planner and MCP server consume.
package storage

import (
	"time"

	"github.com/peteebot/pete/internal/models"
)

// Store defines the warehouse's storage operations.
// The store is always passed explicitly, never a process-wide singleton,
// so tests can substitute an isolated database per test.
type Store interface {
	// Daily record merger
	MergeDaily(reading *models.DailyReading) error
	MergeDailyBatch(readings []*models.DailyReading) error
	GetSummary(day time.Time) (*models.DailySummary, error)
	ListSummaries(from, to time.Time) ([]*models.DailySummary, error)
	RecentSummaries(end time.Time, n int) ([]*models.DailySummary, error)
	DeleteSummary(day time.Time) error

	// Catalog importer
	ImportCatalog(snap *models.CatalogSnapshot) error
	GetExercise(id int) (*models.Exercise, error)
	ListExercises(limit int) ([]*models.Exercise, error)
	ExerciseLinks(exerciseID int) (equipment, primary, secondary []int, err error)

	// Strength log recorder
	RecordStrengthSets(sets []*models.StrengthSet) error
	ListStrengthSets(from, to time.Time) ([]*models.StrengthSet, error)
	ListStrengthSetsByExercise(exerciseID int, since time.Time) ([]*models.StrengthSet, error)
	CountStrengthSets(day time.Time) (int, error)

	// Body age history
	RecordBodyAge(entry *models.BodyAgeEntry, recompute bool) error
	BodyAgeHistory() ([]*models.BodyAgeEntry, error)
	GetBodyAge(day time.Time) (*models.BodyAgeEntry, error)

	// Training plan store
	CreatePlan(plan *models.TrainingPlan) error
	SupersedePlan(plan *models.TrainingPlan) error
	GetPlan(startDate time.Time) (*models.TrainingPlan, error)
	LatestPlan(asOf time.Time) (*models.TrainingPlan, error)
	ListPlans() ([]*models.TrainingPlan, error)

	// Export
	GetAllData() (*ExportData, error)
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ExportMarkdown(from, to *time.Time) (string, error)

	// Lifecycle
	Close() error
}

var _ Store = (*DB)(nil)
