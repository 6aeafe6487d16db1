// ABOUTME: Tests for warehouse export.
// ABOUTME: JSON and YAML round-trips plus Markdown shape.
package storage

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/peteebot/pete/internal/models"
	"gopkg.in/yaml.v3"
)

func seedExportData(t *testing.T, db *DB) {
	t.Helper()
	seedCatalog(t, db)

	if err := db.MergeDaily(reading(models.SourceWithings, "2025-06-01", models.Vitals{
		WeightKg:   models.Float64(82.5),
		BodyFatPct: models.Float64(21.3),
	})); err != nil {
		t.Fatalf("MergeDaily failed: %v", err)
	}
	set := models.NewStrengthSet(date(t, "2025-06-01"), 615, 5, 100).WithRIR(2)
	if err := db.RecordStrengthSets([]*models.StrengthSet{set}); err != nil {
		t.Fatalf("RecordStrengthSets failed: %v", err)
	}
	if err := db.RecordBodyAge(&models.BodyAgeEntry{
		Date: date(t, "2025-06-01"), BodyAgeYears: 41.5, DeltaYears: -2.5, Composite: 62.5,
	}, false); err != nil {
		t.Fatalf("RecordBodyAge failed: %v", err)
	}
	if err := db.CreatePlan(models.NewTrainingPlan(date(t, "2025-06-02"), []byte(`{"weeks":[]}`))); err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	db := openTestDB(t)
	seedExportData(t, db)

	data, err := db.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if export.Tool != "pete" || export.Version == "" {
		t.Errorf("export header wrong: %+v", export)
	}
	if len(export.Summaries) != 1 || len(export.Strength) != 1 ||
		len(export.BodyAge) != 1 || len(export.Plans) != 1 || len(export.Exercises) != 2 {
		t.Errorf("export counts wrong: %d summaries, %d sets, %d scores, %d plans, %d exercises",
			len(export.Summaries), len(export.Strength), len(export.BodyAge),
			len(export.Plans), len(export.Exercises))
	}
	if export.Summaries[0].WeightKg == nil || *export.Summaries[0].WeightKg != 82.5 {
		t.Error("summary fields lost in export")
	}
}

func TestExportYAML(t *testing.T) {
	db := openTestDB(t)
	seedExportData(t, db)

	data, err := db.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid YAML: %v", err)
	}
	if doc["tool"] != "pete" {
		t.Errorf("tool = %v, want pete", doc["tool"])
	}
}

func TestExportMarkdown(t *testing.T) {
	db := openTestDB(t)
	seedExportData(t, db)

	md, err := db.ExportMarkdown(nil, nil)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	for _, want := range []string{"## Daily Summaries", "## Strength Log", "## Body Age", "82.5", "2025-06-01"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	// Bounded to a range with no data.
	lo := date(t, "2024-01-01")
	hi := date(t, "2024-12-31")
	md, err = db.ExportMarkdown(&lo, &hi)
	if err != nil {
		t.Fatalf("bounded ExportMarkdown failed: %v", err)
	}
	if strings.Contains(md, "## Daily Summaries") {
		t.Error("bounded export leaked out-of-range summaries")
	}
}
