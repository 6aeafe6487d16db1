// ABOUTME: CLI command for ingesting daily readings.
// ABOUTME: Merges per-source sparse vitals into the daily summary table.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/peteebot/pete/internal/models"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Merge a batch of daily readings",
	Long: `Merge one or more per-source daily readings into the warehouse.

The file holds a JSON array of readings. Each reading names its source
(withings, apple, or wger), a calendar date, and any subset of the vitals
fields. Only the fields present in a reading are written; everything else
on the day's row is left alone, so feeds can arrive in any order.

READING FORMAT:

  [
    {"source": "withings", "date": "2025-06-01",
     "weight_kg": 82.5, "body_fat_pct": 21.3},
    {"source": "apple", "date": "2025-06-01",
     "steps": 10432, "hr_resting": 52, "sleep_asleep_minutes": 433}
  ]

A batch is transactional: one bad reading rejects the whole file.

EXAMPLES:

  pete ingest today.json          # Merge a day's feeds
  pete ingest backfill.json       # Re-deliveries are safe to replay`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var readings []*models.DailyReading
		if err := json.Unmarshal(data, &readings); err != nil {
			// Accept a single reading object too.
			var one models.DailyReading
			if err2 := json.Unmarshal(data, &one); err2 != nil {
				return fmt.Errorf("failed to parse readings: %w", err)
			}
			readings = []*models.DailyReading{&one}
		}

		if err := store.MergeDailyBatch(readings); err != nil {
			return fmt.Errorf("merge failed: %w", err)
		}

		color.Green("✓ Merged %d reading(s)", len(readings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
