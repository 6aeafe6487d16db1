// ABOUTME: CLI command for importing the legacy per-day JSON layout.
// ABOUTME: One-time migration for users moving off the old flat-file store.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/peteebot/pete/internal/models"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <dir>",
	Short: "Import the legacy per-day JSON layout",
	Long: `Import daily summaries from the legacy flat-file layout.

Older versions kept one JSON file per day, named YYYY-MM-DD.json, each
holding that day's merged vitals. This walks the directory, parses every
day file, and merges the contents into the warehouse. Merging is
field-wise, so re-running the migration or mixing it with live feeds is
safe.

Files whose names are not calendar dates are skipped.

USAGE:

  pete migrate ~/old-data --dry-run   # Preview what would be imported
  pete migrate ~/old-data             # Perform the migration`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := os.ReadDir(args[0])
		if err != nil {
			return fmt.Errorf("failed to read directory: %w", err)
		}

		var readings []*models.DailyReading
		var skipped []string
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			dateStr := strings.TrimSuffix(entry.Name(), ".json")
			if _, err := models.ParseDate(dateStr); err != nil {
				skipped = append(skipped, entry.Name())
				continue
			}

			data, err := os.ReadFile(filepath.Join(args[0], entry.Name()))
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", entry.Name(), err)
			}
			var vitals models.Vitals
			if err := json.Unmarshal(data, &vitals); err != nil {
				return fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
			}

			readings = append(readings, &models.DailyReading{
				Source: models.SourceApple,
				Date:   dateStr,
				Vitals: vitals,
			})
		}

		sort.Slice(readings, func(i, j int) bool { return readings[i].Date < readings[j].Date })

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			for _, r := range readings {
				fmt.Printf("  would merge %s\n", r.Date)
			}
			for _, name := range skipped {
				fmt.Printf("  would skip %s\n", name)
			}
			return nil
		}

		if len(readings) == 0 {
			fmt.Println("Nothing to migrate.")
			return nil
		}

		if err := store.MergeDailyBatch(readings); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d day(s)", len(readings))
		if len(skipped) > 0 {
			color.Yellow("Skipped %d non-day file(s)", len(skipped))
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
