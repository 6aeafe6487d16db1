// ABOUTME: CLI commands for the strength log.
// ABOUTME: Logs performed sets by hand or imports upstream session files.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/peteebot/pete/internal/models"
	"github.com/spf13/cobra"
)

var (
	strengthRIR      float64
	strengthSourceID string
	strengthFrom     string
	strengthTo       string
)

var strengthCmd = &cobra.Command{
	Use:   "strength",
	Short: "Record and browse the strength log",
}

var strengthLogCmd = &cobra.Command{
	Use:   "log <date> <exercise-id> <reps> <weight-kg>",
	Short: "Log one performed set",
	Long: `Log one performed strength set.

The exercise must exist in the imported catalog. Logging a set for a date
with no summary row creates a bare one, so workouts can be recorded before
the day's vitals arrive.

EXAMPLES:

  pete strength log 2025-06-01 615 5 100            # Squat, 5 reps at 100 kg
  pete strength log 2025-06-01 615 5 100 --rir 1.5  # With reps in reserve
  pete strength list --from 2025-06-01 --to 2025-06-30`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}
		exerciseID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[1])
		}
		reps, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid reps: %s", args[2])
		}
		weight, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[3])
		}

		set := models.NewStrengthSet(day, exerciseID, reps, weight)
		if cmd.Flags().Changed("rir") {
			set.WithRIR(strengthRIR)
		}
		if strengthSourceID != "" {
			set.WithSourceEntryID(strengthSourceID)
		}

		if err := store.RecordStrengthSets([]*models.StrengthSet{set}); err != nil {
			return fmt.Errorf("failed to record set: %w", err)
		}

		color.Green("✓ Logged %d x %.1f kg on exercise %d", reps, weight, exerciseID)
		return nil
	},
}

var strengthImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import strength sets from a session file",
	Long: `Import strength sets from a JSON file of upstream session entries.

Sets that carry a source_entry_id are idempotent: re-importing the same
file updates those rows in place. Sets without one replace any previously
imported id-less sets for the same date and exercise.

SET FORMAT:

  [
    {"date": "2025-06-01", "exercise_id": 615, "reps": 5,
     "weight_kg": 100, "rir": 1.5, "source_entry_id": "wger-881"}
  ]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var entries []struct {
			Date          string   `json:"date"`
			ExerciseID    int      `json:"exercise_id"`
			Reps          int      `json:"reps"`
			WeightKg      float64  `json:"weight_kg"`
			RIR           *float64 `json:"rir,omitempty"`
			SourceEntryID string   `json:"source_entry_id,omitempty"`
		}
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("failed to parse sets: %w", err)
		}

		sets := make([]*models.StrengthSet, 0, len(entries))
		for i, e := range entries {
			day, err := models.ParseDate(e.Date)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			set := models.NewStrengthSet(day, e.ExerciseID, e.Reps, e.WeightKg)
			if e.RIR != nil {
				set.WithRIR(*e.RIR)
			}
			if e.SourceEntryID != "" {
				set.WithSourceEntryID(e.SourceEntryID)
			}
			sets = append(sets, set)
		}

		if err := store.RecordStrengthSets(sets); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d set(s)", len(sets))
		return nil
	},
}

var strengthListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List logged sets for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := models.ParseDate(strengthFrom)
		if err != nil {
			return err
		}
		to, err := models.ParseDate(strengthTo)
		if err != nil {
			return err
		}
		sets, err := store.ListStrengthSets(from, to)
		if err != nil {
			return fmt.Errorf("failed to list sets: %w", err)
		}
		if len(sets) == 0 {
			fmt.Println("No strength sets found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range sets {
			rir := ""
			if s.RIR != nil {
				rir = fmt.Sprintf("  rir %.1f", *s.RIR)
			}
			fmt.Printf("%s %s  exercise %d  %d x %.1f kg%s\n",
				faint.Sprint(s.ID.String()[:8]),
				faint.Sprint(s.Date.Format(models.DateFormat)),
				s.ExerciseID, s.Reps, s.WeightKg, rir)
		}
		return nil
	},
}

func init() {
	strengthLogCmd.Flags().Float64Var(&strengthRIR, "rir", 0, "reps in reserve (0-10, half points)")
	strengthLogCmd.Flags().StringVar(&strengthSourceID, "source-id", "", "upstream entry ID for idempotent re-imports")

	strengthListCmd.Flags().StringVar(&strengthFrom, "from", "", "start date (YYYY-MM-DD)")
	strengthListCmd.Flags().StringVar(&strengthTo, "to", "", "end date (YYYY-MM-DD)")
	strengthListCmd.MarkFlagRequired("from")
	strengthListCmd.MarkFlagRequired("to")

	strengthCmd.AddCommand(strengthLogCmd)
	strengthCmd.AddCommand(strengthImportCmd)
	strengthCmd.AddCommand(strengthListCmd)
	rootCmd.AddCommand(strengthCmd)
}
