// ABOUTME: CLI commands for viewing and deleting merged daily summaries.
// ABOUTME: Show one day, list a range, or delete a day and its sets.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/peteebot/pete/internal/models"
	"github.com/spf13/cobra"
)

var (
	summaryFrom string
	summaryTo   string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "View merged daily summaries",
}

var summaryShowCmd = &cobra.Command{
	Use:   "show <date>",
	Short: "Show the merged summary for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}
		s, err := store.GetSummary(day)
		if err != nil {
			return err
		}
		printSummary(s)
		return nil
	},
}

var summaryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List summaries for a date range",
	Long: `List merged daily summaries, one line per day.

EXAMPLES:

  pete summary list --from 2025-06-01 --to 2025-06-30
  pete summary show 2025-06-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := models.ParseDate(summaryFrom)
		if err != nil {
			return err
		}
		to, err := models.ParseDate(summaryTo)
		if err != nil {
			return err
		}
		summaries, err := store.ListSummaries(from, to)
		if err != nil {
			return fmt.Errorf("failed to list summaries: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No summaries found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range summaries {
			fmt.Printf("%s  weight %s  fat %s  steps %s  rhr %s  asleep %s\n",
				faint.Sprint(s.Date.Format(models.DateFormat)),
				orDash(fmtF(s.WeightKg)),
				orDash(fmtF(s.BodyFatPct)),
				orDash(fmtI(s.Steps)),
				orDash(fmtI(s.HRResting)),
				orDash(fmtI(s.SleepAsleepMin)))
		}
		return nil
	},
}

var summaryDeleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete a day's summary and its strength sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}
		if err := store.DeleteSummary(day); err != nil {
			return err
		}
		color.Green("✓ Deleted summary for %s", args[0])
		return nil
	},
}

func printSummary(s *models.DailySummary) {
	bold := color.New(color.Bold)
	bold.Println(s.Date.Format(models.DateFormat))

	row := func(label string, val string) {
		if val != "" {
			fmt.Printf("  %-22s %s\n", label, val)
		}
	}
	row("weight_kg", fmtF(s.WeightKg))
	row("body_fat_pct", fmtF(s.BodyFatPct))
	row("muscle_mass_kg", fmtF(s.MuscleMassKg))
	row("water_pct", fmtF(s.WaterPct))
	row("steps", fmtI(s.Steps))
	row("exercise_minutes", fmtI(s.ExerciseMinutes))
	row("calories_active", fmtI(s.CaloriesActive))
	row("calories_resting", fmtI(s.CaloriesResting))
	row("stand_minutes", fmtI(s.StandMinutes))
	row("distance_m", fmtI(s.DistanceM))
	row("hr_resting", fmtI(s.HRResting))
	row("hr_avg", fmtI(s.HRAvg))
	row("hr_max", fmtI(s.HRMax))
	row("hr_min", fmtI(s.HRMin))
	row("sleep_total_minutes", fmtI(s.SleepTotalMin))
	row("sleep_asleep_minutes", fmtI(s.SleepAsleepMin))
	row("sleep_rem_minutes", fmtI(s.SleepRemMin))
	row("sleep_deep_minutes", fmtI(s.SleepDeepMin))
	row("sleep_core_minutes", fmtI(s.SleepCoreMin))
	row("sleep_awake_minutes", fmtI(s.SleepAwakeMin))
}

func fmtF(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *v)
}

func fmtI(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	summaryListCmd.Flags().StringVar(&summaryFrom, "from", "", "start date (YYYY-MM-DD)")
	summaryListCmd.Flags().StringVar(&summaryTo, "to", "", "end date (YYYY-MM-DD)")
	summaryListCmd.MarkFlagRequired("from")
	summaryListCmd.MarkFlagRequired("to")

	summaryCmd.AddCommand(summaryShowCmd)
	summaryCmd.AddCommand(summaryListCmd)
	summaryCmd.AddCommand(summaryDeleteCmd)
	rootCmd.AddCommand(summaryCmd)
}
