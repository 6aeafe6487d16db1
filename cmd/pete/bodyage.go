// ABOUTME: CLI commands for the body-age score.
// ABOUTME: Derives a day's score from its trailing window and shows history.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/peteebot/pete/internal/bodyage"
	"github.com/peteebot/pete/internal/models"
	"github.com/spf13/cobra"
)

var bodyageRecompute bool

var bodyageCmd = &cobra.Command{
	Use:   "bodyage",
	Short: "Derive and browse the body-age score",
}

var bodyageComputeCmd = &cobra.Command{
	Use:   "compute <date>",
	Short: "Derive the body-age score for a date",
	Long: `Derive the composite body-age score for a date.

The score averages the trailing seven days of merged summaries and blends
cardio fitness, body composition, activity, and recovery. Components with
no data in the window are dropped and the rest reweighted; a window with
no usable data at all is an error, never a default score.

A date that already has a score is refused unless --recompute is given.

EXAMPLES:

  pete bodyage compute 2025-06-01
  pete bodyage compute 2025-06-01 --recompute
  pete bodyage history`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}

		window, err := store.RecentSummaries(day, bodyage.WindowDays)
		if err != nil {
			return fmt.Errorf("failed to load window: %w", err)
		}
		entry, err := bodyage.Compute(day, window, cfg.GetChronologicalAge())
		if err != nil {
			return err
		}
		if err := store.RecordBodyAge(entry, bodyageRecompute); err != nil {
			return err
		}

		color.Green("✓ Body age for %s: %.1f (%+.1f years)", args[0], entry.BodyAgeYears, entry.DeltaYears)
		printSubscores(entry)
		return nil
	},
}

var bodyageHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List all recorded body-age scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := store.BodyAgeHistory()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("No body-age scores recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range history {
			fmt.Printf("%s  body age %.1f  delta %+.1f  composite %.1f\n",
				faint.Sprint(e.Date.Format(models.DateFormat)),
				e.BodyAgeYears, e.DeltaYears, e.Composite)
		}
		return nil
	},
}

var bodyageShowCmd = &cobra.Command{
	Use:   "show <date>",
	Short: "Show the recorded score for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}
		entry, err := store.GetBodyAge(day)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Printf("%s  body age %.1f (%+.1f years)\n",
			entry.Date.Format(models.DateFormat), entry.BodyAgeYears, entry.DeltaYears)
		printSubscores(entry)
		return nil
	},
}

func printSubscores(e *models.BodyAgeEntry) {
	fmt.Printf("  composite  %.1f\n", e.Composite)
	sub := func(label string, v *float64) {
		if v != nil {
			fmt.Printf("  %-10s %.1f\n", label, *v)
		}
	}
	sub("cardio", e.CRF)
	sub("body comp", e.BodyComp)
	sub("activity", e.Activity)
	sub("recovery", e.Recovery)
}

func init() {
	bodyageComputeCmd.Flags().BoolVar(&bodyageRecompute, "recompute", false, "overwrite an existing score for the date")

	bodyageCmd.AddCommand(bodyageComputeCmd)
	bodyageCmd.AddCommand(bodyageHistoryCmd)
	bodyageCmd.AddCommand(bodyageShowCmd)
	rootCmd.AddCommand(bodyageCmd)
}
