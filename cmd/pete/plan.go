// ABOUTME: CLI commands for training plans.
// ABOUTME: Generates four-week blocks and browses stored revisions.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/peteebot/pete/internal/models"
	"github.com/peteebot/pete/internal/planner"
	"github.com/spf13/cobra"
)

var (
	planSupersede bool
	planAsOf      string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and browse training plans",
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate <start-date>",
	Short: "Generate a four-week training block",
	Long: `Generate a four-week training block starting on a Monday.

The block waves light / medium / heavy / deload across its four weeks,
with weights Monday, Tuesday, Thursday and Friday, HIIT on Wednesday, and
the weekend off. Working weights come from each lift's recent log; a week
of poor sleep or elevated resting heart rate before the start caps the
block at light intensity.

Plans are immutable. Regenerating for a start date that already has an
active plan is refused unless --supersede is given, which retires the old
revision and keeps it for history.

EXAMPLES:

  pete plan generate 2025-06-02
  pete plan generate 2025-06-02 --supersede
  pete plan show --as-of 2025-06-15
  pete plan list`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := models.ParseDate(args[0])
		if err != nil {
			return err
		}

		p := planner.New(store, cfg.GetReadinessSleepMin(), cfg.GetReadinessRHRMax())
		plan, err := p.Generate(start, nil)
		if err != nil {
			return err
		}

		if planSupersede {
			err = store.SupersedePlan(plan)
		} else {
			err = store.CreatePlan(plan)
		}
		if err != nil {
			return err
		}

		color.Green("✓ Plan %s created for %s", plan.ID.String()[:8], args[0])
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the plan covering a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf := time.Now()
		if planAsOf != "" {
			day, err := models.ParseDate(planAsOf)
			if err != nil {
				return err
			}
			asOf = day
		}

		plan, err := store.LatestPlan(asOf)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Printf("Plan %s, starts %s\n", plan.ID.String()[:8], plan.StartDate.Format(models.DateFormat))

		var pretty json.RawMessage = plan.Document
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all plan revisions",
	RunE: func(cmd *cobra.Command, args []string) error {
		plans, err := store.ListPlans()
		if err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}
		if len(plans) == 0 {
			fmt.Println("No plans recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range plans {
			status := "active"
			if !p.Active() {
				status = "superseded " + p.SupersededAt.Format(models.DateFormat)
			}
			fmt.Printf("%s  starts %s  %s\n",
				faint.Sprint(p.ID.String()[:8]),
				p.StartDate.Format(models.DateFormat),
				status)
		}
		return nil
	},
}

func init() {
	planGenerateCmd.Flags().BoolVar(&planSupersede, "supersede", false, "retire an existing active plan for the start date")
	planShowCmd.Flags().StringVar(&planAsOf, "as-of", "", "date the plan must cover (YYYY-MM-DD)")

	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planListCmd)
	rootCmd.AddCommand(planCmd)
}
