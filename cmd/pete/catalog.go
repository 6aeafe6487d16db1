// ABOUTME: CLI commands for the exercise catalog.
// ABOUTME: Imports wger-format snapshots and browses the result.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/peteebot/pete/internal/models"
	"github.com/spf13/cobra"
)

var catalogListLimit int

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the exercise catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a catalog snapshot",
	Long: `Import an exercise catalog snapshot in wger export format.

The snapshot carries categories, equipment, muscles, and exercises with
their equipment and muscle links. Importing is idempotent: re-running the
same snapshot changes nothing, and a changed snapshot updates rows and
reconciles links for the exercises it mentions. Exercises absent from the
snapshot are left untouched, since upstream pages its feed.

EXAMPLES:

  pete catalog import exercises.json
  pete catalog list -n 50
  pete catalog show 615`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var snap models.CatalogSnapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return fmt.Errorf("failed to parse snapshot: %w", err)
		}

		if err := store.ImportCatalog(&snap); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d exercise(s), %d categor(ies), %d equipment, %d muscle(s)",
			len(snap.Exercises), len(snap.Categories), len(snap.Equipment), len(snap.Muscles))
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List catalog exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := store.ListExercises(catalogListLimit)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}
		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, ex := range exercises {
			fmt.Printf("%s %s\n", faint.Sprintf("%4d", ex.ID), ex.Name)
		}
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one exercise with its links",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid exercise id: %s", args[0])
		}

		ex, err := store.GetExercise(id)
		if err != nil {
			return err
		}
		equipment, primary, secondary, err := store.ExerciseLinks(id)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		bold.Printf("%d %s\n", ex.ID, ex.Name)
		if ex.Description != "" {
			fmt.Printf("  %s\n", ex.Description)
		}
		fmt.Printf("  uuid:       %s\n", ex.UUID)
		fmt.Printf("  category:   %d\n", ex.CategoryID)
		fmt.Printf("  equipment:  %v\n", equipment)
		fmt.Printf("  primary:    %v\n", primary)
		fmt.Printf("  secondary:  %v\n", secondary)
		return nil
	},
}

func init() {
	catalogListCmd.Flags().IntVarP(&catalogListLimit, "limit", "n", 0, "max number of results (0 = all)")

	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}
