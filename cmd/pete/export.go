// ABOUTME: CLI command for exporting the warehouse.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/peteebot/pete/internal/models"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportFrom   string
	exportTo     string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export warehouse data",
	Long: `Export warehouse data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --from, --to   Bound the Markdown export to a date range

EXAMPLES:

  pete export json                         # Export all data as JSON
  pete export json -o backup.json          # Save to file
  pete export markdown --from 2025-06-01   # Bounded Markdown export`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = store.ExportJSON()
		case "yaml":
			data, err = store.ExportYAML()
		case "markdown":
			var from, to *time.Time
			if exportFrom != "" {
				t, err := models.ParseDate(exportFrom)
				if err != nil {
					return err
				}
				from = &t
			}
			if exportTo != "" {
				t, err := models.ParseDate(exportTo)
				if err != nil {
					return err
				}
				to = &t
			}
			md, err := store.ExportMarkdown(from, to)
			if err != nil {
				return err
			}
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "start date for markdown export (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "end date for markdown export (YYYY-MM-DD)")
	rootCmd.AddCommand(exportCmd)
}
